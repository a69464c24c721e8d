// Command venom is the developer-facing front-end to the lexer and
// parser: lexing, parsing, and AST dumping, with subcommands built on
// spf13/cobra.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/romainaugier/venom/internal/config"
	"github.com/romainaugier/venom/pkgs/debug"
	"github.com/romainaugier/venom/pkgs/lexer"
	"github.com/romainaugier/venom/pkgs/parser"
	"github.com/romainaugier/venom/pkgs/venomerrors"
	"github.com/spf13/cobra"
)

func indentString(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitParseError       = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var jsonOutput bool

	root := &cobra.Command{
		Use:   "venom",
		Short: "venom is a lexer and parser for a Python-3-like source language",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	lexCmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "print the token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(args[0], configPath)
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "parse a source file and report success or the single diagnostic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], configPath)
		},
	}

	astCmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "print the parsed AST as a tree, or as JSON with --json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(args[0], configPath, jsonOutput)
		},
	}
	astCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the AST as JSON instead of a tree")

	root.AddCommand(lexCmd, parseCmd, astCmd)

	exitCode := ExitSuccess
	root.SilenceErrors = true
	root.SilenceUsage = true
	if err := root.Execute(); err != nil {
		if _, ok := err.(*venomerrors.Error); !ok {
			err = venomerrors.Wrap(venomerrors.ErrInvalidArguments, "invalid arguments", err)
		}
		fmt.Fprintln(os.Stderr, err)
		exitCode = classify(err)
	}
	return exitCode
}

func classify(err error) int {
	ve, ok := err.(*venomerrors.Error)
	if !ok {
		return ExitInvalidArguments
	}
	switch ve.Code {
	case venomerrors.ErrLexFailed, venomerrors.ErrParseFailed:
		return ExitParseError
	case venomerrors.ErrInputRead, venomerrors.ErrConfigLoad, venomerrors.ErrOutputWrite:
		return ExitIOError
	default:
		return ExitInvalidArguments
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", venomerrors.Wrap(venomerrors.ErrInputRead, "could not read source", err).WithContext("path", path)
	}
	return string(data), nil
}

// loadConfig returns config.Default() when configPath is empty,
// otherwise the parsed file (its TabWidth governs caret alignment in
// lex/parse/ast diagnostics, its OutputMode/JSONIndent govern `venom
// ast`'s rendering).
func loadConfig(configPath string) (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, venomerrors.Wrap(venomerrors.ErrConfigLoad, "could not load config", err).WithContext("path", configPath)
	}
	return cfg, nil
}

func runLex(path, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	src, err := readSource(path)
	if err != nil {
		return err
	}
	tokens, err := lexer.LexWithTabWidth(src, cfg.TabWidth)
	if err != nil {
		return venomerrors.Wrap(venomerrors.ErrLexFailed, "lex failed", err)
	}
	debug.Tokens(os.Stdout, tokens)
	return nil
}

func runParse(path, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	src, err := readSource(path)
	if err != nil {
		return err
	}
	tokens, err := lexer.LexWithTabWidth(src, cfg.TabWidth)
	if err != nil {
		return venomerrors.Wrap(venomerrors.ErrLexFailed, "lex failed", err)
	}
	result := parser.ParseWithTabWidth(tokens, src, cfg.TabWidth)
	if result.Error != "" {
		return venomerrors.Wrap(venomerrors.ErrParseFailed, "parse failed", fmt.Errorf("%s", result.Error))
	}
	fmt.Println("ok")
	return nil
}

func runAST(path, configPath string, jsonFlag bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	src, err := readSource(path)
	if err != nil {
		return err
	}
	tokens, err := lexer.LexWithTabWidth(src, cfg.TabWidth)
	if err != nil {
		return venomerrors.Wrap(venomerrors.ErrLexFailed, "lex failed", err)
	}
	result := parser.ParseWithTabWidth(tokens, src, cfg.TabWidth)
	if result.Error != "" {
		return venomerrors.Wrap(venomerrors.ErrParseFailed, "parse failed", fmt.Errorf("%s", result.Error))
	}

	useJSON := jsonFlag || cfg.OutputMode == "json"
	if useJSON {
		doc, err := debug.JSON(result.Root)
		if err != nil {
			return venomerrors.Wrap(venomerrors.ErrOutputWrite, "could not render AST as JSON", err)
		}
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, doc, "", indentString(cfg.JSONIndent)); err != nil {
			return venomerrors.Wrap(venomerrors.ErrOutputWrite, "could not indent JSON output", err)
		}
		fmt.Println(pretty.String())
		return nil
	}

	debug.Tree(os.Stdout, result.Root)
	return nil
}
