package debug

import (
	"fmt"

	"github.com/romainaugier/venom/pkgs/ast"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON renders an AST node as a JSON document, used by `venom ast
// --json`. The document is assembled incrementally with
// sjson.SetRawBytes/SetBytes rather than built as a Go value tree and
// marshaled in one shot.
func JSON(n ast.Node) ([]byte, error) {
	return nodeJSON(n)
}

// Get is a thin re-export of gjson.GetBytes so callers (and this
// package's tests) never have to import tidwall/gjson directly just
// to inspect a JSON field such as `.type` or `.elements.0.value`.
func Get(doc []byte, path string) gjson.Result {
	return gjson.GetBytes(doc, path)
}

func nodeJSON(n ast.Node) ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}

	doc := []byte("{}")
	var err error
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}
	setRaw := func(path string, raw []byte) {
		if err != nil {
			return
		}
		doc, err = sjson.SetRawBytes(doc, path, raw)
	}
	appendRaw := func(path string, values []ast.Node) {
		for _, v := range values {
			raw, e := nodeJSON(v)
			if e != nil {
				err = e
				return
			}
			setRaw(path+".-1", raw)
		}
	}
	child := func(path string, node ast.Node) {
		if err != nil || node == nil {
			return
		}
		raw, e := nodeJSON(node)
		if e != nil {
			err = e
			return
		}
		setRaw(path, raw)
	}

	pos := n.At()
	set("line", pos.Line)
	set("column", pos.Column)

	switch v := n.(type) {
	case *ast.Source:
		set("type", "Source")
		appendRaw("decls", v.Decls)
	case *ast.Import:
		set("type", "Import")
		set("name", v.Name)
		set("alias", v.Alias)
		for _, s := range v.Symbols {
			set("symbols.-1.name", s.Name)
			set("symbols.-1.alias", s.Alias)
		}
	case *ast.Class:
		set("type", "Class")
		set("name", v.Name)
		appendRaw("bases", v.Bases)
		appendRaw("attributes", v.Attributes)
		for _, f := range v.Functions {
			raw, e := nodeJSON(f)
			if e != nil {
				err = e
				break
			}
			setRaw("functions.-1", raw)
		}
	case *ast.Function:
		set("type", "Function")
		set("name", v.Name)
		set("returnType", v.ReturnType.String())
		for _, param := range v.Params {
			raw, e := nodeJSON(param)
			if e != nil {
				err = e
				break
			}
			setRaw("params.-1", raw)
		}
		if v.Body != nil {
			raw, e := nodeJSON(v.Body)
			if e == nil {
				setRaw("body", raw)
			} else {
				err = e
			}
		}
	case *ast.Body:
		set("type", "Body")
		appendRaw("stmts", v.Stmts)
	case *ast.For:
		set("type", "For")
		set("isWhile", v.IsWhile)
		if v.Target != nil {
			child("target", v.Target)
		}
		child("cond", v.Cond)
		child("body", v.Body)
	case *ast.If:
		set("type", "If")
		child("cond", v.Cond)
		child("body", v.Body)
		if v.ElseNode != nil {
			child("elseNode", v.ElseNode)
		}
	case *ast.Return:
		set("type", "Return")
		if v.Value != nil {
			child("value", v.Value)
		}
	case *ast.Assignment:
		set("type", "Assignment")
		set("op", v.Op.String())
		set("valueType", v.Type.String())
		child("target", v.Target)
		child("value", v.Value)
	case *ast.UnOp:
		set("type", "UnOp")
		set("op", v.Op.String())
		child("operand", v.Operand)
	case *ast.BinOp:
		set("type", "BinOp")
		set("op", v.Op.String())
		child("left", v.Left)
		child("right", v.Right)
	case *ast.TernOp:
		set("type", "TernOp")
		child("cond", v.Cond)
		child("then", v.Then)
		child("else", v.Else)
	case *ast.Decorator:
		set("type", "Decorator")
		set("name", v.Name)
	case *ast.Attribute:
		set("type", "Attribute")
		set("name", v.Name)
		set("valueType", v.Type.String())
		if v.Value != nil {
			child("value", v.Value)
		}
	case *ast.Symbol:
		set("type", "Symbol")
		set("name", v.Name)
	case *ast.Parameter:
		set("type", "Parameter")
		set("name", v.Name)
		set("valueType", v.Type.String())
		if v.Default != nil {
			child("default", v.Default)
		}
	case *ast.Literal:
		set("type", "Literal")
		set("valueType", v.Type.String())
		set("literalKind", v.LiteralKind.String())
		set("value", v.Value)
		appendRaw("elements", v.Elements)
		appendRaw("keys", v.Keys)
		appendRaw("values", v.Values)
	case *ast.FCall:
		set("type", "FCall")
		child("callable", v.Callable)
		appendRaw("args", v.Args)
		for i, name := range v.Kwargs.Names {
			raw, e := nodeJSON(v.Kwargs.Values[i])
			if e != nil {
				err = e
				break
			}
			set("kwargs.-1.name", name)
			setRaw("kwargs.-1.value", raw)
		}
	case *ast.AttributeAccess:
		set("type", "AttributeAccess")
		set("name", v.Name)
		child("object", v.Object)
	case *ast.Subscript:
		set("type", "Subscript")
		child("object", v.Object)
		child("index", v.Index)
	case *ast.Slice:
		set("type", "Slice")
		if v.Start != nil {
			child("start", v.Start)
		}
		if v.Stop != nil {
			child("stop", v.Stop)
		}
		if v.Step != nil {
			child("step", v.Step)
		}
	case *ast.Pass:
		set("type", "Pass")
	case *ast.Break:
		set("type", "Break")
	case *ast.Continue:
		set("type", "Continue")
	default:
		err = fmt.Errorf("debug: unknown node type %T", v)
	}

	if err != nil {
		return nil, err
	}
	return doc, nil
}
