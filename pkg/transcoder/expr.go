package transcoder

import (
	"fmt"
	"strconv"

	"github.com/lupyuen/ulispc/pkg/ast"
)

// transcodeExpr is the Expression Transcoder (spec.md §4.2): a total
// function on the recognized AST expression subset, producing the
// uLisp token string for e.
func (t *Transcoder) transcodeExpr(e ast.Expr) (string, error) {
	switch n := e.(type) {
	case ast.IntegerConstant:
		return strconv.FormatInt(n.Value, 10), nil
	case ast.Variable:
		return n.Name, nil
	case ast.FnCallExpr:
		return t.transcodeFnCall(n.Call)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedExpr, e)
	}
}

// transcodeFnCall is the Function-Call Transcoder (spec.md §4.3).
func (t *Transcoder) transcodeFnCall(call ast.Call) (string, error) {
	prefix := ""
	if call.Namespace != "" {
		prefix = "bl_" + call.Namespace + "_"
	}

	args := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		val, err := t.transcodeArg(arg, call.Constants)
		if err != nil {
			return "", err
		}
		args = append(args, val)
	}

	out := "( " + prefix + t.names.Rename(call.Name) + " "
	for _, a := range args {
		out += a + " "
	}
	out += ")"
	return out, nil
}

// transcodeArg renders a single call argument. A Stack slot dereferences
// the call's constant table; anything else recurses through
// transcodeExpr.
func (t *Transcoder) transcodeArg(arg ast.Expr, constants []ast.Value) (string, error) {
	stack, ok := arg.(ast.Stack)
	if !ok {
		return t.transcodeExpr(arg)
	}
	if stack.Index < 0 || stack.Index >= len(constants) {
		return "", fmt.Errorf("%w: stack index %d out of range", ErrNonIntegerConstant, stack.Index)
	}
	c := constants[stack.Index]
	if c.Kind != ast.IntegerValue {
		return "", fmt.Errorf("%w: constant kind %v", ErrNonIntegerConstant, c.Kind)
	}
	return strconv.FormatInt(c.Value(), 10), nil
}
