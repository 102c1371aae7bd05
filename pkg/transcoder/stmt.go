package transcoder

import (
	"fmt"

	"github.com/lupyuen/ulispc/pkg/ast"
)

// transcodeStmt is the Statement Transcoder (spec.md §4.5). It returns
// the possibly-empty string the caller (the Tree Walker, or a nested
// recursive call for loop/branch bodies) should append to the current
// scope.
func (t *Transcoder) transcodeStmt(s ast.Stmt) (string, error) {
	switch n := s.(type) {
	case ast.Var:
		return t.transcodeVar(n)
	case ast.For:
		return t.transcodeFor(n)
	case ast.FnCall:
		return t.transcodeFnCall(n.Call)
	case ast.While:
		return t.transcodeWhile(n)
	case ast.If:
		return t.transcodeIf(n)
	case ast.Break:
		return "( return )", nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedStmt, s)
	}
}

// transcodeVar implements spec.md §4.5 Var: open a new scope that will
// only close when its enclosing parent scope closes, so that the
// binding is in scope for the remainder of the enclosing block.
func (t *Transcoder) transcodeVar(v ast.Var) (string, error) {
	value, err := t.transcodeExpr(v.Value)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("let* (( %s %s ))", v.Ident, value)
	t.scopes.Begin(header)
	return "", nil
}

// transcodeFor implements spec.md §4.5 For: validate the range, open a
// dotimes scope, transcode each body statement into it, and close the
// scope before returning — loop bodies never leak bindings into the
// enclosing scope.
func (t *Transcoder) transcodeFor(f ast.For) (string, error) {
	lo, hi, err := getRange(f.Range)
	if err != nil {
		return "", err
	}
	if lo != 0 {
		return "", fmt.Errorf("%w: %d", ErrNonZeroLowerBound, lo)
	}

	idx := t.scopes.Begin(fmt.Sprintf("dotimes (%s %d)", f.Loop.Name, hi))
	for _, stmt := range f.Loop.Body {
		out, err := t.transcodeStmt(stmt)
		if err != nil {
			return "", err
		}
		t.scopes.Add(out)
	}
	return t.scopes.End(idx), nil
}

// transcodeWhile implements the `While` → `loop` mapping documented in
// spec.md §4.5/§9: a loop guarded by an inverted condition that returns
// (breaks) once the condition goes false. A nil Cond is the scripting
// dialect's unconditional `loop { ... }` (spec.md §8 Scenario C) and
// gets no guard at all — the body controls termination itself, via
// Break.
func (t *Transcoder) transcodeWhile(w ast.While) (string, error) {
	idx := t.scopes.Begin("loop")
	if w.Cond != nil {
		cond, err := t.transcodeExpr(w.Cond)
		if err != nil {
			return "", err
		}
		t.scopes.Add(fmt.Sprintf("( if ( not %s ) \n  ( return )\n)", cond))
	}
	for _, stmt := range w.Body {
		out, err := t.transcodeStmt(stmt)
		if err != nil {
			return "", err
		}
		t.scopes.Add(out)
	}
	return t.scopes.End(idx), nil
}

// transcodeIf implements the `If(cond, then, else?)` → `if` mapping
// documented in spec.md §4.5/§9.
func (t *Transcoder) transcodeIf(i ast.If) (string, error) {
	cond, err := t.transcodeExpr(i.Cond)
	if err != nil {
		return "", err
	}

	thenBody, err := t.transcodeBlock(i.Then)
	if err != nil {
		return "", err
	}

	out := fmt.Sprintf("( if %s \n%s", cond, indent(thenBody))
	if i.Else != nil {
		elseBody, err := t.transcodeBlock(i.Else)
		if err != nil {
			return "", err
		}
		out += "\n" + indent(elseBody)
	}
	out += "\n)"
	return out, nil
}

// transcodeBlock transcodes a list of statements in isolation (used by
// If, which — unlike For/While — does not open its own uLisp scope:
// branches are rendered inline as a sequence of expressions).
func (t *Transcoder) transcodeBlock(stmts []ast.Stmt) (string, error) {
	var out string
	for n, stmt := range stmts {
		s, err := t.transcodeStmt(stmt)
		if err != nil {
			return "", err
		}
		if s == "" {
			continue
		}
		if n > 0 {
			out += "\n"
		}
		out += s
	}
	return out, nil
}

func indent(s string) string {
	out := ""
	for n, line := range splitLines(s) {
		if n > 0 {
			out += "\n"
		}
		out += "  " + line
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// getRange implements spec.md §4.5 step 1: the For range must be a call
// to range(lo, hi) with two Stack args resolving to integer constants.
func getRange(e ast.Expr) (lo, hi int64, err error) {
	call, ok := e.(ast.FnCallExpr)
	if !ok || call.Call.Name != "range" {
		return 0, 0, fmt.Errorf("%w: not a range() call", ErrMalformedRange)
	}
	if len(call.Call.Args) != 2 {
		return 0, 0, fmt.Errorf("%w: range() wants 2 args, got %d", ErrMalformedRange, len(call.Call.Args))
	}

	vals := make([]int64, 2)
	for i, arg := range call.Call.Args {
		stack, ok := arg.(ast.Stack)
		if !ok {
			return 0, 0, fmt.Errorf("%w: range() arg %d is not a literal", ErrMalformedRange, i)
		}
		if stack.Index < 0 || stack.Index >= len(call.Call.Constants) {
			return 0, 0, fmt.Errorf("%w: range() arg %d stack index out of range", ErrMalformedRange, i)
		}
		c := call.Call.Constants[stack.Index]
		if c.Kind != ast.IntegerValue {
			return 0, 0, fmt.Errorf("%w: range() arg %d is not an integer", ErrMalformedRange, i)
		}
		vals[i] = c.Value()
	}
	return vals[0], vals[1], nil
}
