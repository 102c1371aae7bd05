package transcoder

import "strings"

// Logger is the minimal logging surface the Scope Stack needs. A
// *zap.SugaredLogger satisfies this directly; tests use a no-op
// implementation so the begin/add trace doesn't need to be asserted on.
type Logger interface {
	Debugf(template string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}

// scope is one open uLisp lexical region: a header ("let* (( x 11 ))",
// "dotimes (i 10)", ...) followed by the finished S-expressions nested
// inside it, in emission order.
type scope struct {
	header string
	body   []string
}

// render renders the scope as a single uLisp S-expression:
//
//	( <header>
//	  <body[0]>
//	  <body[1]>
//	  ...
//	)
func (s scope) render() string {
	var b strings.Builder
	b.WriteString("( ")
	b.WriteString(s.header)
	b.WriteString(" \n")
	for _, expr := range s.body {
		for _, line := range strings.Split(expr, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString(")")
	return b.String()
}

// ScopeStack is the ordered stack of open uLisp scopes described in
// spec.md §4.1. Unlike the original source (a process-global static
// mutable Vec), it is an explicit value a Transcoder holds by pointer —
// see spec.md §9's preferred redesign: this removes global state and
// makes concurrent/independent transcodes and unit tests trivial.
type ScopeStack struct {
	stack []scope
	log   Logger
}

// NewScopeStack returns an empty stack. A nil Logger disables tracing.
func NewScopeStack(log Logger) *ScopeStack {
	if log == nil {
		log = noopLogger{}
	}
	return &ScopeStack{log: log}
}

// Begin opens a new scope under the current one and returns its index
// (0-based; the first scope opened has index 0).
func (s *ScopeStack) Begin(header string) int {
	s.log.Debugf("begin: %s", header)
	s.stack = append(s.stack, scope{header: header})
	return len(s.stack) - 1
}

// Add appends a finished S-expression to the current (top) scope. A
// no-op on an empty string, per spec.md §4.1.
func (s *ScopeStack) Add(expr string) {
	if expr == "" {
		return
	}
	s.log.Debugf("add: %s", expr)
	s.addSilent(expr)
}

// addSilent appends without tracing: used internally by End when it
// unwinds several scopes in one call. Only the caller-visible Add (one
// per transcoded AST node, per the Tree Walker) produces an "add:"
// trace line — matching the original's log output, where automatic
// scope-draining at block end is not itself logged.
func (s *ScopeStack) addSilent(expr string) {
	top := len(s.stack) - 1
	s.stack[top].body = append(s.stack[top].body, expr)
}

// Depth reports how many scopes are currently open.
func (s *ScopeStack) Depth() int {
	return len(s.stack)
}

// End closes the scope at index and every scope above it, in LIFO
// order (spec.md §4.1 invariant 3). Each closed inner scope's rendered
// text becomes a body element of the next scope down; the rendered
// text of the scope at index itself is returned once the stack has
// unwound to it.
func (s *ScopeStack) End(index int) string {
	var rendered string
	for len(s.stack) > index {
		top := len(s.stack) - 1
		rendered = s.stack[top].render()
		s.stack = s.stack[:top]
		if len(s.stack) > index {
			// Not yet back to the target scope: the rendering
			// becomes a child expression of the new top.
			s.addSilent(rendered)
		}
	}
	return rendered
}
