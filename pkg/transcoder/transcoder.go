// Package transcoder implements the AST-to-uLisp transcoder: the
// recursive tree walk with scoped emission described in spec.md §4.
// The Scope Stack is held as a value on the Transcoder (not process-
// global state), so independent transcodes never interfere and the
// whole package is safe to exercise concurrently from separate
// Transcoder instances (spec.md §5, §9).
package transcoder

import (
	"fmt"
	"io"

	"github.com/lupyuen/ulispc/pkg/ast"
)

// Transcoder holds the per-invocation state of one transcode: its Scope
// Stack and Name Mapper.
type Transcoder struct {
	scopes *ScopeStack
	names  *NameMapper
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithLogger sets the logger used for the begin/add scope trace.
func WithLogger(log Logger) Option {
	return func(t *Transcoder) { t.scopes = NewScopeStack(log) }
}

// WithRenames merges extra entries into the Name Mapper's table, taking
// precedence over the built-ins.
func WithRenames(extra map[string]string) Option {
	return func(t *Transcoder) { t.names = NewNameMapper(extra) }
}

// New returns a Transcoder ready for one Transcode/Run call. A fresh
// Transcoder must be used per call: its Scope Stack is not reset.
func New(opts ...Option) *Transcoder {
	t := &Transcoder{
		scopes: NewScopeStack(nil),
		names:  NewNameMapper(nil),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transcode is the pure top-level entry point (spec.md §6): AST in,
// uLisp program text out. Scope Stack invariant 1 (§3) guarantees the
// stack is empty again once this returns successfully.
func Transcode(p ast.Program, opts ...Option) (string, error) {
	t := New(opts...)
	return t.transcode(p)
}

func (t *Transcoder) transcode(p ast.Program) (string, error) {
	root := t.scopes.Begin("let* ()")

	var walker Walker
	err := walker.Walk(p, func(stmt ast.Stmt) error {
		out, err := t.transcodeStmt(stmt)
		if err != nil {
			return err
		}
		t.scopes.Add(out)
		return nil
	})
	if err != nil {
		return "", err
	}

	return t.scopes.End(root), nil
}

// Run transcodes p and writes the rendered uLisp program to w, mirroring
// spec.md §6's `transcode(ast) → unit` behavior (the original prints to
// standard output; Run generalizes "standard output" to any io.Writer).
func Run(p ast.Program, w io.Writer, opts ...Option) error {
	out, err := Transcode(p, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
