package transcoder

import "errors"

// Sentinel errors identifying the failure kinds spec.md §7 enumerates.
// The transcoder fails fast: a malformed or unsupported AST indicates a
// front-end/transcoder version mismatch, not something to recover from.
var (
	// ErrUnsupportedStmt is returned for a statement kind this
	// transcoder does not translate.
	ErrUnsupportedStmt = errors.New("transcoder: unsupported statement kind")
	// ErrUnsupportedExpr is returned for an expression kind this
	// transcoder does not translate.
	ErrUnsupportedExpr = errors.New("transcoder: unsupported expression kind")
	// ErrMalformedRange is returned when a For loop's range expression
	// is not a call to range(lo, hi) with integer-literal arguments.
	ErrMalformedRange = errors.New("transcoder: malformed for-range expression")
	// ErrNonZeroLowerBound is returned for a For loop whose range does
	// not start at zero; spec.md §4.5/§9 explicitly leaves this
	// unsupported.
	ErrNonZeroLowerBound = errors.New("transcoder: non-zero for-range lower bound is unsupported")
	// ErrNonIntegerConstant is returned when a Stack slot dereferences
	// a constant this transcoder cannot render as a literal.
	ErrNonIntegerConstant = errors.New("transcoder: constant is not an integer")
)
