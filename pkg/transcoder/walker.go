package transcoder

import "github.com/lupyuen/ulispc/pkg/ast"

// Walker drives the pre-order traversal of spec.md §4.6, delivering
// each top-level statement to the Transcoder exactly once. Walk already
// visits each element of ast.Program.Statements once, so the
// position-based dedup described in the original source is defensive
// here rather than load-bearing. ast.Pos uniqueness is not enforced:
// nodes built without a position (the zero Pos) are never treated as
// duplicates of each other — see spec.md §9's instruction to document
// which semantics the chosen AST representation provides.
type Walker struct {
	lastPos ast.Pos
	seen    bool
}

// Walk visits each statement of the program and invokes visit(stmt) for
// statements whose position has not already been handled.
func (w *Walker) Walk(p ast.Program, visit func(ast.Stmt) error) error {
	for _, stmt := range p.Statements {
		pos := stmt.Position()
		if w.seen && pos == w.lastPos && pos != (ast.Pos{}) {
			continue
		}
		w.lastPos = pos
		w.seen = true
		if err := visit(stmt); err != nil {
			return err
		}
	}
	return nil
}
