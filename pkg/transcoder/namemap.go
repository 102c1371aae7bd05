package transcoder

// defaultRenames is the Name Mapper's built-in table (spec.md §4.4):
// operators and calls whose uLisp spelling differs from their surface
// spelling in the scripting dialect.
var defaultRenames = map[string]string{
	"%":  "mod",
	"==": "eq",
}

// NameMapper renames operators and calls from scripting-dialect surface
// syntax to uLisp surface syntax. It is total: any name not in the
// table passes through unchanged. The built-in table is extensible —
// config-loaded overrides (pkg/config) are merged on top of
// defaultRenames without touching this source file, matching how the
// teacher layers config over compiled-in option defaults.
type NameMapper struct {
	renames map[string]string
}

// NewNameMapper returns a mapper seeded with the built-in table plus any
// extra entries, which take precedence over the built-ins.
func NewNameMapper(extra map[string]string) *NameMapper {
	m := &NameMapper{renames: make(map[string]string, len(defaultRenames)+len(extra))}
	for k, v := range defaultRenames {
		m.renames[k] = v
	}
	for k, v := range extra {
		m.renames[k] = v
	}
	return m
}

// Rename maps name to its uLisp spelling, or returns it unchanged.
func (m *NameMapper) Rename(name string) string {
	if mapped, ok := m.renames[name]; ok {
		return mapped
	}
	return name
}
