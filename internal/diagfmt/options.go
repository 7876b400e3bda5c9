package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeFull prints the path as stored in the file set.
	PathModeFull PathMode = iota
	// PathModeBasename prints only the last path element.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// Width caps the rendered source line, 0 means unbounded.
	Width int
	// ShowSource controls whether the offending source line and a caret
	// underline are printed beneath each diagnostic.
	ShowSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	// Max truncates the output, not the bag.
	Max int
}
