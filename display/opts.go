package display

type Option func(*renderState)

// MaxDepth bounds container descent. A container met at the bound
// renders as an elision marker instead of its members.
func MaxDepth(n int) Option {
	return func(rs *renderState) { rs.maxDepth = n }
}

// MaxListItems bounds how many elements of one list are shown.
func MaxListItems(n int) Option {
	return func(rs *renderState) { rs.maxItems = n }
}

// MaxBytes bounds how many bytes of one byte string are shown.
func MaxBytes(n int) Option {
	return func(rs *renderState) { rs.maxBytes = n }
}

// Indent sets the indent width. Default 2.
func Indent(n int) Option {
	return func(rs *renderState) { rs.indent = n }
}

// WithColor renders with ANSI colors.
func WithColor(c *Colors) Option {
	return func(rs *renderState) { rs.colors = c }
}
