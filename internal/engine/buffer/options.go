package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithContent sets the initial text of the buffer.
func WithContent(text string) Option {
	return func(b *Buffer) {
		b.initContent = text
	}
}

// WithName sets the display name, usually the file path.
func WithName(name string) Option {
	return func(b *Buffer) {
		b.name = name
	}
}

// WithHistoryCapacity sets how many edits each history stack keeps.
func WithHistoryCapacity(capacity int) Option {
	return func(b *Buffer) {
		if capacity > 0 {
			b.historyCapacity = capacity
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l Logger) Option {
	return func(b *Buffer) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithChunkedLoad splits loaded text into LeafSize leaves instead of keeping
// it in one leaf.
func WithChunkedLoad(enabled bool) Option {
	return func(b *Buffer) {
		b.chunkOnLoad = enabled
	}
}

// WithMaxDepth rebalances the rope whenever an edit leaves it deeper than
// depth. Zero disables rebalancing.
func WithMaxDepth(depth int) Option {
	return func(b *Buffer) {
		if depth >= 0 {
			b.maxDepth = depth
		}
	}
}
