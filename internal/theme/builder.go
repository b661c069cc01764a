package theme

// Builder assembles a new document from a base plus field overrides.
// The base is cloned up front and never modified.
type Builder struct {
	doc *Document
	err error
}

func NewBuilder(base *Document) *Builder {
	if base == nil {
		base = Baseline()
	}
	return &Builder{doc: Clone(base)}
}

// Set records one override. After the first failure later calls are ignored.
func (b *Builder) Set(path, value string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = SetField(b.doc, path, value)
	return b
}

// Apply runs fn against the document under construction.
func (b *Builder) Apply(fn func(*Document) error) *Builder {
	if b.err != nil || fn == nil {
		return b
	}
	b.err = fn(b.doc)
	return b
}

func (b *Builder) Build() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return Clone(b.doc), nil
}
