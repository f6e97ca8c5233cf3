package pretokenizer

// SequencePreTokenizer applies its children in order, each one refining every
// piece produced by the previous one.
type SequencePreTokenizer struct {
	children []PreTokenizer
}

// NewSequencePreTokenizer returns a SequencePreTokenizer over children. The
// slice is copied. With no children Split returns the input unchanged.
func NewSequencePreTokenizer(children ...PreTokenizer) *SequencePreTokenizer {
	return &SequencePreTokenizer{children: append([]PreTokenizer(nil), children...)}
}

// Len returns the number of children.
func (p *SequencePreTokenizer) Len() int {
	return len(p.children)
}

func (p *SequencePreTokenizer) Split(text string) []string {
	pieces := []string{text}
	for _, child := range p.children {
		next := make([]string, 0, len(pieces))
		for _, piece := range pieces {
			next = append(next, child.Split(piece)...)
		}
		pieces = next
	}
	return pieces
}

func (*SequencePreTokenizer) preTokenizer() {}
