package pretokenizer

// PreTokenizer splits text into the ordered pieces handed to a subword encoder.
//
// The set of implementations is closed: RegexPreTokenizer, DigitsPreTokenizer,
// ByteLevelPreTokenizer and SequencePreTokenizer. Every implementation is
// immutable after construction, and Split is safe to call concurrently.
type PreTokenizer interface {
	Split(text string) []string

	preTokenizer()
}

var (
	_ PreTokenizer = (*RegexPreTokenizer)(nil)
	_ PreTokenizer = (*DigitsPreTokenizer)(nil)
	_ PreTokenizer = (*ByteLevelPreTokenizer)(nil)
	_ PreTokenizer = (*SequencePreTokenizer)(nil)
)
