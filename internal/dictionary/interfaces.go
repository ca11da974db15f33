package dictionary

//go:generate mockgen -source=interfaces.go -destination=../mock/word_source_mock.go -package=mock

// WordSource yields the ordered raw word list the engine filters and samples
// from. Implementations must return the words in a stable order; the engine
// treats the slice as read-only.
type WordSource interface {
	// Words returns every candidate word of the source. It fails with
	// [ErrDictionaryUnavailable] when the underlying source cannot be read.
	Words() ([]string, error)
}
