package ittech

// Identifier types for the three module collections. All three are single
// bytes on disk, but they are deliberately distinct types so that e.g. an
// instrument id cannot be used to index patterns by accident; conversion to
// and from the raw byte is always explicit.
type (
	PatternID    uint8
	InstrumentID uint8
	SampleID     uint8
)

// lookup is the single indexed-access path shared by the three collections:
// identifiers whose raw value is a valid position resolve to the element,
// everything else is absence. Never out-of-bounds, never a panic.
func lookup[T any](s []T, index uint8) (*T, bool) {
	if int(index) >= len(s) {
		return nil, false
	}
	return &s[index], true
}
