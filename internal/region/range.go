package region

import "fmt"

// Range is a rune range within a region's content.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start int // Inclusive start index
	End   int // Exclusive end index
}

// NewRange creates a range from start and end indices.
// A backward pair is normalized so Start <= End.
func NewRange(start, end int) Range {
	if start < 0 {
		start = 0
	}
	if end < start {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// CaretRange creates a zero-length range at the given index.
func CaretRange(index int) Range {
	if index < 0 {
		index = 0
	}
	return Range{Start: index, End: index}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in runes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Location returns the range's start index.
func (r Range) Location() int {
	return r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given index is within the range.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Clamp returns the range restricted to [0, max].
func (r Range) Clamp(max int) Range {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	} else if start > max {
		start = max
	}
	if end < start {
		end = start
	} else if end > max {
		end = max
	}
	return Range{Start: start, End: end}
}

// Equals returns true if two ranges have the same bounds.
func (r Range) Equals(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}
