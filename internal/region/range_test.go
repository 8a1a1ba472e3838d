package region

import "testing"

func TestNewRangeNormalizes(t *testing.T) {
	r := NewRange(5, 2)
	if r.Start != 2 || r.End != 5 {
		t.Errorf("expected [2:5), got %s", r)
	}
}

func TestNewRangeClampsNegative(t *testing.T) {
	r := NewRange(-3, 4)
	if r.Start != 0 || r.End != 4 {
		t.Errorf("expected [0:4), got %s", r)
	}
}

func TestCaretRange(t *testing.T) {
	r := CaretRange(7)
	if !r.IsEmpty() {
		t.Error("caret range should be empty")
	}
	if r.Location() != 7 {
		t.Errorf("expected location 7, got %d", r.Location())
	}
}

func TestRangeLen(t *testing.T) {
	r := NewRange(2, 9)
	if r.Len() != 7 {
		t.Errorf("expected length 7, got %d", r.Len())
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(2, 5)
	cases := []struct {
		index int
		want  bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.index); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestRangeClamp(t *testing.T) {
	r := NewRange(3, 12).Clamp(8)
	if r.Start != 3 || r.End != 8 {
		t.Errorf("expected [3:8), got %s", r)
	}

	r = NewRange(10, 12).Clamp(8)
	if r.Start != 8 || r.End != 8 {
		t.Errorf("expected [8:8), got %s", r)
	}
}
