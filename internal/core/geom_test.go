package core

import "testing"

func TestBoxContains(t *testing.T) {
	box := NewBox(24, 111, 148, 168)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(50, 150), true},
		{"top-left corner", Pt(24, 148), true},
		{"bottom-right corner", Pt(111, 168), true},
		{"left of box", Pt(23, 150), false},
		{"right of box", Pt(112, 150), false},
		{"above box", Pt(50, 147), false},
		{"below box", Pt(50, 169), false},
		{"no point", NoPoint, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoxEmpty(t *testing.T) {
	if NewBox(0, 0, 0, 0).Empty() {
		t.Error("single-pixel box should not be empty")
	}
	if !NewBox(5, 4, 0, 10).Empty() {
		t.Error("box with X1 > X2 should be empty")
	}
	if NewBox(5, 4, 0, 10).Contains(Pt(5, 5)) {
		t.Error("empty box should not contain any point")
	}
}

func TestBoxSize(t *testing.T) {
	b := NewBox(0, 223, 33, 168)
	if b.Width() != 224 {
		t.Errorf("Width() = %d, expected 224", b.Width())
	}
	if b.Height() != 136 {
		t.Errorf("Height() = %d, expected 136", b.Height())
	}
	if NewBox(3, 1, 0, 0).Width() != 0 {
		t.Error("empty box should have zero width")
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(10, 20, 0, 5).Translate(0, 33)
	if b != NewBox(10, 20, 33, 38) {
		t.Errorf("Translate() = %+v", b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
