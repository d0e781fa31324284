package model

import "testing"

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 45)

	if b.Width() != 100 {
		t.Errorf("Expected width 100, got %v", b.Width())
	}
	if b.Height() != 25 {
		t.Errorf("Expected height 25, got %v", b.Height())
	}
	if b.Area() != 2500 {
		t.Errorf("Expected area 2500, got %v", b.Area())
	}

	c := b.Center()
	if c.X != 60 || c.Y != 32.5 {
		t.Errorf("Expected center (60, 32.5), got (%v, %v)", c.X, c.Y)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(0, 0, 100, 50)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{50, 25}, true},
		{"on edge", Point{100, 50}, true},
		{"outside right", Point{101, 25}, false},
		{"outside below", Point{50, 51}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBBoxIntersects(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)

	if !a.Intersects(NewBBox(5, 5, 15, 15)) {
		t.Error("Expected overlapping boxes to intersect")
	}
	if a.Intersects(NewBBox(11, 11, 20, 20)) {
		t.Error("Expected disjoint boxes to not intersect")
	}
	if !a.Intersects(NewBBox(10, 0, 20, 10)) {
		t.Error("Expected edge-touching boxes to intersect")
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 10, 50, 20)
	b := NewBBox(25, 5, 100, 15)

	u := a.Union(b)
	want := NewBBox(0, 5, 100, 20)
	if u != want {
		t.Errorf("Expected union %+v, got %+v", want, u)
	}
}

func TestBBoxIsValid(t *testing.T) {
	if !NewBBox(0, 0, 1, 1).IsValid() {
		t.Error("Expected positive-dimension box to be valid")
	}
	if NewBBox(0, 0, 0, 1).IsValid() {
		t.Error("Expected zero-width box to be invalid")
	}
	if NewBBox(5, 5, 1, 1).IsValid() {
		t.Error("Expected inverted box to be invalid")
	}
}

func TestPointDistance(t *testing.T) {
	d := Point{0, 0}.Distance(Point{3, 4})
	if d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}
