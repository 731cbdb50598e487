package gt911

import (
	"image"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTouches(t *testing.T) {
	pts := []Point{{TrackID: 2, X: 1, Y: 1}, {TrackID: 0, X: 5, Y: 6, Area: 7}}
	ts := MakeTouches(pts...)
	if ts.Len() != 2 || ts.At(1) != pts[1] {
		t.Errorf("MakeTouches = %v", ts.Points())
	}
	if p, ok := ts.Find(0); !ok || p != pts[1] {
		t.Errorf("Find(0) = %+v, %v", p, ok)
	}
	if _, ok := ts.Find(1); ok {
		t.Error("Find(1) found a point")
	}
	if got := pts[1].Pos(); got != image.Pt(5, 6) {
		t.Errorf("Pos = %v", got)
	}
	var empty Touches
	if empty.Len() != 0 || len(empty.Points()) != 0 || empty != MakeTouches() {
		t.Errorf("zero Touches = %v", empty.Points())
	}
}

func TestTouchesAtRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At accepted an index past Len")
		}
	}()
	ts := MakeTouches(Point{})
	ts.At(1)
}

func TestMakeTouchesCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MakeTouches accepted too many points")
		}
	}()
	MakeTouches(make([]Point, MaxTouches+1)...)
}

func TestPointCompare(t *testing.T) {
	pts := []Point{
		{TrackID: 1, X: 0, Y: 5},
		{TrackID: 0, X: 9, Y: 9, Area: 2},
		{TrackID: 1, X: 3, Y: 4},
		{TrackID: 0, X: 9, Y: 9, Area: 1},
	}
	slices.SortFunc(pts, Point.Compare)
	want := []Point{
		{TrackID: 0, X: 9, Y: 9, Area: 1},
		{TrackID: 0, X: 9, Y: 9, Area: 2},
		{TrackID: 1, X: 3, Y: 4},
		{TrackID: 1, X: 0, Y: 5},
	}
	if d := cmp.Diff(want, pts); d != "" {
		t.Errorf("sorted points (-want +got):\n%s", d)
	}
	for _, p := range pts {
		if p.Compare(p) != 0 {
			t.Errorf("%+v compares unequal to itself", p)
		}
	}
	moved := pts[0]
	moved.X++
	if moved == pts[0] || moved.Compare(pts[0]) == 0 {
		t.Error("moved point compares equal")
	}
}
