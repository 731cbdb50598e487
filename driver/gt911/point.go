package gt911

import (
	"cmp"
	"image"
)

// Point is a single contact reported by the controller. Points are
// comparable; a changed Point for the same TrackID means the contact
// moved or changed size.
type Point struct {
	// TrackID identifies the physical contact across polls.
	TrackID uint8
	// X and Y are in screen pixels.
	X, Y uint16
	// Area is the size of the contact.
	Area uint16
}

func (p Point) Pos() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Compare orders points by track id, then by position and finally
// by area. It returns zero only for equal points.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.TrackID, q.TrackID); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Area, q.Area)
}

// Touches is a set of up to MaxTouches points in the order reported
// by the controller. It never allocates; two Touches are equal under
// == exactly when they hold the same points.
type Touches struct {
	points [MaxTouches]Point
	n      uint8
}

// MakeTouches returns the set of pts. It panics if there are more
// than MaxTouches points.
func MakeTouches(pts ...Point) Touches {
	var t Touches
	for _, p := range pts {
		t.push(p)
	}
	return t
}

func (t *Touches) Len() int {
	return int(t.n)
}

func (t *Touches) At(i int) Point {
	return t.points[:t.n][i]
}

// Points returns a view of the points in t.
func (t *Touches) Points() []Point {
	return t.points[:t.n]
}

// Find returns the point with the track id, if any.
func (t *Touches) Find(trackID uint8) (Point, bool) {
	for _, p := range t.points[:t.n] {
		if p.TrackID == trackID {
			return p, true
		}
	}
	return Point{}, false
}

func (t *Touches) push(p Point) {
	if int(t.n) == len(t.points) {
		panic("gt911: too many touch points")
	}
	t.points[t.n] = p
	t.n++
}

// Status is the content of the touch status register.
type Status uint8

// Ready reports whether the coordinate buffer holds data not yet
// acknowledged.
func (s Status) Ready() bool {
	return s&statusReady != 0
}

func (s Status) LargeTouch() bool {
	return s&statusLarge != 0
}

// Count is the number of reported points. It is not validated.
func (s Status) Count() int {
	return int(s & statusCount)
}
