package main

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gt911.dev/driver/gt911"
)

type eventKind string

const (
	down eventKind = "down"
	move eventKind = "move"
	up   eventKind = "up"
)

type event struct {
	Kind eventKind `cbor:"kind"`
	ID   uint8     `cbor:"id"`
	X    uint16    `cbor:"x"`
	Y    uint16    `cbor:"y"`
	Area uint16    `cbor:"area"`
}

type emitter func(e event) error

func newEmitter(w io.Writer, format string) (emitter, error) {
	switch format {
	case "text":
		return func(e event) error {
			_, err := fmt.Fprintf(w, "%s id=%d x=%d y=%d area=%d\n", e.Kind, e.ID, e.X, e.Y, e.Area)
			return err
		}, nil
	case "cbor":
		enc := cbor.NewEncoder(w)
		return func(e event) error {
			return enc.Encode(e)
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// diff emits the events that turn prev into cur. Contacts are matched
// by track id.
func diff(prev, cur *gt911.Touches, emit emitter) error {
	for _, p := range cur.Points() {
		kind := down
		if old, ok := prev.Find(p.TrackID); ok {
			if old == p {
				continue
			}
			kind = move
		}
		if err := emit(newEvent(kind, p)); err != nil {
			return err
		}
	}
	for _, p := range prev.Points() {
		if _, ok := cur.Find(p.TrackID); !ok {
			if err := emit(newEvent(up, p)); err != nil {
				return err
			}
		}
	}
	return nil
}

func newEvent(kind eventKind, p gt911.Point) event {
	return event{Kind: kind, ID: p.TrackID, X: p.X, Y: p.Y, Area: p.Area}
}
