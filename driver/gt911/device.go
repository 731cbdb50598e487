package gt911

import (
	"context"
	"fmt"
)

// Device drives a GT911 over a ContextBus. Transfers read from and
// write to a buffer supplied by the caller, borrowed for the duration
// of each call only, so the caller controls its placement. Buffers
// shorter than the size documented for an operation cause a panic.
//
// A poll cancelled mid-transfer may leave the report unacknowledged.
// The next poll then returns the same report again.
type Device struct {
	// Address is the I²C address of the chip. Zero means
	// DefaultAddress.
	Address uint16
}

func (d Device) session(ctx context.Context, bus ContextBus, buf []byte, size int) session {
	if len(buf) < size {
		panic(fmt.Sprintf("gt911: buffer of %d bytes, need %d", len(buf), size))
	}
	addr := address(d.Address)
	return session{
		tx: func(w, r []byte) error {
			return bus.TxContext(ctx, addr, w, r)
		},
		buf: buf,
	}
}

// Init is like Blocking.Init. buf must hold GetTouchBufSize bytes.
func (d Device) Init(ctx context.Context, bus ContextBus, buf []byte) error {
	return d.session(ctx, bus, buf, GetTouchBufSize).init()
}

// ReadInfo is like Blocking.ReadInfo. buf must hold InfoBufSize
// bytes.
func (d Device) ReadInfo(ctx context.Context, bus ContextBus, buf []byte) (Info, error) {
	return d.session(ctx, bus, buf, InfoBufSize).info()
}

// Touch is like Blocking.Touch. buf must hold GetTouchBufSize bytes.
func (d Device) Touch(ctx context.Context, bus ContextBus, buf []byte) (Point, bool, error) {
	return d.session(ctx, bus, buf, GetTouchBufSize).touch()
}

// MultiTouch is like Blocking.MultiTouch. buf must hold
// GetMultiTouchBufSize bytes.
func (d Device) MultiTouch(ctx context.Context, bus ContextBus, buf []byte) (Touches, error) {
	return d.session(ctx, bus, buf, GetMultiTouchBufSize).multiTouch()
}

// SetTouchLimit is like Blocking.SetTouchLimit. buf must hold
// ConfigBufSize bytes.
func (d Device) SetTouchLimit(ctx context.Context, bus ContextBus, buf []byte, n int) error {
	return d.session(ctx, bus, buf, ConfigBufSize).setTouchLimit(n)
}
