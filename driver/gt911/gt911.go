// Package gt911 implements a polling driver for the Goodix GT911
// capacitive touch controller.
//
// The driver keeps no touch history: every poll returns the points
// reported since the previous acknowledged report, and callers compare
// successive results to detect movement. Init must complete before
// the first poll.
//
// Blocking performs plain transfers over a Bus. Device performs
// cancellable transfers over a ContextBus through a caller supplied
// buffer, for transports that need it in particular memory. Both
// share the same register protocol.
package gt911

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
)

// Bus is an I²C bus. It is implemented by periph.io's i2c.Bus and
// TinyGo's *machine.I2C.
type Bus interface {
	// Tx writes w and then reads len(r) bytes into r, in a single
	// transaction when both are non-empty.
	Tx(addr uint16, w, r []byte) error
}

// ContextBus is an I²C bus whose transfers may suspend the caller
// until they complete or ctx is done.
type ContextBus interface {
	TxContext(ctx context.Context, addr uint16, w, r []byte) error
}

// WithContext adapts a Bus to a ContextBus. Cancellation is observed
// between transfers.
func WithContext(b Bus) ContextBus {
	return ctxBus{b}
}

type ctxBus struct {
	bus Bus
}

func (c ctxBus) TxContext(ctx context.Context, addr uint16, w, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.bus.Tx(addr, w, r)
}

// Info describes the connected controller.
type Info struct {
	ProductID string
	Firmware  uint16
	// Width and Height are the x and y resolution the panel is
	// configured for.
	Width, Height uint16
	VendorID      uint8
}

// session runs the register protocol over a single transfer function
// and scratch buffer. It is shared by Blocking and Device.
type session struct {
	tx  func(w, r []byte) error
	buf []byte
}

func (s session) read(reg uint16, n int) ([]byte, error) {
	w, r := s.buf[:regLen], s.buf[regLen:regLen+n]
	binary.BigEndian.PutUint16(w, reg)
	if err := s.tx(w, r); err != nil {
		return nil, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return r, nil
}

func (s session) write(reg uint16, val byte) error {
	w := s.buf[:regLen+1]
	binary.BigEndian.PutUint16(w, reg)
	w[regLen] = val
	if err := s.tx(w, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

func (s session) clear() error {
	cmd := ClearCommand()
	w := s.buf[:len(cmd)]
	copy(w, cmd[:])
	if err := s.tx(w, nil); err != nil {
		return &BusError{Op: "write", Reg: regStatus, Err: err}
	}
	return nil
}

func (s session) init() error {
	// Enter coordinate reading mode.
	if err := s.write(regCommand, 0); err != nil {
		return err
	}
	id, err := s.read(regProductID, productLen)
	if err != nil {
		return err
	}
	if string(id) != productID {
		e := new(ProductIDError)
		copy(e.ID[:], id)
		return e
	}
	// Drop any report latched before now.
	return s.write(regStatus, 0)
}

func (s session) info() (Info, error) {
	r, err := s.read(regProductID, infoLen)
	if err != nil {
		return Info{}, err
	}
	bo := binary.LittleEndian
	id := r[:productLen]
	if i := bytes.IndexByte(id, 0); i != -1 {
		id = id[:i]
	}
	return Info{
		ProductID: string(id),
		Firmware:  bo.Uint16(r[regFirmware-regProductID:]),
		Width:     bo.Uint16(r[regXResolution-regProductID:]),
		Height:    bo.Uint16(r[regYResolution-regProductID:]),
		VendorID:  r[regVendorID-regProductID],
	}, nil
}

// status reads the status register and returns the point count of a
// pending report. An invalid count is acknowledged before it is
// returned so the chip keeps reporting.
func (s session) status() (int, error) {
	r, err := s.read(regStatus, 1)
	if err != nil {
		return 0, err
	}
	ready, n, perr := DecodeStatus(r[0])
	switch {
	case !ready:
		return 0, ErrNotReady
	case perr != nil:
		if err := s.clear(); err != nil {
			return 0, err
		}
		return 0, perr
	}
	return n, nil
}

func (s session) touch() (Point, bool, error) {
	n, err := s.status()
	if err != nil {
		return Point{}, false, err
	}
	var p Point
	if n > 0 {
		r, err := s.read(regPoint1, EntryLen)
		if err != nil {
			return Point{}, false, err
		}
		p = DecodePoint(r)
	}
	if err := s.clear(); err != nil {
		return Point{}, false, err
	}
	return p, n > 0, nil
}

func (s session) multiTouch() (Touches, error) {
	n, err := s.status()
	if err != nil {
		return Touches{}, err
	}
	var t Touches
	if n > 0 {
		r, err := s.read(regPoint1, n*EntryLen)
		if err != nil {
			return Touches{}, err
		}
		t = DecodeTouches(r, n)
	}
	if err := s.clear(); err != nil {
		return Touches{}, err
	}
	return t, nil
}

// setTouchLimit rewrites the config block with a new maximum number
// of reported points.
func (s session) setTouchLimit(n int) error {
	if n < 1 || n > MaxTouches {
		return fmt.Errorf("gt911: touch limit %d out of range [1,%d]", n, MaxTouches)
	}
	cfg, err := s.read(regConfig, configLen)
	if err != nil {
		return err
	}
	tn := &cfg[regTouchNumber-regConfig]
	*tn = *tn&^0x0f | byte(n)
	w := s.buf[:ConfigBufSize]
	binary.BigEndian.PutUint16(w, regConfig)
	w[regLen+configLen] = configChecksum(cfg)
	w[regLen+configLen+1] = 1 // Config_Fresh.
	if err := s.tx(w, nil); err != nil {
		return &BusError{Op: "write", Reg: regConfig, Err: err}
	}
	return nil
}
