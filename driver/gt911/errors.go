package gt911

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned by polls when the chip has no data
	// newer than the last acknowledged report. It is the expected
	// result of polling faster than the report rate.
	ErrNotReady = errors.New("gt911: no new touch data")

	// ErrUnexpectedDevice matches initialization failures where the
	// device did not identify as a GT911.
	ErrUnexpectedDevice = errors.New("gt911: unexpected device")
)

// ProductIDError is returned by Init when the product id registers
// don't hold the GT911 id.
type ProductIDError struct {
	ID [productLen]byte
}

func (e *ProductIDError) Error() string {
	return fmt.Sprintf("gt911: unexpected product id %q", e.ID[:])
}

func (e *ProductIDError) Unwrap() error {
	return ErrUnexpectedDevice
}

// ProtocolError reports a status register with a point count the
// chip cannot produce, usually a sign of bus corruption or
// mismatched firmware.
type ProtocolError struct {
	Count int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("gt911: status reports %d points, at most %d supported", e.Count, MaxTouches)
}

// BusError wraps transfer failures from the bus.
type BusError struct {
	Op  string // "read" or "write".
	Reg uint16
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("gt911: %s %#04x: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
