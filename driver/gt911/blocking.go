package gt911

// Blocking drives a GT911 with transfers that complete before the
// call returns. Its zero value uses DefaultAddress. It holds no
// runtime state and may be copied.
type Blocking struct {
	// Address is the I²C address of the chip. Zero means
	// DefaultAddress.
	Address uint16
}

func (d Blocking) session(bus Bus, buf []byte) session {
	addr := address(d.Address)
	return session{
		tx: func(w, r []byte) error {
			return bus.Tx(addr, w, r)
		},
		buf: buf,
	}
}

// Init verifies the chip identity and clears pending reports. It
// must be called once before polling.
func (d Blocking) Init(bus Bus) error {
	var buf [GetTouchBufSize]byte
	return d.session(bus, buf[:]).init()
}

// ReadInfo reads the product id, firmware version and panel
// resolution.
func (d Blocking) ReadInfo(bus Bus) (Info, error) {
	var buf [InfoBufSize]byte
	return d.session(bus, buf[:]).info()
}

// Touch returns the first reported point. It returns false for a
// release and ErrNotReady when no new report is available.
func (d Blocking) Touch(bus Bus) (Point, bool, error) {
	var buf [GetTouchBufSize]byte
	return d.session(bus, buf[:]).touch()
}

// MultiTouch returns every reported point. An empty set means all
// contacts were released; ErrNotReady means no new report is
// available.
func (d Blocking) MultiTouch(bus Bus) (Touches, error) {
	var buf [GetMultiTouchBufSize]byte
	return d.session(bus, buf[:]).multiTouch()
}

// SetTouchLimit configures the maximum number of points, 1 to
// MaxTouches, the chip reports.
func (d Blocking) SetTouchLimit(bus Bus, n int) error {
	var buf [ConfigBufSize]byte
	return d.session(bus, buf[:]).setTouchLimit(n)
}

func address(addr uint16) uint16 {
	if addr == 0 {
		return DefaultAddress
	}
	return addr
}
