package gt911

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
)

// Simulator emulates the GT911 register file. It implements Bus and
// ContextBus and records every transfer.
type Simulator struct {
	// Addr is the address the simulator responds to.
	Addr uint16
	// Txs lists the transfers, oldest first.
	Txs []Tx

	regs [simRegs]byte
	fail error
}

// Tx is a recorded transfer.
type Tx struct {
	Reg uint16
	// Write is the data written after the register address.
	Write []byte
	// Read is the number of bytes read.
	Read int
}

const (
	simBase = 0x8000
	simRegs = 0x200
)

var errNACK = errors.New("gt911: simulator: no acknowledge")

// NewSimulator returns a simulated 800x480 panel at DefaultAddress
// configured for MaxTouches points.
func NewSimulator() *Simulator {
	s := &Simulator{Addr: DefaultAddress}
	copy(s.reg(regProductID, productLen), productID)
	bo := binary.LittleEndian
	bo.PutUint16(s.reg(regFirmware, 2), 0x1060)
	bo.PutUint16(s.reg(regXResolution, 2), 800)
	bo.PutUint16(s.reg(regYResolution, 2), 480)
	cfg := s.reg(regConfig, configLen)
	cfg[0] = 'A'
	// X and Y output max.
	bo.PutUint16(cfg[1:], 800)
	bo.PutUint16(cfg[3:], 480)
	cfg[regTouchNumber-regConfig] = MaxTouches
	s.reg(regChecksum, 1)[0] = configChecksum(cfg)
	return s
}

func (s *Simulator) reg(r uint16, n int) []byte {
	off := int(r - simBase)
	return s.regs[off : off+n]
}

func (s *Simulator) Tx(addr uint16, w, r []byte) error {
	if err := s.fail; err != nil {
		s.fail = nil
		return err
	}
	if addr != s.Addr {
		return errNACK
	}
	if len(w) < regLen {
		return fmt.Errorf("gt911: simulator: %d byte write", len(w))
	}
	reg := binary.BigEndian.Uint16(w)
	data := w[regLen:]
	if reg < simBase || int(reg-simBase)+max(len(data), len(r)) > simRegs {
		return fmt.Errorf("gt911: simulator: register %#04x out of range", reg)
	}
	tx := Tx{Reg: reg, Read: len(r)}
	if len(data) > 0 {
		tx.Write = append([]byte(nil), data...)
	}
	s.Txs = append(s.Txs, tx)
	copy(s.reg(reg, len(data)), data)
	copy(r, s.reg(reg, len(r)))
	if fresh := s.reg(regConfigFresh, 1); fresh[0] != 0 && s.ConfigValid() {
		fresh[0] = 0
	}
	return nil
}

func (s *Simulator) TxContext(ctx context.Context, addr uint16, w, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Tx(addr, w, r)
}

// Press latches a report of the points. It panics if there are more
// points than the status register can count.
func (s *Simulator) Press(pts ...Point) {
	if len(pts) > statusCount {
		panic("gt911: simulator: too many points")
	}
	bo := binary.LittleEndian
	for i, p := range pts {
		e := s.reg(regPoint1+uint16(i*EntryLen), EntryLen)
		e[0] = p.TrackID
		bo.PutUint16(e[1:], p.X)
		bo.PutUint16(e[3:], p.Y)
		bo.PutUint16(e[5:], p.Area)
		e[7] = 0
	}
	s.SetStatus(statusReady | byte(len(pts)))
}

// Release latches a report without points.
func (s *Simulator) Release() {
	s.Press()
}

// SetStatus overrides the status register.
func (s *Simulator) SetStatus(b byte) {
	s.reg(regStatus, 1)[0] = b
}

// Status returns the status register.
func (s *Simulator) Status() Status {
	return Status(s.reg(regStatus, 1)[0])
}

// SetProductID overrides the product id registers.
func (s *Simulator) SetProductID(id [productLen]byte) {
	copy(s.reg(regProductID, productLen), id[:])
}

// TouchLimit returns the configured maximum number of points.
func (s *Simulator) TouchLimit() int {
	return int(s.reg(regTouchNumber, 1)[0] & 0x0f)
}

// ConfigValid reports whether the config checksum matches the
// config block.
func (s *Simulator) ConfigValid() bool {
	return configChecksum(s.reg(regConfig, configLen)) == s.reg(regChecksum, 1)[0]
}

// Fail makes the next transfer fail with err.
func (s *Simulator) Fail(err error) {
	s.fail = err
}
