//go:build !tinygo

package gt911

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

var sleep = time.Sleep

// Reset power cycles the chip through its RST pin and latches addr,
// DefaultAddress or AltAddress, from the level of INT while RST is
// released. INT is left as a floating input. Init must be called
// again after a reset.
func Reset(rst gpio.PinOut, intr gpio.PinIO, addr uint16) error {
	var strap gpio.Level
	switch address(addr) {
	case DefaultAddress:
		strap = gpio.Low
	case AltAddress:
		strap = gpio.High
	default:
		return fmt.Errorf("gt911: no strapping for address %#x", addr)
	}
	if err := rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("gt911: reset: %w", err)
	}
	if err := intr.Out(gpio.Low); err != nil {
		return fmt.Errorf("gt911: reset: %w", err)
	}
	sleep(10 * time.Millisecond)
	if err := intr.Out(strap); err != nil {
		return fmt.Errorf("gt911: reset: %w", err)
	}
	sleep(100 * time.Microsecond)
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("gt911: reset: %w", err)
	}
	sleep(5 * time.Millisecond)
	// Hold INT low until the firmware has started.
	if err := intr.Out(gpio.Low); err != nil {
		return fmt.Errorf("gt911: reset: %w", err)
	}
	sleep(50 * time.Millisecond)
	if err := intr.In(gpio.Float, gpio.NoEdge); err != nil {
		return fmt.Errorf("gt911: reset: %w", err)
	}
	return nil
}
