package main

import (
	"errors"
	"fmt"

	"gt911.dev/driver/gt911"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func openBus(name string, speed physic.Frequency) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("i2c: %w", err)
	}
	if speed != 0 {
		if err := b.SetSpeed(speed); err != nil {
			b.Close()
			return nil, fmt.Errorf("i2c: %w", err)
		}
	}
	return b, nil
}

func resetChip(rstName, intName string, addr uint16) error {
	if intName == "" {
		return errors.New("-reset requires -int")
	}
	rst := gpioreg.ByName(rstName)
	if rst == nil {
		return fmt.Errorf("unknown GPIO %q", rstName)
	}
	intr := gpioreg.ByName(intName)
	if intr == nil {
		return fmt.Errorf("unknown GPIO %q", intName)
	}
	return gt911.Reset(rst, intr, addr)
}
