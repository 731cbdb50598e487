// Command touchpoll polls a GT911 touch controller and prints touch
// events.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gt911.dev/driver/gt911"
	"periph.io/x/conn/v3/physic"
)

var (
	busName  = flag.String("bus", "", "I²C bus name or number, empty for the first bus")
	addrFlag = flag.String("addr", "0x5d", "I²C address, 0x5d or 0x14")
	rstPin   = flag.String("reset", "", "GPIO connected to RST, for resetting the chip")
	intPin   = flag.String("int", "", "GPIO connected to INT, required by -reset")
	limit    = flag.Int("limit", 0, "configure the maximum number of touch points (1-5)")
	interval = flag.Duration("interval", 10*time.Millisecond, "poll interval")
	multi    = flag.Bool("multi", true, "report every touch point, not only the first")
	format   = flag.String("format", "text", "output format, text or cbor")
	simulate = flag.Bool("sim", false, "poll a simulated controller")
	speed    physic.Frequency
)

func init() {
	flag.Var(&speed, "speed", "I²C bus speed, 0 for the bus default")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "touchpoll: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	addr, err := strconv.ParseUint(*addrFlag, 0, 16)
	if err != nil {
		return fmt.Errorf("-addr: %w", err)
	}
	emit, err := newEmitter(os.Stdout, *format)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var bus gt911.ContextBus
	var tick func()
	if *simulate {
		sim := gt911.NewSimulator()
		sim.Addr = uint16(addr)
		bus = sim
		s := &stroke{sim: sim}
		tick = s.advance
	} else {
		b, err := openBus(*busName, speed)
		if err != nil {
			return err
		}
		defer b.Close()
		if *rstPin != "" {
			if err := resetChip(*rstPin, *intPin, uint16(addr)); err != nil {
				return err
			}
		}
		bus = gt911.WithContext(b)
	}

	dev := gt911.Device{Address: uint16(addr)}
	var buf [gt911.ConfigBufSize]byte
	if err := dev.Init(ctx, bus, buf[:]); err != nil {
		return err
	}
	info, err := dev.ReadInfo(ctx, bus, buf[:])
	if err != nil {
		return err
	}
	log.Printf("GT%s firmware %#04x, %dx%d panel", info.ProductID, info.Firmware, info.Width, info.Height)
	if *limit != 0 {
		if err := dev.SetTouchLimit(ctx, bus, buf[:], *limit); err != nil {
			return err
		}
	}

	poll := dev.MultiTouch
	if !*multi {
		poll = func(ctx context.Context, bus gt911.ContextBus, buf []byte) (gt911.Touches, error) {
			p, ok, err := dev.Touch(ctx, bus, buf)
			if !ok {
				return gt911.Touches{}, err
			}
			return gt911.MakeTouches(p), err
		}
	}
	t := time.NewTicker(*interval)
	defer t.Stop()
	var prev gt911.Touches
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
		if tick != nil {
			tick()
		}
		cur, err := poll(ctx, bus, buf[:])
		switch {
		case errors.Is(err, gt911.ErrNotReady):
			continue
		case ctx.Err() != nil:
			return nil
		case err != nil:
			// Retry on the next tick.
			log.Printf("poll: %v", err)
			continue
		}
		if err := diff(&prev, &cur, emit); err != nil {
			return err
		}
		prev = cur
	}
}
