package main

import "gt911.dev/driver/gt911"

// stroke feeds a simulated controller a finger dragged across the
// panel, reporting on every other poll.
type stroke struct {
	sim  *gt911.Simulator
	step int
}

const strokeLen = 40

func (s *stroke) advance() {
	s.step++
	switch {
	case s.step%2 == 1:
		// No new report.
	case s.step < strokeLen:
		s.sim.Press(gt911.Point{TrackID: 0, X: uint16(100 + s.step*10), Y: 240, Area: 20})
	case s.step == strokeLen:
		s.sim.Release()
	default:
		s.step = 0
	}
}
