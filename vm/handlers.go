package vm

import (
	"errors"

	"github.com/mastercactapus/lasertime/coord"
	"github.com/mastercactapus/lasertime/gcode"
)

var (
	// ErrZeroSpeed is returned for a beam-on move of nonzero length
	// made while the feed rate is zero.
	ErrZeroSpeed = errors.New("cutting move with zero feed rate")

	// ErrMissingParameter is returned when a move has no X or Y.
	ErrMissingParameter = errors.New("move needs X and Y parameters")
)

func target(params []string) (coord.Point, error) {
	if len(params) < 2 {
		return coord.Point{}, ErrMissingParameter
	}
	x, err := gcode.ParamValue(params[0])
	if err != nil {
		return coord.Point{}, err
	}
	y, err := gcode.ParamValue(params[1])
	if err != nil {
		return coord.Point{}, err
	}
	return coord.Point{X: x, Y: y}, nil
}

// motion handles G0 and G1. Parameters are positional:
// X Y, or X Y S F with S as power and F in mm/min.
func motion(code int, params []string, s *State, t *Totals) error {
	switch code {
	case 0:
		p, err := target(params)
		if err != nil {
			return err
		}
		s.Pos = p
	case 1:
		p, err := target(params)
		if err != nil {
			return err
		}
		if len(params) == 4 {
			power, err := gcode.ParamValue(params[2])
			if err != nil {
				return err
			}
			feed, err := gcode.ParamValue(params[3])
			if err != nil {
				return err
			}
			s.Power = power
			s.Speed = feed / 60
		}

		from := s.Pos
		s.Pos = p
		if !s.BeamOn || from.Equal(p) {
			return nil
		}
		if s.Speed == 0 {
			return ErrZeroSpeed
		}
		d := from.Distance(p)
		t.Length += d
		t.Time += s.Power * d / s.Speed
	}

	return nil
}

// beam returns the M handler for M3 and M5.
func beam(countEveryOn bool) Handler {
	return func(code int, params []string, s *State, t *Totals) error {
		switch code {
		case 3:
			if countEveryOn || !s.BeamOn {
				t.Switches++
			}
			s.BeamOn = true
		case 5:
			s.BeamOn = false
		}
		return nil
	}
}
