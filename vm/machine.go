package vm

import (
	"fmt"
	"io"

	"github.com/mastercactapus/lasertime/coord"
	"github.com/mastercactapus/lasertime/gcode"
)

// A Handler executes every command for the letter it is registered under.
type Handler func(code int, params []string, s *State, t *Totals) error

// State is the laser head state carried from one command to the next.
type State struct {
	Pos    coord.Point
	BeamOn bool

	// Power is normalized to [0, 1].
	Power float64

	// Speed is the feed rate in mm/s.
	Speed float64
}

// Totals are the running sums for beam-on motion.
type Totals struct {
	Length   float64 // mm
	Time     float64 // s
	Switches int
}

// Machine will track laser state and interpret gcode.
//
// A Machine processes exactly one program; create a new one per run.
type Machine struct {
	state  State
	totals Totals

	handlers map[byte]Handler
	trace    func(gcode.Command)
}

// NewMachine constructs a new Machine with default state and the
// G and M handlers registered.
func NewMachine(opts ...Option) *Machine {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	m := &Machine{
		state: State{Power: 1},

		handlers: make(map[byte]Handler),
		trace:    cfg.trace,
	}

	m.Register('G', motion)
	m.Register('M', beam(cfg.countEveryOn))

	return m
}

// Register sets the handler for letter, replacing any existing one.
// A nil handler removes it.
func (m *Machine) Register(letter byte, h Handler) {
	if h == nil {
		delete(m.handlers, letter)
		return
	}
	m.handlers[letter] = h
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Totals() Totals { return m.totals }

// Exec runs a single command. Letters without a handler are ignored.
func (m *Machine) Exec(c gcode.Command) error {
	if m.trace != nil {
		m.trace(c.Clone())
	}
	h, ok := m.handlers[c.Letter]
	if !ok {
		return nil
	}

	err := h(c.Code, c.Params, &m.state, &m.totals)
	if err == nil {
		return nil
	}
	if c.Line == 0 {
		return fmt.Errorf("%s: %w", c, err)
	}
	return fmt.Errorf("line %d: %s: %w", c.Line, c, err)
}

// Run executes every command from r in order, stopping at the first error.
func (m *Machine) Run(r gcode.Reader) error {
	for {
		c, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		err = m.Exec(c)
		if err != nil {
			return err
		}
	}
}

// Analyze parses and runs the program read from r on a fresh Machine.
func Analyze(r io.Reader, opts ...Option) (Totals, error) {
	m := NewMachine(opts...)
	err := m.Run(gcode.NewParser(r))
	if err != nil {
		return Totals{}, err
	}
	return m.Totals(), nil
}
