package vm

import "github.com/mastercactapus/lasertime/gcode"

type config struct {
	countEveryOn bool
	trace        func(gcode.Command)
}

// An Option configures a Machine.
type Option func(*config)

// WithCountEveryOn makes every M3 count as a switch, even when the beam
// is already on. This counts M3 commands rather than transitions, which is
// what simpler estimators report. By default only off to on transitions
// are counted.
func WithCountEveryOn(every bool) Option {
	return func(c *config) { c.countEveryOn = every }
}

// WithTrace calls fn with each command before it is dispatched.
func WithTrace(fn func(gcode.Command)) Option {
	return func(c *config) { c.trace = fn }
}
