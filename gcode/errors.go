package gcode

import "strconv"

// MalformedCommandError is returned when a line does not start with
// <Letter><integer>.
type MalformedCommandError struct {
	Line int
	Text string
}

func (e *MalformedCommandError) Error() string {
	if e.Line == 0 {
		return "malformed command: " + strconv.Quote(e.Text)
	}
	return "line " + strconv.Itoa(e.Line) + ": malformed command: " + strconv.Quote(e.Text)
}

// MalformedParameterError is returned when a parameter token has no
// numeric value after its letter.
type MalformedParameterError struct {
	Token string
}

func (e *MalformedParameterError) Error() string {
	return "malformed parameter: " + strconv.Quote(e.Token)
}
