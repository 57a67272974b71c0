package gcode

import (
	"strconv"
	"strings"
)

// Command is a single parsed line: a letter, an integer code and the raw
// parameter tokens in the order they appeared.
type Command struct {
	Letter byte
	Code   int
	Params []string

	// Line is the 1-based source line, zero if unknown.
	Line int
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte(c.Letter)
	sb.WriteString(strconv.Itoa(c.Code))
	for _, p := range c.Params {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}
	return sb.String()
}

// Clone returns a copy of c that does not share its parameter slice.
func (c Command) Clone() Command {
	c.Params = append([]string(nil), c.Params...)
	return c
}
