package gcode

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// CommentMarker starts a comment that runs to the end of the line.
const CommentMarker = ";"

type Parser struct {
	br   *bufio.Reader
	line int
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

// Read returns the next command, skipping blank and comment-only lines.
// It returns io.EOF once the input is exhausted.
func (p *Parser) Read() (Command, error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return Command{}, err
		}
		p.line++

		c, err := ParseLine(s)
		if err != nil {
			if merr, ok := err.(*MalformedCommandError); ok {
				merr.Line = p.line
			}
			return Command{}, err
		}
		if c == nil {
			continue
		}
		c.Line = p.line
		return *c, nil
	}
}

// ParseLine parses a single line. Blank and comment-only lines
// return a nil command and no error.
func ParseLine(line string) (*Command, error) {
	s := strings.SplitN(line, CommentMarker, 2)[0]
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}

	code := fields[0]
	if code[0] < 'A' || code[0] > 'Z' {
		return nil, &MalformedCommandError{Text: strings.TrimRight(line, "\r\n")}
	}
	n, err := strconv.ParseUint(code[1:], 10, strconv.IntSize-1)
	if err != nil {
		return nil, &MalformedCommandError{Text: strings.TrimRight(line, "\r\n")}
	}

	c := &Command{Letter: code[0], Code: int(n)}
	if len(fields) > 1 {
		c.Params = fields[1:]
	}
	return c, nil
}
