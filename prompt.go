package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errNotNumber = errors.New("not a number")

// Prompter asks for values one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Int writes label and parses the next line as a base-10 integer.
func (p *Prompter) Int(label string) (int, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return 0, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return 0, errors.Errorf("no input for %q", strings.TrimSpace(label))
		}
		return 0, errors.Wrap(err, "reading input")
	}

	text := strings.TrimSpace(line)
	n, convErr := strconv.Atoi(text)
	if convErr != nil {
		return 0, errors.Wrapf(errNotNumber, "%q", text)
	}
	return n, nil
}

// ReadTempoAndDuration prompts for tempo, then duration.
func (p *Prompter) ReadTempoAndDuration() (tempo, duration int, err error) {
	if tempo, err = p.Int(promptTempo); err != nil {
		return 0, 0, err
	}
	if duration, err = p.Int(promptDuration); err != nil {
		return 0, 0, err
	}
	return tempo, duration, nil
}
