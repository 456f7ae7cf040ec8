package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks for integer parameters that were not given as flags.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// Int prints question and parses the answer as an integer.
func (p *prompter) Int(question string, what string) (int, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("failed to read %s: %w", what, err)
	}
	answer := strings.TrimSpace(line)
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, answer, err)
	}
	return n, nil
}

// intOrPrompt returns value when it was given, otherwise asks for it. An
// explicit 0 counts as given.
func (p *prompter) intOrPrompt(value int, given bool, question string, what string) (int, error) {
	if given {
		return value, nil
	}
	return p.Int(question, what)
}
