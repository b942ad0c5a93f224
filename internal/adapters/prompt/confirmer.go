// Package prompt provides the interactive confirmation adapter.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"go.trai.ch/pyprune/internal/adapters/detector"
	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/zerr"
)

// affirmative lists the accepted "yes" answers, compared case-insensitively.
var affirmative = map[string]struct{}{
	"y":   {},
	"yes": {},
	"s":   {},
	"sim": {},
}

// Confirmer implements ports.Confirmer. On a terminal it uses a promptui
// prompt; otherwise it reads a plain line so piped input gets no control sequences.
type Confirmer struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	run         func(p *promptui.Prompt) (string, error)
}

// New creates a Confirmer on the process standard streams.
func New() *Confirmer {
	return NewWithIO(os.Stdin, os.Stdout, detector.IsInteractive(os.Stdin))
}

// NewWithIO creates a Confirmer reading answers from in and writing the question to out.
// When interactive is false the answer is read as a plain line.
func NewWithIO(in io.Reader, out io.Writer, interactive bool) *Confirmer {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &Confirmer{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		run:         runPrompt,
	}
}

// Confirm asks label and reports whether the answer was affirmative.
// Interrupt and end of input count as a refusal.
func (c *Confirmer) Confirm(label string) (bool, error) {
	label += " [y/N]"

	var (
		answer string
		err    error
	)
	if c.interactive {
		answer, err = c.run(&promptui.Prompt{Label: label})
	} else {
		answer, err = c.readLine(label)
	}

	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrConfirmationFailed.Error())
	}

	return IsAffirmative(answer), nil
}

// readLine prints label and reads one line. A final line without a newline is accepted.
func (c *Confirmer) readLine(label string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s: ", label); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	_, _ = fmt.Fprintln(c.out)
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// IsAffirmative reports whether answer is one of the accepted "yes" forms.
func IsAffirmative(answer string) bool {
	_, ok := affirmative[strings.ToLower(strings.TrimSpace(answer))]
	return ok
}

func runPrompt(p *promptui.Prompt) (string, error) {
	return p.Run()
}
