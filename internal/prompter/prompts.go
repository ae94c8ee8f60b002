// Package prompter implements line-oriented operator prompts.
//
// Prompts are deliberately raw: the label is written to stderr exactly as
// given and one line is read from stdin whether or not it is a terminal,
// so a session can be driven by a person at a keyboard or by a pipe.
// Parsing and validation of the reply belong to the caller.
package prompter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/FxamarAboali/mansect/internal/iostreams"
)

// Prompter asks for input on the streams it was built with. It keeps one
// buffered reader for the whole session; creating a fresh reader per
// prompt would drop input the previous read already buffered.
type Prompter struct {
	ios *iostreams.IOStreams
	in  *bufio.Reader
}

// NewPrompter creates a Prompter reading from ios.In and writing prompt
// labels to ios.ErrOut.
func NewPrompter(ios *iostreams.IOStreams) *Prompter {
	return &Prompter{
		ios: ios,
		in:  bufio.NewReader(ios.In),
	}
}

// Line writes label verbatim and reads one line of input. The trailing
// newline (and a carriage return before it) is stripped; everything else
// in the reply is preserved byte for byte. A final line that ends at EOF
// without a terminator still counts; EOF with nothing read is an error.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.ios.ErrOut, label)

	reply, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && reply != "" {
			return trimLineEnding(reply), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return trimLineEnding(reply), nil
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s
}
