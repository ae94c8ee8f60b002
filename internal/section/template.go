package section

import (
	"bytes"
	"io"
	"os"
)

// Template holds a template file's content split into lines with their
// original terminators intact, so rendering reproduces the file
// byte-for-byte outside token positions.
type Template struct {
	Path  string
	lines []string
}

// LoadTemplate reads the template at path. A missing or unreadable file
// yields a NotFoundError.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return &Template{Path: path, lines: splitLines(data)}, nil
}

// Lines returns the template's lines, terminators included. A final line
// without a trailing newline is returned as-is.
func (t *Template) Lines() []string {
	return t.lines
}

// RenderTo expands each line through expand and writes it to w. Lines are
// written individually so a failure leaves a line-aligned prefix behind.
func (t *Template) RenderTo(w io.Writer, expand func(string) string) error {
	for _, line := range t.lines {
		if _, err := io.WriteString(w, expand(line)); err != nil {
			return err
		}
	}
	return nil
}

// splitLines splits raw content after every newline, keeping the
// terminator on each piece. A trailing fragment without a newline becomes
// the final line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	var lines []string
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, string(data))
			break
		}
		lines = append(lines, string(data[:i+1]))
		data = data[i+1:]
	}
	return lines
}
