package prompter

import (
	"strings"
	"testing"

	"github.com/FxamarAboali/mansect/internal/iostreams"
)

func TestNewPrompter(t *testing.T) {
	ios := iostreams.NewTestIOStreams()
	p := NewPrompter(ios.IOStreams)
	if p == nil {
		t.Fatal("NewPrompter() returned nil")
	}
	if p.ios != ios.IOStreams {
		t.Error("NewPrompter().ios is not set correctly")
	}
	if p.in == nil {
		t.Error("NewPrompter().in is not set")
	}
}

func TestPrompter_Line(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		label   string
		want    string
		wantErr bool
	}{
		{
			name:  "returns the typed line",
			input: "TCP Options\n",
			label: "Section name: ",
			want:  "TCP Options",
		},
		{
			name:  "empty line is a valid reply",
			input: "\n",
			label: "Option arg (portnumber): ",
			want:  "",
		},
		{
			name:  "interior and edge spaces are preserved",
			input: "  spaced  value \n",
			label: "Value: ",
			want:  "  spaced  value ",
		},
		{
			name:  "carriage return before newline is stripped",
			input: "windows\r\n",
			label: "Value: ",
			want:  "windows",
		},
		{
			name:  "final line without terminator still counts",
			input: "no newline",
			label: "Value: ",
			want:  "no newline",
		},
		{
			name:    "EOF with nothing read is an error",
			input:   "",
			label:   "Value: ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreams.NewTestIOStreams()
			ios.InBuf.SetInput(tt.input)
			p := NewPrompter(ios.IOStreams)

			got, err := p.Line(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				if !strings.Contains(err.Error(), "failed to read input") {
					t.Errorf("error = %q, want it to mention the failed read", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Line() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
			if ios.ErrBuf.String() != tt.label {
				t.Errorf("label written = %q, want %q (verbatim)", ios.ErrBuf.String(), tt.label)
			}
		})
	}
}

func TestPrompter_Line_LabelWrittenVerbatim(t *testing.T) {
	// Labels are part of the operator contract: no trailing space is
	// added, none is removed, and a label may carry a literal suffix the
	// reply is expected to continue (such as "--").
	tests := []struct {
		name  string
		label string
	}{
		{"no trailing space", "Option Description (TCP Connect Mode):"},
		{"trailing space", "Hyphened name: "},
		{"literal dashes suffix", "Option format (--tcp-connect): --"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreams.NewTestIOStreams()
			ios.InBuf.SetInput("reply\n")
			p := NewPrompter(ios.IOStreams)

			if _, err := p.Line(tt.label); err != nil {
				t.Fatalf("Line() error = %v", err)
			}
			if ios.ErrBuf.String() != tt.label {
				t.Errorf("label written = %q, want %q", ios.ErrBuf.String(), tt.label)
			}
			if ios.OutBuf.String() != "" {
				t.Errorf("stdout should stay clean, got %q", ios.OutBuf.String())
			}
		})
	}
}

func TestPrompter_Line_SequentialReads(t *testing.T) {
	// One buffered reader must survive across calls: with piped input the
	// first read may buffer everything that follows.
	ios := iostreams.NewTestIOStreams()
	ios.InBuf.SetInput("first\nsecond\nthird\n")
	p := NewPrompter(ios.IOStreams)

	for _, want := range []string{"first", "second", "third"} {
		got, err := p.Line("> ")
		if err != nil {
			t.Fatalf("Line() error = %v", err)
		}
		if got != want {
			t.Errorf("Line() = %q, want %q", got, want)
		}
	}

	// The script is exhausted now
	if _, err := p.Line("> "); err == nil {
		t.Fatal("expected an error after input is exhausted")
	}
}

func TestPrompter_Line_PartialFinalLineThenEOF(t *testing.T) {
	ios := iostreams.NewTestIOStreams()
	ios.InBuf.SetInput("one\ntwo")
	p := NewPrompter(ios.IOStreams)

	got, err := p.Line("> ")
	if err != nil || got != "one" {
		t.Fatalf("first Line() = %q, %v, want %q, nil", got, err, "one")
	}

	got, err = p.Line("> ")
	if err != nil || got != "two" {
		t.Fatalf("second Line() = %q, %v, want %q, nil", got, err, "two")
	}

	if _, err := p.Line("> "); err == nil {
		t.Fatal("expected an error once EOF is reached with nothing read")
	}
}
