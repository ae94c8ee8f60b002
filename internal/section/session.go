package section

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/FxamarAboali/mansect/internal/logger"
	"github.com/FxamarAboali/mansect/internal/prompter"
)

// Prompt labels form the operator contract: scripts drive a session by
// supplying one line of input per label, in this order. The labels are
// written verbatim, so the format hint (and the literal "--" prefix on the
// option format prompt) is part of the interface.
const (
	promptSectionName  = "Section name: "
	promptHyphenedName = "Hyphened name: "
	promptOptionCount  = "Number of options: "
	promptOptionFormat = "Option format (--tcp-connect): --"
	promptOptionArg    = "Option arg (portnumber): "
	promptOptionDesc   = "Option Description (TCP Connect Mode):"
	promptOptionName   = "Option name (tcp connect): "
)

// Session drives one interactive fill run: collect section metadata,
// append the rendered section header to the output document, then collect
// and render each requested option entry, and finish with the closing
// lines. The output file is opened in append mode so successive runs
// accumulate sections into one document.
type Session struct {
	Prompter *prompter.Prompter

	// TemplatesDir is the directory holding the two template files.
	// Empty means the current directory.
	TemplatesDir string

	// OutputPath is the document to append to. Empty means
	// DefaultOutputName.
	OutputPath string
}

// Result summarizes a completed run.
type Result struct {
	Section    SectionMeta
	Options    int
	OutputPath string
}

// Run executes the session. Any error aborts the run immediately; output
// already appended is kept, and the output file is released on every path.
func (s *Session) Run() (*Result, error) {
	meta, err := s.collectMeta()
	if err != nil {
		return nil, err
	}

	outPath := s.outputPath()
	out, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &WriteError{Path: outPath, Err: err}
	}
	defer out.Close()

	logger.Debug().
		Str("output", outPath).
		Str("section", meta.SectionName).
		Msg("fill session started")

	sectionTmpl, err := LoadTemplate(filepath.Join(s.templatesDir(), SectionTemplateName))
	if err != nil {
		return nil, err
	}
	if err := sectionTmpl.RenderTo(out, meta.ExpandLine); err != nil {
		return nil, &WriteError{Path: outPath, Err: err}
	}

	count, err := s.promptCount()
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		entry, err := s.collectEntry()
		if err != nil {
			return nil, err
		}
		// Re-read the entry template on every pass so edits made while
		// the session is running apply to the next option.
		entryTmpl, err := LoadTemplate(filepath.Join(s.templatesDir(), EntryTemplateName))
		if err != nil {
			return nil, err
		}
		if err := entryTmpl.RenderTo(out, entry.ExpandLine); err != nil {
			return nil, &WriteError{Path: outPath, Err: err}
		}
		logger.Debug().Str("option", entry.Format).Int("index", i).Msg("option entry rendered")
	}

	for _, line := range closingLines {
		if _, err := out.WriteString(line + "\n"); err != nil {
			return nil, &WriteError{Path: outPath, Err: err}
		}
	}

	logger.Debug().Int("options", count).Msg("fill session finished")
	return &Result{Section: meta, Options: count, OutputPath: outPath}, nil
}

func (s *Session) collectMeta() (SectionMeta, error) {
	name, err := s.Prompter.Line(promptSectionName)
	if err != nil {
		return SectionMeta{}, err
	}
	hyphened, err := s.Prompter.Line(promptHyphenedName)
	if err != nil {
		return SectionMeta{}, err
	}
	return SectionMeta{SectionName: name, HyphenatedName: hyphened}, nil
}

func (s *Session) promptCount() (int, error) {
	reply, err := s.Prompter.Line(promptOptionCount)
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		return 0, &InputError{Value: reply, Reason: "option count must be an integer"}
	}
	if count < 0 {
		return 0, &InputError{Value: reply, Reason: "option count must not be negative"}
	}
	return count, nil
}

func (s *Session) collectEntry() (OptionEntry, error) {
	var entry OptionEntry
	var err error
	if entry.Format, err = s.Prompter.Line(promptOptionFormat); err != nil {
		return OptionEntry{}, err
	}
	if entry.ArgName, err = s.Prompter.Line(promptOptionArg); err != nil {
		return OptionEntry{}, err
	}
	if entry.Description, err = s.Prompter.Line(promptOptionDesc); err != nil {
		return OptionEntry{}, err
	}
	if entry.DisplayName, err = s.Prompter.Line(promptOptionName); err != nil {
		return OptionEntry{}, err
	}
	return entry, nil
}

func (s *Session) outputPath() string {
	if s.OutputPath == "" {
		return DefaultOutputName
	}
	return s.OutputPath
}

func (s *Session) templatesDir() string {
	if s.TemplatesDir == "" {
		return "."
	}
	return s.TemplatesDir
}
