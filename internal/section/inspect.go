package section

import (
	"path/filepath"
	"strings"
)

// TemplateReport describes one template file as found on disk.
type TemplateReport struct {
	Name string
	Path string

	// Err is non-nil when the template could not be read.
	Err error

	Lines  int
	Tokens map[string]int
}

// Usable reports whether the template was read successfully.
func (r *TemplateReport) Usable() bool {
	return r.Err == nil
}

// MissingTokens returns the recognized tokens that never occur in the
// template. A template with missing tokens still renders; the substitution
// for an absent token is simply a no-op.
func (r *TemplateReport) MissingTokens(recognized []string) []string {
	var missing []string
	for _, tok := range recognized {
		if r.Tokens[tok] == 0 {
			missing = append(missing, tok)
		}
	}
	return missing
}

// Report is the result of inspecting a templates directory.
type Report struct {
	Dir     string
	Section TemplateReport
	Entry   TemplateReport
}

// Ok reports whether both templates are usable.
func (r *Report) Ok() bool {
	return r.Section.Usable() && r.Entry.Usable()
}

// InspectDir checks the two template files under dir. Read failures are
// recorded per template rather than returned, so a single broken file does
// not hide the state of the other.
func InspectDir(dir string) *Report {
	if dir == "" {
		dir = "."
	}
	return &Report{
		Dir:     dir,
		Section: inspectTemplate(dir, SectionTemplateName, SectionTokens()),
		Entry:   inspectTemplate(dir, EntryTemplateName, EntryTokens()),
	}
}

func inspectTemplate(dir, name string, recognized []string) TemplateReport {
	report := TemplateReport{
		Name: name,
		Path: filepath.Join(dir, name),
	}
	tmpl, err := LoadTemplate(report.Path)
	if err != nil {
		report.Err = err
		return report
	}
	report.Lines = len(tmpl.Lines())
	report.Tokens = make(map[string]int, len(recognized))
	for _, tok := range recognized {
		for _, line := range tmpl.Lines() {
			report.Tokens[tok] += strings.Count(line, tok)
		}
	}
	return report
}
