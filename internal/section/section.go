// Package section implements the authoring model for DocBook reference
// manual sections: templates with substitution tokens, the metadata and
// option entries an operator supplies, and the interactive session that
// renders everything into an appended output document.
package section

import "strings"

// Template resource names resolved relative to the templates directory.
const (
	// SectionTemplateName is the per-section header template. It is read
	// once per session.
	SectionTemplateName = "man-section-template.xml"

	// EntryTemplateName is the per-option template. It is re-read from
	// disk for every option so edits take effect mid-session.
	EntryTemplateName = "man-section-entry-template.xml"
)

// DefaultOutputName is the output document used when no explicit path is
// configured. Successive runs append to it so a manual can be assembled
// section by section.
const DefaultOutputName = "OutputMan.txt"

// Substitution tokens recognized in template lines. Replacement is plain
// substring replacement, applied per line in the declared order.
const (
	TokenSectionName         = "SECTION_NAME"
	TokenSectionHyphenedName = "SECTION_HYPHENED_NAME"

	TokenOptFormat = "OPT_FORMAT"
	TokenOptArg    = "OPT_ARG"
	TokenOptDesc   = "OPT_DESC"
	TokenOptName   = "OPT_NAME"
)

// DocBook markup wrapped around a non-empty option argument.
const (
	replaceableOpen  = "<replaceable>"
	replaceableClose = "</replaceable>"
)

// closingLines terminate every rendered section: the option list closes,
// then the enclosing refsect1 element.
var closingLines = [2]string{
	"    </variablelist>",
	"   </refsect1>",
}

// SectionTokens returns the tokens the section template may carry.
func SectionTokens() []string {
	return []string{TokenSectionName, TokenSectionHyphenedName}
}

// EntryTokens returns the tokens the entry template may carry.
func EntryTokens() []string {
	return []string{TokenOptFormat, TokenOptArg, TokenOptDesc, TokenOptName}
}

// SectionMeta identifies a section: the human-readable title and the
// hyphenated form used as the section's XML id.
type SectionMeta struct {
	SectionName    string
	HyphenatedName string
}

// ExpandLine substitutes the section tokens in a single template line.
func (m SectionMeta) ExpandLine(line string) string {
	line = strings.ReplaceAll(line, TokenSectionName, m.SectionName)
	line = strings.ReplaceAll(line, TokenSectionHyphenedName, m.HyphenatedName)
	return line
}

// OptionEntry describes one command-line option to document. Format is the
// option name as typed after the leading dashes, ArgName the placeholder
// for the option's argument (empty when the option takes none), Description
// a short summary, and DisplayName the plain-words rendering of the option.
type OptionEntry struct {
	Format      string
	ArgName     string
	Description string
	DisplayName string
}

// ExpandLine substitutes the entry tokens in a single template line.
func (e OptionEntry) ExpandLine(line string) string {
	line = strings.ReplaceAll(line, TokenOptFormat, e.Format)
	line = strings.ReplaceAll(line, TokenOptArg, e.argMarkup())
	line = strings.ReplaceAll(line, TokenOptDesc, e.Description)
	line = strings.ReplaceAll(line, TokenOptName, e.DisplayName)
	return line
}

// argMarkup renders the OPT_ARG substitution: the empty string when the
// option takes no argument, otherwise the placeholder wrapped in
// <replaceable> markup.
func (e OptionEntry) argMarkup() string {
	if e.ArgName == "" {
		return ""
	}
	return replaceableOpen + e.ArgName + replaceableClose
}

// ClosingLines returns the fixed lines appended after the last option
// entry, without terminators.
func ClosingLines() []string {
	lines := closingLines
	return lines[:]
}
