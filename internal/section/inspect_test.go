package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectDir(t *testing.T) {
	dir := writeTemplates(t)

	report := InspectDir(dir)

	assert.Equal(t, dir, report.Dir)
	assert.True(t, report.Ok())

	assert.True(t, report.Section.Usable())
	assert.Equal(t, filepath.Join(dir, SectionTemplateName), report.Section.Path)
	assert.Equal(t, 3, report.Section.Lines)
	assert.Equal(t, 1, report.Section.Tokens[TokenSectionName])
	assert.Equal(t, 1, report.Section.Tokens[TokenSectionHyphenedName])
	assert.Empty(t, report.Section.MissingTokens(SectionTokens()))

	assert.True(t, report.Entry.Usable())
	assert.Equal(t, 6, report.Entry.Lines)
	assert.Equal(t, 1, report.Entry.Tokens[TokenOptFormat])
	assert.Equal(t, 1, report.Entry.Tokens[TokenOptArg])
	assert.Empty(t, report.Entry.MissingTokens(EntryTokens()))
}

func TestInspectDir_MissingEntryTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SectionTemplateName), []byte(sectionTemplate), 0o644))

	report := InspectDir(dir)

	assert.False(t, report.Ok())
	assert.True(t, report.Section.Usable())
	assert.False(t, report.Entry.Usable())
	assert.True(t, IsNotFound(report.Entry.Err))
}

func TestInspectDir_ReportsMissingTokens(t *testing.T) {
	dir := t.TempDir()
	// Section template that forgot the title token.
	content := " <refsect1 id=\"SECTION_HYPHENED_NAME\">\n   <variablelist>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SectionTemplateName), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntryTemplateName), []byte(entryTemplate), 0o644))

	report := InspectDir(dir)

	assert.True(t, report.Ok())
	assert.Equal(t, []string{TokenSectionName}, report.Section.MissingTokens(SectionTokens()))
}

func TestInspectDir_DefaultsToWorkingDirectory(t *testing.T) {
	chdir(t, t.TempDir())

	report := InspectDir("")

	assert.Equal(t, ".", report.Dir)
	assert.False(t, report.Ok())
	assert.True(t, IsNotFound(report.Section.Err))
	assert.True(t, IsNotFound(report.Entry.Err))
}

func TestTemplateReport_CountsRepeatedTokens(t *testing.T) {
	dir := t.TempDir()
	content := "SECTION_NAME and SECTION_NAME again\nSECTION_NAME\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SectionTemplateName), []byte(content), 0o644))

	report := InspectDir(dir)
	assert.Equal(t, 3, report.Section.Tokens[TokenSectionName])
}
