package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionMeta_ExpandLine(t *testing.T) {
	meta := SectionMeta{
		SectionName:    "Connection Options",
		HyphenatedName: "connection-options",
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "section name token",
			line: "  <title>SECTION_NAME</title>\n",
			want: "  <title>Connection Options</title>\n",
		},
		{
			name: "hyphened name token",
			line: ` <refsect1 id="SECTION_HYPHENED_NAME">`,
			want: ` <refsect1 id="connection-options">`,
		},
		{
			name: "both tokens on one line",
			line: "SECTION_NAME / SECTION_HYPHENED_NAME",
			want: "Connection Options / connection-options",
		},
		{
			name: "repeated token",
			line: "SECTION_NAME SECTION_NAME",
			want: "Connection Options Connection Options",
		},
		{
			name: "no tokens",
			line: "   <variablelist>\n",
			want: "   <variablelist>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, meta.ExpandLine(tt.line))
		})
	}
}

func TestOptionEntry_ExpandLine(t *testing.T) {
	tests := []struct {
		name  string
		entry OptionEntry
		line  string
		want  string
	}{
		{
			name: "argument wrapped in replaceable markup",
			entry: OptionEntry{
				Format:  "tcp-connect",
				ArgName: "portnumber",
			},
			line: "<option>--OPT_FORMAT</option> OPT_ARG",
			want: "<option>--tcp-connect</option> <replaceable>portnumber</replaceable>",
		},
		{
			name: "empty argument renders as empty string",
			entry: OptionEntry{
				Format:  "quiet",
				ArgName: "",
			},
			line: "<option>--OPT_FORMAT</option> OPT_ARG",
			want: "<option>--quiet</option> ",
		},
		{
			name: "description and display name",
			entry: OptionEntry{
				Description: "TCP Connect Mode",
				DisplayName: "tcp connect",
			},
			line: "<para>OPT_NAME: OPT_DESC</para>",
			want: "<para>tcp connect: TCP Connect Mode</para>",
		},
		{
			name: "line without tokens is untouched",
			entry: OptionEntry{
				Format: "verbose",
			},
			line: "    <varlistentry>\n",
			want: "    <varlistentry>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.ExpandLine(tt.line))
		})
	}
}

func TestClosingLines(t *testing.T) {
	want := []string{"    </variablelist>", "   </refsect1>"}
	assert.Equal(t, want, ClosingLines())

	// Callers must not be able to corrupt the package-level lines.
	got := ClosingLines()
	got[0] = "tampered"
	assert.Equal(t, want, ClosingLines())
}

func TestSectionTokens(t *testing.T) {
	assert.Equal(t, []string{"SECTION_NAME", "SECTION_HYPHENED_NAME"}, SectionTokens())
}

func TestEntryTokens(t *testing.T) {
	assert.Equal(t, []string{"OPT_FORMAT", "OPT_ARG", "OPT_DESC", "OPT_NAME"}, EntryTokens())
}
