package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/strvec/foundation/utils/stringx"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", " yaml "} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestSequenceText(t *testing.T) {
	r := New(Options{Format: FormatText, NAString: "<NA>"})
	seq := stringx.StringSeq{stringx.Some("ab"), stringx.Missing[string](), stringx.Some("")}
	for i := 0; i < 8; i++ {
		seq = append(seq, stringx.Some("x"))
	}

	var buf bytes.Buffer
	require.NoError(t, Sequence(r, &buf, seq))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, `[ 1] "ab"`, lines[0])
	assert.Equal(t, `[ 2] <NA>`, lines[1])
	assert.Equal(t, `[ 3] ""`, lines[2])
	assert.Equal(t, `[11] "x"`, lines[10])
}

func TestSequenceTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Sequence(New(Options{}), &buf, stringx.StringSeq{}))
	assert.Equal(t, "(leer)\n", buf.String())
}

func TestSequenceStructured(t *testing.T) {
	seq := stringx.IntSeq{stringx.Some(1), stringx.Missing[int]()}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "[\n  1,\n  null\n]\n"},
		{FormatYAML, "- 1\n- null\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Sequence(New(Options{Format: tt.format}), &buf, seq))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestIndices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatJSON}).Indices(&buf, []int{2, 0, 1}))
	assert.JSONEq(t, `[2, 0, 1]`, buf.String())
}

func TestLengthTable(t *testing.T) {
	strs := stringx.StringSeq{stringx.Some("abc"), stringx.Missing[string](), stringx.Some("äö")}
	byteLens := stringx.NumBytes(strs)
	charLens := stringx.Length(strs)

	var buf bytes.Buffer
	require.NoError(t, New(Options{}).LengthTable(&buf, strs, byteLens, charLens))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Bytes")
	assert.Regexp(t, `^"abc"\s+3\s+3$`, lines[1])
	assert.Regexp(t, `^NA\s+NA\s+NA$`, lines[2])
	assert.Regexp(t, `^"äö"\s+4\s+2$`, lines[3])

	buf.Reset()
	require.NoError(t, New(Options{Format: FormatJSON}).LengthTable(&buf, strs, byteLens, charLens))
	assert.JSONEq(t, `[
		{"value": "abc", "bytes": 3, "chars": 3},
		{"value": null, "bytes": null, "chars": null},
		{"value": "äö", "bytes": 4, "chars": 2}
	]`, buf.String())
}

func TestValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatYAML}).Value(&buf, map[string]string{"version": "1.0.0"}))
	assert.Equal(t, "version: 1.0.0\n", buf.String())
}

func TestWarningAndErrorWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Color: false})
	r.Warning(&buf, "recycling")
	r.Error(&buf, "boom")
	assert.Equal(t, "Warnung: recycling\nFehler: boom\n", buf.String())
}
