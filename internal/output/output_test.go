// internal/output/output_test.go
package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string `json:"name" yaml:"name"`
	Score int    `json:"score" yaml:"score"`
}

func (r row) Text() string { return r.Name }

func TestNormalize(t *testing.T) {
	for in, want := range map[string]string{
		"":     FormatText,
		"txt":  FormatText,
		"text": FormatText,
		"json": FormatJSON,
		"yml":  FormatYAML,
		"yaml": FormatYAML,
	} {
		got, err := Normalize(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
	}
	_, err := Normalize("xml")
	assert.Error(t, err)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, row{Name: "BLOSUM62", Score: 4}))
	assert.Contains(t, buf.String(), `"name": "BLOSUM62"`)
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, row{Name: "BLOSUM62", Score: 4}))
	assert.Contains(t, buf.String(), "name: BLOSUM62")
	assert.Contains(t, buf.String(), "score: 4")
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatText, row{Name: "BLOSUM62"}))
	assert.Equal(t, "BLOSUM62\n", buf.String())

	// no Texter: falls back to JSON
	buf.Reset()
	require.NoError(t, Encode(&buf, FormatText, map[string]int{"a": 1}))
	assert.Contains(t, buf.String(), `"a": 1`)
}
