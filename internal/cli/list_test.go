package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"archstyles/internal/styles"
)

func TestSummarize(t *testing.T) {
	rows := summarize(styles.Default())
	require.Len(t, rows, 7)
	assert.Equal(t, "queen-anne", rows[0].Slug)
	assert.Equal(t, "/styles/ranch", rows[6].Path)
	assert.Contains(t, rows[6].Features, "attached-garage")
}

func TestWriteListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeList(&buf, summarize(styles.Default()), formatJSON))

	var got []styleSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, summarize(styles.Default()), got)
}

func TestWriteListYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeList(&buf, summarize(styles.Default()), formatYAML))

	var got []styleSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 7)
	assert.Equal(t, "Tudor Revival", got[2].Name)
}

func TestWriteListTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeList(&buf, summarize(styles.Default()), formatTable))
	out := buf.String()
	assert.Contains(t, out, "Mediterranean Revival")
	assert.Contains(t, out, "/styles/minimal-traditional")
}

func TestWriteListUnknownFormat(t *testing.T) {
	err := writeList(&bytes.Buffer{}, nil, "xml")
	assert.ErrorContains(t, err, "unknown format")
}
