package outwriter

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	err := writeWithFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	}, "Wrote test")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestWriteJSONHelper(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, writeJSON(&sb, map[string]int{"jobs": 412}))
	assert.Contains(t, sb.String(), "\"jobs\": 412")
}

func TestWriteCSVWithHeader(t *testing.T) {
	var sb strings.Builder
	err := writeCSVWithHeader(&sb, []string{"field", "jobs"}, func(w *csv.Writer) error {
		return w.Write([]string{"Law", "74"})
	})
	require.NoError(t, err)
	assert.Equal(t, "field,jobs\nLaw,74\n", sb.String())
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "0.65", fmtFloat(0.6512))
	assert.Equal(t, "%d", intFmt)
}
