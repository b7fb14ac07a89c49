// pkg/parser/csv_test.go
package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidycheck/tidycheck/pkg/frame"
)

func TestParseCSVTypesCells(t *testing.T) {
	input := "Name,Age,Score,Active,Note\n" +
		"Alice,30,1.5,true,hello\n" +
		"Bob,25,NaN,false,\n"

	f, meta, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age", "score", "active", "note"}, f.Columns())
	assert.Equal(t, 2, f.NumRows())

	assert.Equal(t, frame.KindText, f.Cell(0, 0).Kind())
	assert.Equal(t, int64(30), f.Cell(0, 1).IntValue())
	assert.Equal(t, 1.5, f.Cell(0, 2).FloatValue())
	assert.True(t, f.Cell(0, 3).BoolValue())
	assert.True(t, f.Cell(1, 2).IsNull(), "NaN token reads as missing")
	assert.True(t, f.Cell(1, 4).IsNull(), "empty field reads as missing")

	assert.Equal(t, 2, meta.OriginalRowCount)
	assert.Equal(t, 5, meta.OriginalColumnCount)
	assert.Equal(t, "Name", meta.ColumnMapping["name"])
}

func TestParseCSVPadsShortRows(t *testing.T) {
	input := "a,b,c\n1,2\n"

	f, _, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, f.NumRows())
	assert.True(t, f.Cell(0, 2).IsNull())
}

func TestParseCSVEmptyInputs(t *testing.T) {
	_, _, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)

	// Header only, no data rows
	_, _, err = ParseCSV(strings.NewReader("a,b,c\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParseCSVNonUTF8FallsBack(t *testing.T) {
	// "café" with a Latin-1 encoded é (0xE9), invalid as UTF-8.
	raw := []byte("name\ncaf\xe9\n")
	require.False(t, strings.Contains(string(raw), "café"))

	f, _, err := ParseCSV(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "café", f.Cell(0, 0).TextValue())
}

func TestColumnProfiles(t *testing.T) {
	f, meta, err := ParseCSV(strings.NewReader(
		"Name,Age\nAlice,30\nBob,25\nAlice,\n"))
	require.NoError(t, err)

	profiles := ColumnProfiles(f, meta.ColumnMapping)
	require.Len(t, profiles, 2)

	name := profiles[0]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "Name", name.OriginalName)
	assert.Equal(t, "text", name.Kind)
	assert.Equal(t, 3, name.NonNullCount)
	assert.Equal(t, 0, name.NullCount)
	assert.Equal(t, 2, name.UniqueCount)
	assert.Len(t, name.SampleValues, 3)

	age := profiles[1]
	assert.Equal(t, "int", age.Kind)
	assert.Equal(t, 2, age.NonNullCount)
	assert.Equal(t, 1, age.NullCount)
}
