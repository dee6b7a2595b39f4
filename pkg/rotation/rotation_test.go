package rotation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pcba/pkg/errors"
)

func TestLoadTestdata(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "rotations.cf"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, table.Delta("non-matching-footprint"))
	assert.Equal(t, 180.0, table.Delta("SOT-23"))
	assert.Equal(t, 90.0, table.Delta("TDK_ATB"))
	assert.Equal(t, 270.0, table.Delta("QFN-32-1EP_5x5mm_P0.5mm"))
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	src := `
# full line comment

SOT-23 180   # trailing comment
   	
TDK_ATB	90
`
	table, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	rules := table.Rules()
	assert.Equal(t, "SOT-23", rules[0].Pattern)
	assert.Equal(t, 4, rules[0].Line)
	assert.Equal(t, "TDK_ATB", rules[1].Pattern)
	assert.Equal(t, 6, rules[1].Line)
}

func TestDeltaFirstMatchWins(t *testing.T) {
	table, err := Parse(strings.NewReader("SOT-23-5 90\nSOT-23 180\n"))
	require.NoError(t, err)

	assert.Equal(t, 90.0, table.Delta("SOT-23-5"))
	assert.Equal(t, 180.0, table.Delta("SOT-23"))

	// Order matters: the broader pattern first shadows the narrower one.
	table, err = Parse(strings.NewReader("SOT-23 180\nSOT-23-5 90\n"))
	require.NoError(t, err)
	assert.Equal(t, 180.0, table.Delta("SOT-23-5"))
}

func TestDeltaUnanchored(t *testing.T) {
	table, err := Parse(strings.NewReader("SOT-23 180\n^SOIC 270\n"))
	require.NoError(t, err)

	assert.Equal(t, 180.0, table.Delta("Package_TO_SOT_SMD:SOT-23-3"))
	assert.Equal(t, 270.0, table.Delta("SOIC-8_3.9x4.9mm"))
	assert.Equal(t, 0.0, table.Delta("Package_SO:SOIC-8"), "explicit anchors still apply")
}

func TestMatchReportsRule(t *testing.T) {
	table, err := Parse(strings.NewReader("# header\nLED_ -90\n"))
	require.NoError(t, err)

	r, ok := table.Match("LED_0603")
	require.True(t, ok)
	assert.Equal(t, -90.0, r.Delta)
	assert.Equal(t, 2, r.Line)

	_, ok = table.Match("R_0603")
	assert.False(t, ok)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing delta", "SOT-23\n"},
		{"bad delta", "SOT-23 half\n"},
		{"nan delta", "SOT-23 NaN\n"},
		{"bad regexp", "SOT-(23 180\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidRule), "got %v", err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "rotations.cf"))
	assert.True(t, errors.Is(err, errors.ErrCodeMissingInputFile), "got %v", err)
}

func TestLoadRecordsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.cf")
	require.NoError(t, os.WriteFile(path, []byte("0402 0\n"), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, table.Source())
	assert.Equal(t, 1, table.Len())
}

func TestEmptyAndNilTables(t *testing.T) {
	var nilTable *Table
	assert.Equal(t, 0.0, nilTable.Delta("SOT-23"))
	assert.Equal(t, 0, nilTable.Len())
	assert.Nil(t, nilTable.Rules())

	assert.Equal(t, 0.0, Empty().Delta("SOT-23"))
	assert.Equal(t, 0, Empty().Len())
}

func TestCorrect(t *testing.T) {
	tests := []struct {
		name       string
		rot, delta float64
		want       float64
	}{
		{"no delta", 0, 0, 0},
		{"wraps past 360", 350, 180, 170},
		{"exact 360", 180, 180, 0},
		{"negative native", -90, 0, 270},
		{"negative delta", 45, -90, 315},
		{"large negative", -720, -30, 330},
		{"fractional", 89.5, 90, 179.5},
		{"tiny negative", -1e-14, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Correct(tt.rot, tt.delta)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}
