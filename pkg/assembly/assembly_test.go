package assembly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pcba/pkg/component"
	"github.com/matzehuels/pcba/pkg/rotation"
)

func rec(ref, value, footprint, lcsc string) *component.Record {
	return &component.Record{Ref: ref, Value: value, Footprint: footprint, PartNumber: lcsc}
}

func TestBOMMergesIdenticalParts(t *testing.T) {
	b := NewBOM()
	b.Add(rec("C1", "100n", "0402", "C1525"))
	b.Add(rec("R1", "1k", "0402", ""))
	b.Add(rec("C7", "100n", "0402", "C1525"))
	b.Add(rec("C3", "100n", "0402", "C1525"))

	lines := b.Lines()
	require.Len(t, lines, 2)

	assert.Equal(t, Key{Value: "100n", Footprint: "0402", PartNumber: "C1525"}, lines[0].Key)
	assert.Equal(t, "C1,C7,C3", lines[0].Designator(), "first-seen order, not sorted")
	assert.Equal(t, 3, lines[0].Quantity())

	assert.Equal(t, "R1", lines[1].Designator())
	assert.Equal(t, 4, b.Parts())
}

func TestBOMKeyUsesAllThreeFields(t *testing.T) {
	var b BOM
	b.Add(rec("R1", "1k", "0402", ""))
	b.Add(rec("R2", "1k", "0603", ""))
	b.Add(rec("R3", "1k", "0402", "C11702"))
	b.Add(rec("R4", "10k", "0402", ""))

	assert.Equal(t, 4, b.Len())
}

func TestBOMMergeIsIndependentOfCount(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100} {
		var b BOM
		want := make([]string, n)
		for i := range n {
			ref := "R" + strings.Repeat("1", i+1)
			want[i] = ref
			b.Add(rec(ref, "1k", "0402", "C11702"))
		}
		require.Equal(t, 1, b.Len())
		assert.Equal(t, strings.Join(want, ","), b.Lines()[0].Designator())
	}
}

func TestBOMLinesIsACopy(t *testing.T) {
	var b BOM
	b.Add(rec("R1", "1k", "0402", ""))
	lines := b.Lines()
	lines[0].Designators[0] = "X"
	assert.Equal(t, "R1", b.Lines()[0].Designator())
}

func TestNewPlacement(t *testing.T) {
	r := &component.Record{
		Ref:       "U1",
		Footprint: "SOT-23",
		Layer:     component.Bottom,
		X:         12_500_000,
		Y:         -30_250_000, // native y = 30.25mm, negated on ingestion
		Rotation:  350,
	}
	rules, err := rotation.Parse(strings.NewReader("SOT-23 180\n"))
	require.NoError(t, err)

	p := NewPlacement(r, rules)
	assert.Equal(t, "U1", p.Designator)
	assert.Equal(t, 12.5, p.MidX)
	assert.Equal(t, 30.25, p.MidY, "placement y keeps the native sign")
	assert.Equal(t, component.Bottom, p.Layer)
	assert.Equal(t, 170.0, p.Rotation)
}

func TestNewPlacementWithoutRules(t *testing.T) {
	r := &component.Record{Ref: "R100", Footprint: "0402", Rotation: -90}
	p := NewPlacement(r, nil)
	assert.Equal(t, 270.0, p.Rotation)
	assert.Equal(t, 0.0, p.MidY)
}
