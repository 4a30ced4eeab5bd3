package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskRoundTrip(t *testing.T) {
	// Every one of the 256 dot patterns must survive encode/decode
	// bit-for-bit.
	for mask := 0; mask < 256; mask++ {
		r := MaskRune(uint8(mask))
		got, ok := RuneMask(r)
		require.True(t, ok, "mask %#02x produced undecodable rune %q", mask, r)
		assert.Equal(t, uint8(mask), got, "mask %#02x", mask)
	}
}

func TestMaskRuneBlank(t *testing.T) {
	assert.Equal(t, ' ', MaskRune(0))
	got, ok := RuneMask(' ')
	assert.True(t, ok)
	assert.Equal(t, uint8(0), got)
}

func TestRuneMaskRejectsNonBraille(t *testing.T) {
	_, ok := RuneMask('x')
	assert.False(t, ok)
}

func TestCellMaskBitLayout(t *testing.T) {
	for _, tc := range []struct {
		name string
		dots [][2]int
		want rune
	}{
		{"top left dot", [][2]int{{0, 0}}, '⠁'},
		{"top right dot", [][2]int{{1, 0}}, '⠈'},
		{"bottom left dot", [][2]int{{0, 3}}, '⡀'},
		{"bottom right dot", [][2]int{{1, 3}}, '⢀'},
		{"left column", [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, '⡇'},
		{"all dots", [][2]int{
			{0, 0}, {1, 0}, {0, 1}, {1, 1},
			{0, 2}, {1, 2}, {0, 3}, {1, 3},
		}, '⣿'},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := NewDotGrid(1, 1)
			for _, d := range tc.dots {
				g.Set(d[0], d[1])
			}
			assert.Equal(t, string(tc.want), string(MaskRune(CellMask(g, 0, 0))))
		})
	}
}

func TestEncodeDiagonal(t *testing.T) {
	g := NewDotGrid(2, 1)
	g.Set(0, 0)
	g.Set(1, 1)
	g.Set(2, 2)
	g.Set(3, 3)
	rows := Encode(g)
	require.Len(t, rows, 1)
	// first cell (0,0)+(1,1) = 0x01|0x10, second (0,2)+(1,3) = 0x04|0x80
	assert.Equal(t, "⠑⢄", string(rows[0]))
}

func TestEncodeEmptyGridIsBlank(t *testing.T) {
	g := NewDotGrid(4, 3)
	rows := Encode(g)
	require.Len(t, rows, 3)
	for _, row := range rows {
		require.Len(t, row, 4)
		for _, r := range row {
			assert.Equal(t, ' ', r)
		}
	}
}

func TestDotGridBounds(t *testing.T) {
	g := NewDotGrid(2, 2)
	g.Set(-1, 0)
	g.Set(0, -1)
	g.Set(4, 0)
	g.Set(0, 8)
	assert.False(t, g.Any())
	g.Set(3, 7)
	assert.True(t, g.At(3, 7))
}
