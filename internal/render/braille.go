package render

// Unicode braille block: U+2800 plus an 8-bit dot mask. The dot layout
// per cell is fixed by the standard:
//
//	(0,0) (1,0)   0x01 0x08
//	(0,1) (1,1)   0x02 0x10
//	(0,2) (1,2)   0x04 0x20
//	(0,3) (1,3)   0x40 0x80
const brailleBase = 0x2800

// bitTable[y%4][x%2] is the mask bit for a dot within its cell.
var bitTable = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CellMask packs the 2x4 dot block of cell (cx, cy) into its braille
// mask. Cells outside the grid read as blank.
func CellMask(g *DotGrid, cx, cy int) uint8 {
	var mask uint8
	for ry := 0; ry < 4; ry++ {
		for rx := 0; rx < 2; rx++ {
			if g.At(cx*2+rx, cy*4+ry) {
				mask |= bitTable[ry][rx]
			}
		}
	}
	return mask
}

// MaskRune returns the glyph for a dot mask. The empty pattern renders
// as a plain space rather than U+2800 so blank regions stay clean.
func MaskRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(brailleBase + int(mask))
}

// RuneMask recovers the dot mask from a glyph produced by MaskRune.
func RuneMask(r rune) (uint8, bool) {
	if r == ' ' {
		return 0, true
	}
	if r < brailleBase || r > brailleBase+0xFF {
		return 0, false
	}
	return uint8(r - brailleBase), true
}

// Encode converts a DotGrid into rows of glyphs, one rune per character
// cell. Pure and total: no error conditions, O(cols*rows).
func Encode(g *DotGrid) [][]rune {
	w, h := g.Size()
	cols, rows := w/2, h/4
	out := make([][]rune, rows)
	for cy := 0; cy < rows; cy++ {
		row := make([]rune, cols)
		for cx := 0; cx < cols; cx++ {
			row[cx] = MaskRune(CellMask(g, cx, cy))
		}
		out[cy] = row
	}
	return out
}
