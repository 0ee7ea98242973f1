package pixel

import (
	"fmt"
	"strings"
)

// defaultGlyphs holds the built-in 3×5 font, one entry per code point from
// space (32) to '~' (126). Rows are separated by '|'; '#' is ink. Lowercase
// letters are drawn with their uppercase shapes.
var defaultGlyphs = [...]string{
	' ':  "...|...|...|...|...",
	'!':  ".#.|.#.|.#.|...|.#.",
	'"':  "#.#|#.#|...|...|...",
	'#':  "#.#|###|#.#|###|#.#",
	'$':  ".##|##.|.#.|.##|##.",
	'%':  "#.#|..#|.#.|#..|#.#",
	'&':  ".#.|#.#|.#.|#.#|.##",
	'\'': ".#.|.#.|...|...|...",
	'(':  "..#|.#.|.#.|.#.|..#",
	')':  "#..|.#.|.#.|.#.|#..",
	'*':  "...|#.#|.#.|#.#|...",
	'+':  "...|.#.|###|.#.|...",
	',':  "...|...|...|.#.|#..",
	'-':  "...|...|###|...|...",
	'.':  "...|...|...|...|.#.",
	'/':  "..#|..#|.#.|#..|#..",
	'0':  "###|#.#|#.#|#.#|###",
	'1':  ".#.|##.|.#.|.#.|###",
	'2':  "###|..#|###|#..|###",
	'3':  "###|..#|###|..#|###",
	'4':  "#.#|#.#|###|..#|..#",
	'5':  "###|#..|###|..#|###",
	'6':  "###|#..|###|#.#|###",
	'7':  "###|..#|..#|.#.|.#.",
	'8':  "###|#.#|###|#.#|###",
	'9':  "###|#.#|###|..#|###",
	':':  "...|.#.|...|.#.|...",
	';':  "...|.#.|...|.#.|#..",
	'<':  "..#|.#.|#..|.#.|..#",
	'=':  "...|###|...|###|...",
	'>':  "#..|.#.|..#|.#.|#..",
	'?':  "###|..#|.##|...|.#.",
	'@':  "###|#.#|###|#..|###",
	'A':  ".#.|#.#|###|#.#|#.#",
	'B':  "##.|#.#|##.|#.#|##.",
	'C':  ".##|#..|#..|#..|.##",
	'D':  "##.|#.#|#.#|#.#|##.",
	'E':  "###|#..|##.|#..|###",
	'F':  "###|#..|##.|#..|#..",
	'G':  ".##|#..|#.#|#.#|.##",
	'H':  "#.#|#.#|###|#.#|#.#",
	'I':  "###|.#.|.#.|.#.|###",
	'J':  "..#|..#|..#|#.#|.#.",
	'K':  "#.#|#.#|##.|#.#|#.#",
	'L':  "#..|#..|#..|#..|###",
	'M':  "#.#|###|###|#.#|#.#",
	'N':  "##.|#.#|#.#|#.#|#.#",
	'O':  ".#.|#.#|#.#|#.#|.#.",
	'P':  "##.|#.#|##.|#..|#..",
	'Q':  ".#.|#.#|#.#|##.|.##",
	'R':  "##.|#.#|##.|#.#|#.#",
	'S':  ".##|#..|.#.|..#|##.",
	'T':  "###|.#.|.#.|.#.|.#.",
	'U':  "#.#|#.#|#.#|#.#|###",
	'V':  "#.#|#.#|#.#|#.#|.#.",
	'W':  "#.#|#.#|###|###|#.#",
	'X':  "#.#|#.#|.#.|#.#|#.#",
	'Y':  "#.#|#.#|.#.|.#.|.#.",
	'Z':  "###|..#|.#.|#..|###",
	'[':  "##.|#..|#..|#..|##.",
	'\\': "#..|#..|.#.|..#|..#",
	']':  ".##|..#|..#|..#|.##",
	'^':  ".#.|#.#|...|...|...",
	'_':  "...|...|...|...|###",
	'`':  "#..|.#.|...|...|...",
	'{':  ".##|.#.|##.|.#.|.##",
	'|':  ".#.|.#.|.#.|.#.|.#.",
	'}':  "##.|.#.|.##|.#.|##.",
	'~':  "...|..#|###|#..|...",
}

const (
	defaultGlyphW  = 3
	defaultGlyphH  = 5
	defaultAdvance = defaultGlyphW + 1 // one blank column between glyphs
	defaultCell    = defaultAdvance + 1 // plus the end-sentinel column
	defaultFirst   = ' '
	defaultLast    = '~'
)

// defaultFont singleton (no sync.Once; pixel is single-threaded).
var defaultFont *BitmapFont

// DefaultFont returns the built-in 3×5 pixel font covering printable ASCII.
// Its strip is 7 pixels high: the sentinel row, five glyph rows and one
// blank row.
func DefaultFont() *BitmapFont {
	if defaultFont == nil {
		f, err := NewBitmapFont(buildDefaultStrip())
		if err != nil {
			panic(fmt.Sprintf("pixel: built-in font: %v", err))
		}
		defaultFont = f
	}
	return defaultFont
}

// buildDefaultStrip lays the built-in glyphs out as a sentinel strip.
func buildDefaultStrip() *Bitmap {
	n := defaultLast - defaultFirst + 1
	w := int(n) * defaultCell
	h := defaultGlyphH + 2
	pixels := make([]Color, w*h)

	for cp := defaultFirst; cp <= defaultLast; cp++ {
		c := int(cp-defaultFirst) * defaultCell
		pixels[c] = GlyphStart
		pixels[c+defaultAdvance] = GlyphEnd

		src := cp
		if src >= 'a' && src <= 'z' {
			src -= 'a' - 'A'
		}
		for gy, row := range strings.Split(defaultGlyphs[src], "|") {
			for gx := 0; gx < len(row) && gx < defaultGlyphW; gx++ {
				if row[gx] == '#' {
					pixels[c+gx+(gy+1)*w] = GlyphInk
				}
			}
		}
	}

	return &Bitmap{Width: w, Height: h, Pixels: pixels, HasAlpha: true}
}
