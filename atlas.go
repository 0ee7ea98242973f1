package pixel

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrTileSize is returned when an atlas cannot be split evenly into tiles.
var ErrTileSize = errors.New("pixel: atlas size is not a multiple of the tile size")

// TileAtlas is a Bitmap split into a grid of equal tiles addressed by
// (tileX, tileY).
type TileAtlas struct {
	*Bitmap
	TileWidth  int
	TileHeight int

	names map[string][2]int
}

// NewTileAtlas splits b into tileWidth×tileHeight tiles.
func NewTileAtlas(b *Bitmap, tileWidth, tileHeight int) (*TileAtlas, error) {
	if b == nil || !b.valid() || b.Width == 0 || b.Height == 0 {
		return nil, fmt.Errorf("pixel: tile atlas: %w", ErrBitmapSize)
	}
	if tileWidth <= 0 || tileHeight <= 0 ||
		b.Width%tileWidth != 0 || b.Height%tileHeight != 0 {
		return nil, fmt.Errorf("%w: %dx%d atlas, %dx%d tiles",
			ErrTileSize, b.Width, b.Height, tileWidth, tileHeight)
	}
	return &TileAtlas{Bitmap: b, TileWidth: tileWidth, TileHeight: tileHeight}, nil
}

// valid reports whether the atlas still satisfies its grid invariant.
func (a *TileAtlas) valid() bool {
	return a != nil && a.Bitmap.valid() && a.Width > 0 && a.Height > 0 &&
		a.TileWidth > 0 && a.TileHeight > 0 &&
		a.Width%a.TileWidth == 0 && a.Height%a.TileHeight == 0
}

// Columns returns the number of tiles per atlas row.
func (a *TileAtlas) Columns() int { return a.Width / a.TileWidth }

// Rows returns the number of tile rows.
func (a *TileAtlas) Rows() int { return a.Height / a.TileHeight }

// clampTile forces (tx, ty) into the atlas grid, picking the nearest edge
// tile.
func (a *TileAtlas) clampTile(tx, ty int) (int, int) {
	tx = max(0, min(tx, a.Columns()-1))
	ty = max(0, min(ty, a.Rows()-1))
	return tx, ty
}

// TileRect returns the atlas-local rectangle covered by tile (tx, ty) after
// clamping into the grid.
func (a *TileAtlas) TileRect(tx, ty int) Rect {
	tx, ty = a.clampTile(tx, ty)
	return Rect{
		X:      tx * a.TileWidth,
		Y:      ty * a.TileHeight,
		Width:  a.TileWidth,
		Height: a.TileHeight,
	}
}

// TileAt returns the pixel at tile-local (x, y) of tile (tx, ty).
func (a *TileAtlas) TileAt(tx, ty, x, y int) Color {
	if x < 0 || x >= a.TileWidth || y < 0 || y >= a.TileHeight {
		return Transparent
	}
	tx, ty = a.clampTile(tx, ty)
	return a.Pixels[(x+tx*a.TileWidth)+(y+ty*a.TileHeight)*a.Width]
}

// Tile copies tile (tx, ty) into a standalone Bitmap.
func (a *TileAtlas) Tile(tx, ty int) *Bitmap {
	tx, ty = a.clampTile(tx, ty)
	pixels := make([]Color, a.TileWidth*a.TileHeight)
	for y := 0; y < a.TileHeight; y++ {
		src := (tx * a.TileWidth) + (y+ty*a.TileHeight)*a.Width
		copy(pixels[y*a.TileWidth:(y+1)*a.TileWidth], a.Pixels[src:src+a.TileWidth])
	}
	return &Bitmap{Width: a.TileWidth, Height: a.TileHeight, Pixels: pixels, HasAlpha: a.HasAlpha}
}

// --- Named tiles ---

// jsonTileNames is the on-disk shape of a tile name table:
//
//	{"tiles": {"grass": [0, 0], "water": [3, 1]}}
type jsonTileNames struct {
	Tiles map[string][2]int `json:"tiles"`
}

// LoadNames parses a JSON tile name table and merges it into the atlas.
// Entries pointing outside the grid are rejected.
func (a *TileAtlas) LoadNames(jsonData []byte) error {
	var table jsonTileNames
	if err := json.Unmarshal(jsonData, &table); err != nil {
		return fmt.Errorf("pixel: failed to parse tile names: %w", err)
	}
	if table.Tiles == nil {
		return fmt.Errorf("pixel: tile names JSON has no \"tiles\" key")
	}
	if a.names == nil {
		a.names = make(map[string][2]int, len(table.Tiles))
	}
	cols, rows := a.Columns(), a.Rows()
	for name, t := range table.Tiles {
		if t[0] < 0 || t[0] >= cols || t[1] < 0 || t[1] >= rows {
			return fmt.Errorf("pixel: tile %q at (%d, %d) is outside the %dx%d grid", name, t[0], t[1], cols, rows)
		}
		a.names[name] = t
	}
	return nil
}

// Named returns the grid position registered for name. Unknown names log a
// debug message and resolve to tile (0, 0).
func (a *TileAtlas) Named(name string) (tx, ty int, ok bool) {
	if t, found := a.names[name]; found {
		return t[0], t[1], true
	}
	Logger().Debug("pixel: tile name not found, using tile (0, 0)", "name", name)
	return 0, 0, false
}
