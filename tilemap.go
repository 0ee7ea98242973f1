package pixel

import (
	"errors"
	"fmt"
	"time"
)

// ErrTileMapSize is returned when tile map data does not match its grid size.
var ErrTileMapSize = errors.New("pixel: tile map data does not match its size")

// AnimFrame describes a single frame in a tile animation sequence.
type AnimFrame struct {
	GID      uint32 // tile GID shown during this frame
	Duration int    // milliseconds
}

// TileMap is a grid of atlas tiles drawn each tick with DrawTileMap. Cells
// hold GIDs: 0 is empty and n selects atlas tile n-1 in row-major order
// (the Tiled convention without flip bits).
type TileMap struct {
	Atlas *TileAtlas

	data   []uint32 // row-major GIDs, len = width * height
	width  int      // map width in tiles
	height int      // map height in tiles

	anims       map[uint32][]AnimFrame // base GID -> frames
	animElapsed time.Duration
}

// NewTileMap wraps data as a width×height grid of GIDs over a.
func NewTileMap(a *TileAtlas, width, height int, data []uint32) (*TileMap, error) {
	if a == nil || !a.valid() {
		return nil, fmt.Errorf("pixel: tile map: %w", ErrTileSize)
	}
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrTileMapSize, width, height, len(data))
	}
	return &TileMap{Atlas: a, data: data, width: width, height: height}, nil
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *TileMap) Height() int { return m.height }

// Tile returns the GID at (col, row), or 0 outside the map.
func (m *TileMap) Tile(col, row int) uint32 {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return 0
	}
	return m.data[row*m.width+col]
}

// SetTile changes the GID at (col, row). Out-of-range cells are ignored.
func (m *TileMap) SetTile(col, row int, gid uint32) {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return
	}
	m.data[row*m.width+col] = gid
}

// SetAnimation makes every cell holding gid cycle through frames. An empty
// frame list removes the animation.
func (m *TileMap) SetAnimation(gid uint32, frames []AnimFrame) {
	if len(frames) == 0 {
		delete(m.anims, gid)
		return
	}
	if m.anims == nil {
		m.anims = make(map[uint32][]AnimFrame)
	}
	m.anims[gid] = frames
}

// Update advances the animation clock by dt.
func (m *TileMap) Update(dt time.Duration) {
	if len(m.anims) > 0 {
		m.animElapsed += dt
	}
}

// resolve returns the GID to draw for a cell, following any animation.
func (m *TileMap) resolve(gid uint32) uint32 {
	frames, ok := m.anims[gid]
	if !ok {
		return gid
	}
	var total time.Duration
	for _, f := range frames {
		total += time.Duration(f.Duration) * time.Millisecond
	}
	if total <= 0 {
		return frames[0].GID
	}
	elapsed := m.animElapsed % total
	var acc time.Duration
	for _, f := range frames {
		acc += time.Duration(f.Duration) * time.Millisecond
		if elapsed < acc {
			return f.GID
		}
	}
	return frames[0].GID
}

// DrawTileMap draws the cells of m that overlap the surface, with map cell
// (0, 0) at (offX, offY). Each cell is a DrawTile call at the current depth.
func (r *Renderer) DrawTileMap(m *TileMap, offX, offY int) {
	if m == nil || !m.Atlas.valid() {
		return
	}
	tw, th := m.Atlas.TileWidth, m.Atlas.TileHeight
	cols := m.Atlas.Columns()

	startCol := max(0, floorDiv(-offX, tw))
	startRow := max(0, floorDiv(-offY, th))
	endCol := min(m.width, floorDiv(r.fb.Width-offX+tw-1, tw))
	endRow := min(m.height, floorDiv(r.fb.Height-offY+th-1, th))

	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			gid := m.resolve(m.data[row*m.width+col])
			if gid == 0 {
				continue
			}
			i := int(gid - 1)
			r.DrawTile(m.Atlas, offX+col*tw, offY+row*th, i%cols, i/cols)
		}
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
