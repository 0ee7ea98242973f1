package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/phanxgames/pixel"
)

const (
	tileSize = 32
	atlasW   = 16 * tileSize
	atlasH   = 12 * tileSize
)

type assets struct {
	tiles        *pixel.TileAtlas
	tileX, tileY int
	sprite       *pixel.Bitmap
	font         *pixel.BitmapFont
}

// loadAssets reads tiles.png, sprite.png, font.png and tiles.json from dir.
// Any missing image is generated instead, so the demo runs without files.
func loadAssets(dir string) (*assets, error) {
	a := &assets{tileX: 14, tileY: 10}

	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}

	tiles, err := loadOptional(fsys, "tiles.png")
	if err != nil {
		return nil, err
	}
	if tiles == nil {
		tiles = generateTiles()
	}
	a.tiles, err = pixel.NewTileAtlas(tiles, tileSize, tileSize)
	if err != nil {
		return nil, err
	}

	if fsys != nil {
		names, err := fs.ReadFile(fsys, "tiles.json")
		switch {
		case err == nil:
			if err := a.tiles.LoadNames(names); err != nil {
				return nil, err
			}
			if tx, ty, ok := a.tiles.Named("demo"); ok {
				a.tileX, a.tileY = tx, ty
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	a.sprite, err = loadOptional(fsys, "sprite.png")
	if err != nil {
		return nil, err
	}
	if a.sprite == nil {
		a.sprite = generateSprite()
	}

	fontStrip, err := loadOptional(fsys, "font.png")
	if err != nil {
		return nil, err
	}
	if fontStrip != nil {
		if a.font, err = pixel.NewBitmapFont(fontStrip); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func loadOptional(fsys fs.FS, name string) (*pixel.Bitmap, error) {
	if fsys == nil {
		return nil, nil
	}
	if _, err := fs.Stat(fsys, name); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return pixel.LoadBitmapFile(fsys, name)
}

// generateTiles builds an opaque atlas where every tile has its own color
// and a one-pixel darker rim.
func generateTiles() *pixel.Bitmap {
	b := pixel.NewFilledBitmap(atlasW, atlasH, pixel.Black)
	for y := 0; y < atlasH; y++ {
		for x := 0; x < atlasW; x++ {
			tx, ty := x/tileSize, y/tileSize
			r := uint8(tx * 16)
			g := uint8(ty * 21)
			bl := uint8(255 - tx*8 - ty*8)
			lx, ly := x%tileSize, y%tileSize
			if lx == 0 || ly == 0 || lx == tileSize-1 || ly == tileSize-1 {
				r, g, bl = r/2, g/2, bl/2
			}
			b.Pixels[x+y*atlasW] = pixel.ARGB(0xFF, r, g, bl)
		}
	}
	return b
}

// generateSprite builds a 32×32 disc with transparent corners and a soft
// edge, so it takes the immediate compositing path.
func generateSprite() *pixel.Bitmap {
	const size = 32
	pixels := make([]pixel.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-size/2, y-size/2
			d2 := dx*dx + dy*dy
			switch {
			case d2 < 12*12:
				pixels[x+y*size] = pixel.ARGB(0xFF, 0xC0, 0x90, 0x50)
			case d2 < 15*15:
				pixels[x+y*size] = pixel.ARGB(0x80, 0x60, 0x40, 0x20)
			}
		}
	}
	b, _ := pixel.NewBitmap(size, size, pixels)
	return b
}
