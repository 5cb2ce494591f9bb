// Package palette holds the cell colours shared by the frontends.
package palette

import (
	"image/color"

	"github.com/plus3/tetromino/tetris"
)

var hex = [...]uint32{
	tetris.Empty: 0xE8E8E8,
	tetris.I:     0x00E5FF,
	tetris.O:     0xFFD700,
	tetris.T:     0xB847FF,
	tetris.S:     0x72CB3B,
	tetris.Z:     0xFF1744,
	tetris.J:     0x0065FF,
	tetris.L:     0xFF7800,
}

// Background is the colour behind the board.
const Background uint32 = 0xF0F0F0

// Hex returns the 0xRRGGBB colour of c. Unknown values use the Empty colour.
func Hex(c tetris.Cell) uint32 {
	if int(c) < len(hex) {
		return hex[c]
	}
	return hex[tetris.Empty]
}

// RGBA returns the colour of c with the given alpha.
func RGBA(c tetris.Cell, alpha uint8) color.RGBA {
	return toRGBA(Hex(c), alpha)
}

func toRGBA(v uint32, alpha uint8) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: alpha}
}

// BackgroundRGBA returns Background as an opaque colour.
func BackgroundRGBA() color.RGBA {
	return toRGBA(Background, 0xFF)
}
