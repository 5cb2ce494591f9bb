package tetris

// Cell is the content of a single board square: either Empty or the kind of
// piece that settled there.
type Cell uint8

const (
	Empty Cell = iota
	I
	O
	T
	S
	Z
	J
	L
)

// NumShapes is the number of canonical piece kinds.
const NumShapes = 7

var cellRunes = [...]rune{'.', 'I', 'O', 'T', 'S', 'Z', 'J', 'L'}

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Rune returns a single-character label, '.' for Empty and '?' for values
// outside the enumeration.
func (c Cell) Rune() rune {
	if int(c) < len(cellRunes) {
		return cellRunes[c]
	}
	return '?'
}

func (c Cell) String() string {
	if c == Empty {
		return "Empty"
	}
	return string(c.Rune())
}
