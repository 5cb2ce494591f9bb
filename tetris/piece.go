package tetris

const maxPieceSize = 4

// Piece is a small rectangular grid of cells. Non-Empty cells are the occupied
// squares of the shape. Pieces are plain values: copying one never aliases the
// original and two pieces compare equal with == when their grids match.
type Piece struct {
	cells [maxPieceSize][maxPieceSize]Cell
	rows  int
	cols  int
}

// ActivePiece is the falling piece together with the board coordinates of
// its top-left corner.
type ActivePiece struct {
	Piece
	X, Y int
}

// Unlisted cells of the fixed-size grid are the zero value, Empty.
var shapes = [NumShapes]Piece{
	{rows: 1, cols: 4, cells: [maxPieceSize][maxPieceSize]Cell{
		{I, I, I, I},
	}},
	{rows: 2, cols: 2, cells: [maxPieceSize][maxPieceSize]Cell{
		{O, O},
		{O, O},
	}},
	{rows: 2, cols: 3, cells: [maxPieceSize][maxPieceSize]Cell{
		{T, T, T},
		{Empty, T, Empty},
	}},
	{rows: 2, cols: 3, cells: [maxPieceSize][maxPieceSize]Cell{
		{Empty, S, S},
		{S, S, Empty},
	}},
	{rows: 2, cols: 3, cells: [maxPieceSize][maxPieceSize]Cell{
		{Z, Z, Empty},
		{Empty, Z, Z},
	}},
	{rows: 2, cols: 3, cells: [maxPieceSize][maxPieceSize]Cell{
		{J, Empty, Empty},
		{J, J, J},
	}},
	{rows: 2, cols: 3, cells: [maxPieceSize][maxPieceSize]Cell{
		{Empty, Empty, L},
		{L, L, L},
	}},
}

// Shapes returns the canonical pieces in spawn-index order: I, O, T, S, Z, J, L.
func Shapes() [NumShapes]Piece {
	return shapes
}

// ShapeOf returns the canonical piece for kind. It reports false for Empty and
// for values outside the enumeration.
func ShapeOf(kind Cell) (Piece, bool) {
	if kind == Empty || int(kind) > NumShapes {
		return Piece{}, false
	}
	return shapes[kind-1], true
}

func (p Piece) Rows() int { return p.rows }
func (p Piece) Cols() int { return p.cols }

// At returns the cell at local row r, column c. Positions outside the piece
// grid read as Empty.
func (p Piece) At(r, c int) Cell {
	if r < 0 || r >= p.rows || c < 0 || c >= p.cols {
		return Empty
	}
	return p.cells[r][c]
}

// Kind returns the tag used by the piece's occupied cells, or Empty for the
// zero Piece.
func (p Piece) Kind() Cell {
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if p.cells[r][c] != Empty {
				return p.cells[r][c]
			}
		}
	}
	return Empty
}

// Rotate returns the piece turned 90 degrees clockwise. The result has the
// dimensions swapped: the cell at (r, c) moves to (c, rows-1-r).
func (p Piece) Rotate() Piece {
	rotated := Piece{rows: p.cols, cols: p.rows}
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			rotated.cells[c][p.rows-1-r] = p.cells[r][c]
		}
	}
	return rotated
}

// String renders the piece grid one row per line.
func (p Piece) String() string {
	buf := make([]rune, 0, p.rows*(p.cols+1))
	for r := 0; r < p.rows; r++ {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := 0; c < p.cols; c++ {
			buf = append(buf, p.cells[r][c].Rune())
		}
	}
	return string(buf)
}
