package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapes(t *testing.T) {
	kinds := []Cell{I, O, T, S, Z, J, L}
	dims := [][2]int{{1, 4}, {2, 2}, {2, 3}, {2, 3}, {2, 3}, {2, 3}, {2, 3}}

	for i, p := range Shapes() {
		t.Run(kinds[i].String(), func(t *testing.T) {
			assert.Equal(t, kinds[i], p.Kind())
			assert.Equal(t, dims[i][0], p.Rows())
			assert.Equal(t, dims[i][1], p.Cols())

			occupied := 0
			for r := 0; r < p.Rows(); r++ {
				for c := 0; c < p.Cols(); c++ {
					cell := p.At(r, c)
					if cell.IsEmpty() {
						continue
					}
					occupied++
					assert.Equal(t, kinds[i], cell)
				}
			}
			assert.Equal(t, 4, occupied)

			byKind, ok := ShapeOf(kinds[i])
			assert.True(t, ok)
			assert.Equal(t, p, byKind)
		})
	}
}

func TestShapeOfInvalid(t *testing.T) {
	_, ok := ShapeOf(Empty)
	assert.False(t, ok)

	_, ok = ShapeOf(Cell(42))
	assert.False(t, ok)
}

func TestPieceAtOutsideGrid(t *testing.T) {
	p, _ := ShapeOf(O)
	assert.Equal(t, Empty, p.At(-1, 0))
	assert.Equal(t, Empty, p.At(0, 2))
	assert.Equal(t, Empty, p.At(2, 0))
}

func TestPieceRotate(t *testing.T) {
	t.Run("swaps dimensions", func(t *testing.T) {
		p, _ := ShapeOf(I)
		rotated := p.Rotate()
		assert.Equal(t, 4, rotated.Rows())
		assert.Equal(t, 1, rotated.Cols())
		assert.Equal(t, "I\nI\nI\nI", rotated.String())
	})

	t.Run("clockwise", func(t *testing.T) {
		p, _ := ShapeOf(J)
		assert.Equal(t, "J..\nJJJ", p.String())
		assert.Equal(t, "JJ\nJ.\nJ.", p.Rotate().String())
		assert.Equal(t, "JJJ\n..J", p.Rotate().Rotate().String())
		assert.Equal(t, ".J\n.J\nJJ", p.Rotate().Rotate().Rotate().String())
	})

	t.Run("four turns restore every shape", func(t *testing.T) {
		for _, p := range Shapes() {
			assert.Equal(t, p, p.Rotate().Rotate().Rotate().Rotate(), p.Kind().String())
		}
	})

	t.Run("does not modify receiver", func(t *testing.T) {
		p, _ := ShapeOf(S)
		before := p
		_ = p.Rotate()
		assert.Equal(t, before, p)
	})
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "Empty", Empty.String())
	assert.Equal(t, "T", T.String())
	assert.Equal(t, '.', Empty.Rune())
	assert.Equal(t, '?', Cell(99).Rune())
	assert.True(t, Empty.IsEmpty())
	assert.False(t, L.IsEmpty())
}

func TestActivePiecePromotesPieceMethods(t *testing.T) {
	shape, ok := ShapeOf(J)
	require.True(t, ok)

	a := ActivePiece{Piece: shape, X: 3, Y: 1}
	assert.Equal(t, J, a.Kind())
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, 3, a.Cols())
	assert.Equal(t, J, a.At(1, 2))
	assert.Equal(t, Empty, a.At(0, 1))
	assert.Equal(t, shape.String(), a.String())
}
