package tetris

import "fmt"

// Snapshot is a detached copy of an engine's state. Cells holds the settled
// board only, row-major, without the active piece.
type Snapshot struct {
	Width    int
	Height   int
	Cells    []Cell
	Active   ActivePiece
	HasPiece bool
	GameOver bool
	Score    uint32
	Lines    int
}

// Snapshot copies the current state. The engine's randomizer and lock handler
// are not part of it.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:    e.board.width,
		Height:   e.board.height,
		Cells:    e.board.appendCells(make([]Cell, 0, e.board.width*e.board.height)),
		Active:   e.active,
		HasPiece: e.hasPiece,
		GameOver: e.gameOver,
		Score:    e.score,
		Lines:    e.lines,
	}
}

// Restore replaces the engine state with s. The snapshot must have the
// engine's dimensions and contain only valid cells. When it carries an active
// piece, that piece must be a real shape and, unless the game is over, sit
// inside the grid on empty cells. On error the engine is unchanged.
func (e *Engine) Restore(s Snapshot) error {
	if s.Width != e.board.width || s.Height != e.board.height {
		return fmt.Errorf("restore %dx%d into %dx%d: %w",
			s.Width, s.Height, e.board.width, e.board.height, ErrSnapshotMismatch)
	}
	if len(s.Cells) != s.Width*s.Height {
		return fmt.Errorf("restore %d cells into %d: %w",
			len(s.Cells), s.Width*s.Height, ErrSnapshotMismatch)
	}
	for i, cell := range s.Cells {
		if int(cell) > NumShapes {
			return fmt.Errorf("restore cell %d value %d: %w", i, cell, ErrSnapshotMismatch)
		}
	}

	if s.HasPiece {
		if err := validPiece(s.Active.Piece); err != nil {
			return err
		}
		if !s.GameOver && !s.fits(s.Active) {
			return fmt.Errorf("restore active piece at (%d, %d): %w",
				s.Active.X, s.Active.Y, ErrSnapshotMismatch)
		}
	}

	for y, row := range e.board.rows {
		copy(row, s.Cells[y*s.Width:(y+1)*s.Width])
	}
	e.active = s.Active
	e.hasPiece = s.HasPiece
	e.gameOver = s.GameOver
	e.score = s.Score
	e.lines = s.Lines
	return nil
}

func validPiece(p Piece) error {
	if p.rows < 1 || p.rows > maxPieceSize || p.cols < 1 || p.cols > maxPieceSize {
		return fmt.Errorf("restore %dx%d piece: %w", p.rows, p.cols, ErrSnapshotMismatch)
	}
	kind := p.Kind()
	if kind == Empty || int(kind) > NumShapes {
		return fmt.Errorf("restore piece of kind %d: %w", kind, ErrSnapshotMismatch)
	}
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if cell := p.cells[r][c]; cell != Empty && cell != kind {
				return fmt.Errorf("restore piece mixing %s and %s: %w", kind, cell, ErrSnapshotMismatch)
			}
		}
	}
	return nil
}

// fits reports whether a lies inside the snapshot grid on empty cells.
func (s Snapshot) fits(a ActivePiece) bool {
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if a.cells[r][c] == Empty {
				continue
			}
			x, y := a.X+c, a.Y+r
			if x < 0 || y < 0 || x >= s.Width || y >= s.Height || s.Cells[y*s.Width+x] != Empty {
				return false
			}
		}
	}
	return true
}
