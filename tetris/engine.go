// Package tetris implements the rules of a falling-block puzzle: the board,
// the active piece, movement, rotation, collision, locking, line clearing and
// scoring.
//
// The Engine is a passive state machine. It has no timers and performs no
// I/O; a caller drives gravity by invoking MoveDown on a cadence of its
// choosing and forwards player input as MoveLeft, MoveRight, Rotate and
// HardDrop calls. Every mutating call either commits fully or leaves the state
// exactly as it was.
//
// An Engine is not safe for concurrent use.
package tetris

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	// ErrInvalidDimensions is returned by New for a non-positive width or height.
	ErrInvalidDimensions = errors.New("tetris: board dimensions must be positive")
	// ErrSnapshotMismatch is returned by Restore when the snapshot does not fit
	// the engine's board.
	ErrSnapshotMismatch = errors.New("tetris: snapshot does not match board")
)

// LockEvent describes a piece settling into the board.
type LockEvent struct {
	Kind     Cell
	Lines    int
	Points   uint32
	Score    uint32
	GameOver bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithRandomizer sets the source of spawn indices.
func WithRandomizer(r Randomizer) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed makes piece selection reproducible.
func WithSeed(seed uint64) Option {
	return WithRandomizer(NewRandom(seed))
}

// WithLockHandler registers fn to be called after every lock, once lines have
// been cleared and the next piece spawned.
func WithLockHandler(fn func(LockEvent)) Option {
	return func(e *Engine) {
		e.onLock = fn
	}
}

// Engine holds the board and the falling piece.
type Engine struct {
	board    board
	active   ActivePiece
	hasPiece bool
	gameOver bool
	score    uint32
	lines    int

	rng    Randomizer
	onLock func(LockEvent)
}

// New creates an engine with an empty board and no active piece. Call NewGame
// to start playing.
func New(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	e := &Engine{
		board: newBoard(width, height),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom(rand.Uint64())
	}
	return e, nil
}

func (e *Engine) Width() int       { return e.board.width }
func (e *Engine) Height() int      { return e.board.height }
func (e *Engine) Score() uint32    { return e.score }
func (e *Engine) Lines() int       { return e.lines }
func (e *Engine) IsGameOver() bool { return e.gameOver }

// Active returns the falling piece. It reports false before the first
// NewGame.
func (e *Engine) Active() (ActivePiece, bool) {
	return e.active, e.hasPiece
}

// NewGame clears the board, score and game-over flag and spawns a new piece.
// It may be called at any time; a piece in flight is discarded.
func (e *Engine) NewGame() {
	e.board.reset()
	e.score = 0
	e.lines = 0
	e.gameOver = false
	e.active = ActivePiece{}
	e.hasPiece = false

	e.SpawnPiece()
	if e.checkCollision() {
		e.gameOver = true
	}
}

// SpawnPiece replaces the active piece with a randomly chosen canonical shape,
// centred horizontally at the top of the board. It does not test for
// collision.
func (e *Engine) SpawnPiece() {
	piece := shapes[e.rng.IntN(NumShapes)]
	e.active = ActivePiece{
		Piece: piece,
		X:     e.board.width/2 - piece.cols/2,
		Y:     0,
	}
	e.hasPiece = true
}

// Board returns the settled cells with the active piece drawn over them, in
// row-major order.
func (e *Engine) Board() []Cell {
	return e.AppendBoard(make([]Cell, 0, e.board.width*e.board.height))
}

// AppendBoard appends the composited board to dst and returns the extended
// slice.
func (e *Engine) AppendBoard(dst []Cell) []Cell {
	start := len(dst)
	dst = e.board.appendCells(dst)
	if !e.hasPiece {
		return dst
	}

	view := dst[start:]
	p := e.active.Piece
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			cell := p.cells[r][c]
			if cell == Empty {
				continue
			}
			x, y := e.active.X+c, e.active.Y+r
			if e.board.inBounds(x, y) {
				view[y*e.board.width+x] = cell
			}
		}
	}
	return dst
}

// checkCollision reports whether the active piece overlaps a settled cell or
// leaves the grid.
func (e *Engine) checkCollision() bool {
	return e.collides(e.active)
}

func (e *Engine) collides(a ActivePiece) bool {
	p := a.Piece
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if p.cells[r][c] == Empty {
				continue
			}
			x, y := a.X+c, a.Y+r
			if !e.board.inBounds(x, y) || e.board.rows[y][x] != Empty {
				return true
			}
		}
	}
	return false
}

func (e *Engine) canMove() bool {
	return e.hasPiece && !e.gameOver
}

// MoveLeft shifts the active piece one column left. It returns false and
// leaves the piece in place if the move would collide.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

// MoveRight shifts the active piece one column right. It returns false and
// leaves the piece in place if the move would collide.
func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	if !e.canMove() {
		return false
	}

	e.active.X += dx
	if e.checkCollision() {
		e.active.X -= dx
		return false
	}
	return true
}

// Rotate turns the active piece clockwise in place. A rotation that would
// collide is undone; no offset adjustment is attempted.
func (e *Engine) Rotate() bool {
	if !e.canMove() {
		return false
	}

	previous := e.active.Piece
	e.active.Piece = previous.Rotate()
	if e.checkCollision() {
		e.active.Piece = previous
		return false
	}
	return true
}

// MoveDown advances the active piece one row. When the piece cannot fall any
// further it is locked into the board, full rows are cleared and scored, and a
// new piece is spawned; MoveDown then returns false. If the new piece does not
// fit, the game is over.
func (e *Engine) MoveDown() bool {
	if !e.canMove() {
		return false
	}

	e.active.Y++
	if !e.checkCollision() {
		return true
	}
	e.active.Y--

	kind := e.active.Piece.Kind()
	e.lock()
	lines := e.board.clearLines()
	points := Points(lines)
	e.lines += lines
	e.score += points

	e.SpawnPiece()
	if e.checkCollision() {
		e.gameOver = true
	}

	if e.onLock != nil {
		e.onLock(LockEvent{
			Kind:     kind,
			Lines:    lines,
			Points:   points,
			Score:    e.score,
			GameOver: e.gameOver,
		})
	}
	return false
}

// HardDrop lets the active piece fall until it locks.
func (e *Engine) HardDrop() {
	for e.MoveDown() {
	}
}

// GhostY returns the row the active piece would lock at if dropped now.
func (e *Engine) GhostY() (int, bool) {
	if !e.hasPiece {
		return 0, false
	}

	ghost := e.active
	for {
		ghost.Y++
		if e.collides(ghost) {
			return ghost.Y - 1, true
		}
	}
}

// lock copies the active piece's occupied cells into the board. Cells outside
// the grid are dropped.
func (e *Engine) lock() {
	p := e.active.Piece
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			cell := p.cells[r][c]
			if cell == Empty {
				continue
			}
			x, y := e.active.X+c, e.active.Y+r
			if e.board.inBounds(x, y) {
				e.board.rows[y][x] = cell
			}
		}
	}
	e.hasPiece = false
}

// String renders the composited board, one line per row.
func (e *Engine) String() string {
	var sb strings.Builder
	sb.Grow((e.board.width + 1) * e.board.height)
	for i, cell := range e.Board() {
		if i > 0 && i%e.board.width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(cell.Rune())
	}
	return sb.String()
}
