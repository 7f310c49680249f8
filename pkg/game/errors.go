package game

import "errors"

var (
	// ErrEmptyBody is returned when the head is queried or moved on a body with no segments.
	ErrEmptyBody = errors.New("snake body is empty")

	// ErrBoardTooSmall is returned when the starting body does not fit on the board.
	ErrBoardTooSmall = errors.New("board too small for initial snake")

	ErrInvalidDirection = errors.New("invalid direction")
)
