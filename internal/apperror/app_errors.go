package apperror

import "errors"

var (
	ErrIllegalPlacement  = errors.New("illegal ship placement")
	ErrIllegalShot       = errors.New("illegal shot")
	ErrInvalidTransition = errors.New("operation not allowed in current game state")

	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrFleetIncomplete    = errors.New("fleet is not complete")
	ErrInvalidPlayerCount = errors.New("player count must be 2 or 3")
	ErrUnknownPlayer      = errors.New("unknown player index")
)
