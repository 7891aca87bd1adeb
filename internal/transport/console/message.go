package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

var (
	ErrUnknownCommand = errors.New("unknown command, type help for the list")
	ErrBadArguments   = errors.New("bad arguments")
	ErrNothingToFlip  = errors.New("there is no flashcard to flip")

	errQuit = errors.New("quit")
)

// Message is one parsed console line: an action followed by its arguments.
type Message struct {
	Action string
	Args   []string
}

func parseMessage(line string) (*Message, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	return &Message{
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, true
}

func parseCoordinate(args []string) (entity.Coordinate, error) {
	if len(args) < 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: expected <x> <y>", ErrBadArguments)
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: x must be a number", ErrBadArguments)
	}

	y, err := strconv.Atoi(args[1])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: y must be a number", ErrBadArguments)
	}

	return entity.Coordinate{X: x, Y: y}, nil
}

// parseOrientation reads the optional third placement argument; horizontal is the default.
func parseOrientation(args []string) (bool, error) {
	if len(args) < 3 {
		return false, nil
	}

	switch strings.ToLower(args[2]) {
	case "h", "horizontal":
		return false, nil
	case "v", "vertical":
		return true, nil
	default:
		return false, fmt.Errorf("%w: orientation must be h or v", ErrBadArguments)
	}
}
