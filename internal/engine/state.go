package engine

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/eduwars-backend/internal/apperror"
)

type State string

const (
	StateLobby      State = "LOBBY"
	StateSetup      State = "SETUP"
	StatePassDevice State = "PASS_DEVICE"
	StateQuestion   State = "QUESTION"
	StateAction     State = "ACTION"
	StateResult     State = "RESULT"
	StateGameOver   State = "GAMEOVER"
)

// Operation names an inbound engine call for the transition table.
type Operation string

const (
	OpInitGame            Operation = "init_game"
	OpPlaceShip           Operation = "place_ship"
	OpRemoveShip          Operation = "remove_ship"
	OpUndoPlacement       Operation = "undo_placement"
	OpResetPlacement      Operation = "reset_placement"
	OpConfirmFleet        Operation = "confirm_fleet"
	OpPassDeviceComplete  Operation = "pass_device_complete"
	OpAnswerCorrect       Operation = "answer_correct"
	OpAnswerWrong         Operation = "answer_wrong"
	OpShoot               Operation = "shoot"
	OpContinueAfterResult Operation = "continue_after_result"
	OpRestartCampaign     Operation = "restart_campaign"
)

// Choice is what the acting player picks on the result screen.
type Choice string

const (
	// ChoiceReload keeps the turn after a hit.
	ChoiceReload Choice = "reload"
	// ChoiceNextAdmiral hands the turn on after a miss or a wrong answer.
	ChoiceNextAdmiral Choice = "next_admiral"
)

var transitions = map[Operation][]State{
	OpInitGame:            {StateLobby},
	OpPlaceShip:           {StateSetup},
	OpRemoveShip:          {StateSetup},
	OpUndoPlacement:       {StateSetup},
	OpResetPlacement:      {StateSetup},
	OpConfirmFleet:        {StateSetup},
	OpPassDeviceComplete:  {StatePassDevice},
	OpAnswerCorrect:       {StateQuestion},
	OpAnswerWrong:         {StateQuestion},
	OpShoot:               {StateAction},
	OpContinueAfterResult: {StateResult},
	OpRestartCampaign:     {StateGameOver},
}

// Allowed reports whether op may run while the engine is in state.
func Allowed(op Operation, state State) bool {
	return slices.Contains(transitions[op], state)
}

func (that *Engine) allow(op Operation) error {
	if !Allowed(op, that.state) {
		return fmt.Errorf("%w: %s in %s", apperror.ErrInvalidTransition, op, that.state)
	}
	return nil
}
