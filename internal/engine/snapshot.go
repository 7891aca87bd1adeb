package engine

import "github.com/rocketscienceinc/eduwars-backend/internal/entity"

// PlayerView is one seat as the presentation layer may see it.
// Concealed means the board must be veiled from whoever holds the device right now.
type PlayerView struct {
	Index         int            `json:"index"`
	Player        *entity.Player `json:"player"`
	FleetComplete bool           `json:"fleet_complete"`
	Concealed     bool           `json:"concealed"`
}

// Snapshot is a deep copy of the engine state; changing it never affects the engine.
type Snapshot struct {
	State              State                `json:"state"`
	Players            []PlayerView         `json:"players"`
	ActivePlayerIndex  int                  `json:"active_player_index"`
	TargetPlayerIndex  *int                 `json:"target_player_index,omitempty"`
	PendingPlayerIndex *int                 `json:"pending_player_index,omitempty"`
	WinnerIndex        *int                 `json:"winner_index,omitempty"`
	CurrentQuestion    *entity.Question     `json:"current_question,omitempty"`
	LastShotResult     *entity.ShotResult   `json:"last_shot_result,omitempty"`
	NextShip           *entity.ShipTemplate `json:"next_ship,omitempty"`
	PoolRemaining      int                  `json:"pool_remaining"`
	Prompt             string               `json:"prompt,omitempty"`
}

func (that *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:              that.state,
		Players:            make([]PlayerView, 0, len(that.players)),
		ActivePlayerIndex:  that.active,
		TargetPlayerIndex:  optionalIndex(that.target),
		PendingPlayerIndex: optionalIndex(that.pending),
		WinnerIndex:        optionalIndex(that.winner),
		PoolRemaining:      that.pool.Len(),
		Prompt:             that.prompt,
	}

	for i, player := range that.players {
		snap.Players = append(snap.Players, PlayerView{
			Index:         i,
			Player:        player.Clone(),
			FleetComplete: player.HasCompleteFleet(),
			Concealed:     that.concealed(i),
		})
	}

	if that.question != nil {
		question := *that.question
		snap.CurrentQuestion = &question
	}

	if that.lastShot != nil {
		shot := *that.lastShot
		snap.LastShotResult = &shot
	}

	if that.state == StateSetup {
		if template, ok := that.players[that.active].NextShipTemplate(); ok {
			snap.NextShip = &template
		}
	}

	return snap
}

// Winner returns the last fleet afloat once the game is over.
func (that Snapshot) Winner() (PlayerView, bool) {
	if that.State != StateGameOver || that.WinnerIndex == nil {
		return PlayerView{}, false
	}
	return that.Players[*that.WinnerIndex], true
}

// concealed is the fog of war: while quizzing only the asker's own board is open,
// while striking and on the result screen only the target's board is open.
func (that *Engine) concealed(index int) bool {
	switch that.state {
	case StateQuestion, StateSetup:
		return index != that.active
	case StateAction, StateResult:
		return that.target == noPlayer || index != that.target
	case StatePassDevice:
		return true
	default:
		return false
	}
}

func optionalIndex(index int) *int {
	if index == noPlayer {
		return nil
	}
	return &index
}
