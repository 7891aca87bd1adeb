// Package engine holds the authoritative state of one hot-seat campaign and the rules
// for moving it between lobby, fleet setup, quiz turns and the end of the game.
//
// The engine is synchronous and owns every player, grid and the question pool. Callers
// only issue operations and read snapshots. A rejected operation returns a sentinel error
// from apperror and leaves the state exactly as it was.
package engine

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/eduwars-backend/internal/apperror"
	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
	"github.com/rocketscienceinc/eduwars-backend/internal/quiz"
)

const (
	MinPlayers = 2
	MaxPlayers = 3

	noPlayer = -1
)

type Engine struct {
	pool *quiz.Pool

	state   State
	players []*entity.Player

	active  int
	target  int
	pending int
	winner  int

	question *entity.Question
	lastShot *entity.ShotResult
	prompt   string
}

func New(pool *quiz.Pool) *Engine {
	that := &Engine{pool: pool}
	that.reset()

	return that
}

func (that *Engine) reset() {
	that.state = StateLobby
	that.players = nil
	that.active = 0
	that.target = noPlayer
	that.pending = noPlayer
	that.winner = noPlayer
	that.question = nil
	that.lastShot = nil
	that.prompt = ""
	that.pool.Clear()
}

func (that *Engine) State() State {
	return that.state
}

// InitGame seats count players. Missing or blank names fall back to "Player N".
func (that *Engine) InitGame(count int, names []string) error {
	if err := that.allow(OpInitGame); err != nil {
		return err
	}

	if count < MinPlayers || count > MaxPlayers {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayerCount, count)
	}

	players := make([]*entity.Player, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(names) && strings.TrimSpace(names[i]) != "" {
			name = strings.TrimSpace(names[i])
		}
		players = append(players, entity.NewPlayer(fmt.Sprintf("p%d", i), name))
	}

	that.players = players
	that.active = 0
	that.state = StateSetup

	return nil
}

// setupPlayer validates that playerIndex is the one currently placing ships.
func (that *Engine) setupPlayer(op Operation, playerIndex int) (*entity.Player, error) {
	if err := that.allow(op); err != nil {
		return nil, err
	}

	if playerIndex < 0 || playerIndex >= len(that.players) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, playerIndex)
	}

	if playerIndex != that.active {
		return nil, fmt.Errorf("%w: player %d is placing ships", apperror.ErrNotYourTurn, that.active)
	}

	return that.players[playerIndex], nil
}

// PlaceShip places the player's next catalog ship. The returned ship is a copy.
func (that *Engine) PlaceShip(playerIndex int, origin entity.Coordinate, vertical bool) (entity.Ship, error) {
	player, err := that.setupPlayer(OpPlaceShip, playerIndex)
	if err != nil {
		return entity.Ship{}, err
	}

	template, ok := player.NextShipTemplate()
	if !ok {
		return entity.Ship{}, fmt.Errorf("%w: fleet already complete", apperror.ErrIllegalPlacement)
	}

	ship, err := player.PlaceShip(template, origin, vertical)
	if err != nil {
		return entity.Ship{}, err
	}

	cp := *ship
	cp.Coordinates = append([]entity.Coordinate(nil), ship.Coordinates...)

	return cp, nil
}

// CanPlace previews whether the player's next ship fits at origin. It never mutates.
func (that *Engine) CanPlace(playerIndex int, origin entity.Coordinate, vertical bool) bool {
	player, err := that.setupPlayer(OpPlaceShip, playerIndex)
	if err != nil {
		return false
	}

	template, ok := player.NextShipTemplate()
	if !ok {
		return false
	}

	return player.CanPlace(origin, template.Size, vertical)
}

// RemoveShipAt lifts the whole ship covering c. Removing from open water is a no-op.
func (that *Engine) RemoveShipAt(playerIndex int, c entity.Coordinate) (bool, error) {
	player, err := that.setupPlayer(OpRemoveShip, playerIndex)
	if err != nil {
		return false, err
	}

	return player.RemoveShipAt(c), nil
}

func (that *Engine) UndoLastPlacement(playerIndex int) (bool, error) {
	player, err := that.setupPlayer(OpUndoPlacement, playerIndex)
	if err != nil {
		return false, err
	}

	return player.UndoLast(), nil
}

func (that *Engine) ResetPlacement(playerIndex int) error {
	player, err := that.setupPlayer(OpResetPlacement, playerIndex)
	if err != nil {
		return err
	}

	player.ResetAll()

	return nil
}

// ConfirmFleet locks in the active player's fleet and hands the device on.
// The last player's confirmation also shuffles the question pool for the battle.
func (that *Engine) ConfirmFleet(playerIndex int) error {
	player, err := that.setupPlayer(OpConfirmFleet, playerIndex)
	if err != nil {
		return err
	}

	if !player.HasCompleteFleet() {
		return fmt.Errorf("%w: %d of %d ships placed", apperror.ErrFleetIncomplete, len(player.Ships), len(entity.DefaultShips))
	}

	next := (that.active + 1) % len(that.players)
	that.pending = next

	if that.active < len(that.players)-1 {
		that.prompt = fmt.Sprintf("Pass device to %s", that.players[next].Name)
	} else {
		that.pool.Refill()
		that.prompt = fmt.Sprintf("Battle start! %s, it's your turn.", that.players[0].Name)
	}

	that.state = StatePassDevice

	return nil
}

// PassDeviceComplete is the hot-seat checkpoint: the next player confirms they hold the device.
func (that *Engine) PassDeviceComplete() error {
	if err := that.allow(OpPassDeviceComplete); err != nil {
		return err
	}

	next := (that.active + 1) % len(that.players)
	that.pending = noPlayer
	that.prompt = ""

	if that.anyFleetIncomplete() {
		that.active = next
		that.state = StateSetup

		return nil
	}

	that.startTurn(next)

	return nil
}

// RestartCampaign drops every player and returns to the lobby.
func (that *Engine) RestartCampaign() error {
	if err := that.allow(OpRestartCampaign); err != nil {
		return err
	}

	that.reset()

	return nil
}

func (that *Engine) anyFleetIncomplete() bool {
	for _, player := range that.players {
		if !player.HasCompleteFleet() {
			return true
		}
	}
	return false
}
