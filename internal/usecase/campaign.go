package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/eduwars-backend/internal/engine"
	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

// CampaignUseCase is everything a presentation layer may ask of a running campaign.
// Every call returns the snapshot to render next; on error the snapshot is unchanged.
type CampaignUseCase interface {
	CampaignID() string
	Snapshot(ctx context.Context) engine.Snapshot
	CanPlace(ctx context.Context, playerIndex int, origin entity.Coordinate, vertical bool) bool

	Start(ctx context.Context, count int, names []string) (engine.Snapshot, error)
	Restart(ctx context.Context) (engine.Snapshot, error)

	PlaceShip(ctx context.Context, playerIndex int, origin entity.Coordinate, vertical bool) (engine.Snapshot, error)
	RemoveShipAt(ctx context.Context, playerIndex int, c entity.Coordinate) (engine.Snapshot, error)
	UndoLastPlacement(ctx context.Context, playerIndex int) (engine.Snapshot, error)
	ResetPlacement(ctx context.Context, playerIndex int) (engine.Snapshot, error)
	ConfirmFleet(ctx context.Context, playerIndex int) (engine.Snapshot, error)
	PassDeviceComplete(ctx context.Context) (engine.Snapshot, error)

	AnswerCorrect(ctx context.Context) (engine.Snapshot, error)
	AnswerWrong(ctx context.Context) (engine.Snapshot, error)
	Shoot(ctx context.Context, targetIndex int, c entity.Coordinate) (engine.Snapshot, error)
	ContinueAfterResult(ctx context.Context, choice engine.Choice) (engine.Snapshot, error)
}

type gameEngine interface {
	InitGame(count int, names []string) error
	RestartCampaign() error

	PlaceShip(playerIndex int, origin entity.Coordinate, vertical bool) (entity.Ship, error)
	CanPlace(playerIndex int, origin entity.Coordinate, vertical bool) bool
	RemoveShipAt(playerIndex int, c entity.Coordinate) (bool, error)
	UndoLastPlacement(playerIndex int) (bool, error)
	ResetPlacement(playerIndex int) error
	ConfirmFleet(playerIndex int) error
	PassDeviceComplete() error

	AnswerCorrect() error
	AnswerWrong() error
	Shoot(targetIndex int, c entity.Coordinate) (entity.ShotResult, error)
	ContinueAfterResult(choice engine.Choice) error

	Snapshot() engine.Snapshot
}

type campaignUseCase struct {
	logger *slog.Logger
	engine gameEngine

	campaignID string
}

func NewCampaignUseCase(logger *slog.Logger, gameEngine gameEngine) CampaignUseCase {
	return &campaignUseCase{
		logger:     logger.With("component", "campaign"),
		engine:     gameEngine,
		campaignID: uuid.NewString(),
	}
}

func (that *campaignUseCase) CampaignID() string {
	return that.campaignID
}

func (that *campaignUseCase) Snapshot(_ context.Context) engine.Snapshot {
	return that.engine.Snapshot()
}

func (that *campaignUseCase) CanPlace(_ context.Context, playerIndex int, origin entity.Coordinate, vertical bool) bool {
	return that.engine.CanPlace(playerIndex, origin, vertical)
}

func (that *campaignUseCase) Start(ctx context.Context, count int, names []string) (engine.Snapshot, error) {
	if err := that.engine.InitGame(count, names); err != nil {
		return that.rejected(ctx, "Start", err, "failed to start campaign")
	}

	that.campaignID = uuid.NewString()
	that.log("Start").InfoContext(ctx, "campaign started", "players", count)

	return that.engine.Snapshot(), nil
}

func (that *campaignUseCase) Restart(ctx context.Context) (engine.Snapshot, error) {
	previous := that.campaignID

	if err := that.engine.RestartCampaign(); err != nil {
		return that.rejected(ctx, "Restart", err, "failed to restart campaign")
	}

	that.campaignID = uuid.NewString()
	that.log("Restart").InfoContext(ctx, "campaign restarted", "previous", previous)

	return that.engine.Snapshot(), nil
}

func (that *campaignUseCase) PlaceShip(ctx context.Context, playerIndex int, origin entity.Coordinate, vertical bool) (engine.Snapshot, error) {
	ship, err := that.engine.PlaceShip(playerIndex, origin, vertical)
	if err != nil {
		return that.rejected(ctx, "PlaceShip", err, "failed to place ship")
	}

	that.log("PlaceShip").DebugContext(ctx, "ship placed", "player", playerIndex, "ship", ship.ID, "x", origin.X, "y", origin.Y, "vertical", vertical)

	return that.engine.Snapshot(), nil
}

func (that *campaignUseCase) RemoveShipAt(ctx context.Context, playerIndex int, c entity.Coordinate) (engine.Snapshot, error) {
	removed, err := that.engine.RemoveShipAt(playerIndex, c)
	if err != nil {
		return that.rejected(ctx, "RemoveShipAt", err, "failed to remove ship")
	}

	that.log("RemoveShipAt").DebugContext(ctx, "remove ship", "player", playerIndex, "x", c.X, "y", c.Y, "removed", removed)

	return that.engine.Snapshot(), nil
}

func (that *campaignUseCase) UndoLastPlacement(ctx context.Context, playerIndex int) (engine.Snapshot, error) {
	undone, err := that.engine.UndoLastPlacement(playerIndex)
	if err != nil {
		return that.rejected(ctx, "UndoLastPlacement", err, "failed to undo placement")
	}

	that.log("UndoLastPlacement").DebugContext(ctx, "undo placement", "player", playerIndex, "undone", undone)

	return that.engine.Snapshot(), nil
}

func (that *campaignUseCase) ResetPlacement(ctx context.Context, playerIndex int) (engine.Snapshot, error) {
	if err := that.engine.ResetPlacement(playerIndex); err != nil {
		return that.rejected(ctx, "ResetPlacement", err, "failed to reset placement")
	}

	that.log("ResetPlacement").DebugContext(ctx, "fleet cleared", "player", playerIndex)

	return that.engine.Snapshot(), nil
}

func (that *campaignUseCase) ConfirmFleet(ctx context.Context, playerIndex int) (engine.Snapshot, error) {
	if err := that.engine.ConfirmFleet(playerIndex); err != nil {
		return that.rejected(ctx, "ConfirmFleet", err, "failed to confirm fleet")
	}

	snap := that.engine.Snapshot()
	that.log("ConfirmFleet").InfoContext(ctx, "fleet confirmed", "player", playerIndex, "pool", snap.PoolRemaining)

	return snap, nil
}

func (that *campaignUseCase) PassDeviceComplete(ctx context.Context) (engine.Snapshot, error) {
	if err := that.engine.PassDeviceComplete(); err != nil {
		return that.rejected(ctx, "PassDeviceComplete", err, "failed to complete device pass")
	}

	snap := that.engine.Snapshot()
	that.log("PassDeviceComplete").InfoContext(ctx, "device passed", "state", snap.State, "active", snap.ActivePlayerIndex)

	return that.finished(ctx, snap), nil
}

func (that *campaignUseCase) AnswerCorrect(ctx context.Context) (engine.Snapshot, error) {
	if err := that.engine.AnswerCorrect(); err != nil {
		return that.rejected(ctx, "AnswerCorrect", err, "failed to accept answer")
	}

	snap := that.engine.Snapshot()
	that.log("AnswerCorrect").InfoContext(ctx, "strike authorized", "active", snap.ActivePlayerIndex, "target", snap.TargetPlayerIndex)

	return snap, nil
}

func (that *campaignUseCase) AnswerWrong(ctx context.Context) (engine.Snapshot, error) {
	if err := that.engine.AnswerWrong(); err != nil {
		return that.rejected(ctx, "AnswerWrong", err, "failed to reject answer")
	}

	snap := that.engine.Snapshot()
	that.log("AnswerWrong").InfoContext(ctx, "strike denied", "active", snap.ActivePlayerIndex)

	return snap, nil
}

func (that *campaignUseCase) Shoot(ctx context.Context, targetIndex int, c entity.Coordinate) (engine.Snapshot, error) {
	result, err := that.engine.Shoot(targetIndex, c)
	if err != nil {
		return that.rejected(ctx, "Shoot", err, "failed to shoot")
	}

	snap := that.engine.Snapshot()
	that.log("Shoot").InfoContext(ctx, "shot fired",
		"target", targetIndex, "x", c.X, "y", c.Y, "hit", result.Hit, "sunk", result.SunkenShip)

	return that.finished(ctx, snap), nil
}

func (that *campaignUseCase) ContinueAfterResult(ctx context.Context, choice engine.Choice) (engine.Snapshot, error) {
	if err := that.engine.ContinueAfterResult(choice); err != nil {
		return that.rejected(ctx, "ContinueAfterResult", err, "failed to continue")
	}

	snap := that.engine.Snapshot()
	that.log("ContinueAfterResult").InfoContext(ctx, "turn started", "choice", choice, "active", snap.ActivePlayerIndex)

	return that.finished(ctx, snap), nil
}

func (that *campaignUseCase) log(method string) *slog.Logger {
	return that.logger.With("method", method, "campaign", that.campaignID)
}

// rejected logs a refused operation and hands back the untouched state.
func (that *campaignUseCase) rejected(ctx context.Context, method string, err error, msg string) (engine.Snapshot, error) {
	that.log(method).WarnContext(ctx, "operation rejected", "error", err)

	return that.engine.Snapshot(), fmt.Errorf("%s: %w", msg, err)
}

func (that *campaignUseCase) finished(ctx context.Context, snap engine.Snapshot) engine.Snapshot {
	if winner, ok := snap.Winner(); ok {
		that.logger.InfoContext(ctx, "campaign finished", "campaign", that.campaignID, "winner", winner.Player.Name)
	}
	return snap
}
