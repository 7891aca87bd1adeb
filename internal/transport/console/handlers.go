package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/eduwars-backend/internal/engine"
)

const helpText = `commands:
  start <2|3> [names...]   open a campaign
  place <x> <y> [h|v]      place the next ship of your fleet
  remove <x> <y>           remove the ship covering a cell
  undo                     remove the last placed ship
  reset                    clear your fleet
  confirm                  lock in your fleet
  pass                     the device has been handed over
  flip                     show the German side of the flashcard
  correct | wrong          judge your answer
  shoot <x> <y>            fire at the target's grid
  reload | next            continue after the result
  restart                  new campaign after game over
  show | help | quit
`

func (that *Server) handleStart(ctx context.Context, msg *Message) error {
	if len(msg.Args) == 0 {
		return fmt.Errorf("%w: expected start <2|3> [names...]", ErrBadArguments)
	}

	count, err := strconv.Atoi(msg.Args[0])
	if err != nil {
		return fmt.Errorf("%w: player count must be a number", ErrBadArguments)
	}

	names := msg.Args[1:]
	if len(names) == 0 {
		names = that.defaultNames
	}

	return that.respond(that.uCampaign.Start(ctx, count, names))
}

func (that *Server) handlePlace(ctx context.Context, msg *Message) error {
	origin, err := parseCoordinate(msg.Args)
	if err != nil {
		return err
	}

	vertical, err := parseOrientation(msg.Args)
	if err != nil {
		return err
	}

	active := that.uCampaign.Snapshot(ctx).ActivePlayerIndex

	return that.respond(that.uCampaign.PlaceShip(ctx, active, origin, vertical))
}

func (that *Server) handleRemove(ctx context.Context, msg *Message) error {
	c, err := parseCoordinate(msg.Args)
	if err != nil {
		return err
	}

	active := that.uCampaign.Snapshot(ctx).ActivePlayerIndex

	return that.respond(that.uCampaign.RemoveShipAt(ctx, active, c))
}

func (that *Server) handleUndo(ctx context.Context, _ *Message) error {
	active := that.uCampaign.Snapshot(ctx).ActivePlayerIndex

	return that.respond(that.uCampaign.UndoLastPlacement(ctx, active))
}

func (that *Server) handleReset(ctx context.Context, _ *Message) error {
	active := that.uCampaign.Snapshot(ctx).ActivePlayerIndex

	return that.respond(that.uCampaign.ResetPlacement(ctx, active))
}

func (that *Server) handleConfirm(ctx context.Context, _ *Message) error {
	active := that.uCampaign.Snapshot(ctx).ActivePlayerIndex

	return that.respond(that.uCampaign.ConfirmFleet(ctx, active))
}

func (that *Server) handlePass(ctx context.Context, _ *Message) error {
	return that.respond(that.uCampaign.PassDeviceComplete(ctx))
}

func (that *Server) handleFlip(ctx context.Context, _ *Message) error {
	snap := that.uCampaign.Snapshot(ctx)
	if snap.State != engine.StateQuestion || snap.CurrentQuestion == nil {
		return ErrNothingToFlip
	}

	that.flipped = true

	return that.render(snap)
}

func (that *Server) handleCorrect(ctx context.Context, _ *Message) error {
	return that.respond(that.uCampaign.AnswerCorrect(ctx))
}

func (that *Server) handleWrong(ctx context.Context, _ *Message) error {
	return that.respond(that.uCampaign.AnswerWrong(ctx))
}

func (that *Server) handleShoot(ctx context.Context, msg *Message) error {
	c, err := parseCoordinate(msg.Args)
	if err != nil {
		return err
	}

	target := -1
	if snap := that.uCampaign.Snapshot(ctx); snap.TargetPlayerIndex != nil {
		target = *snap.TargetPlayerIndex
	}

	return that.respond(that.uCampaign.Shoot(ctx, target, c))
}

func (that *Server) handleReload(ctx context.Context, _ *Message) error {
	return that.respond(that.uCampaign.ContinueAfterResult(ctx, engine.ChoiceReload))
}

func (that *Server) handleNext(ctx context.Context, _ *Message) error {
	return that.respond(that.uCampaign.ContinueAfterResult(ctx, engine.ChoiceNextAdmiral))
}

func (that *Server) handleRestart(ctx context.Context, _ *Message) error {
	return that.respond(that.uCampaign.Restart(ctx))
}

func (that *Server) handleShow(ctx context.Context, _ *Message) error {
	return that.render(that.uCampaign.Snapshot(ctx))
}

func (that *Server) handleHelp(_ context.Context, _ *Message) error {
	if _, err := fmt.Fprint(that.out, helpText); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ *Message) error {
	return errQuit
}

// respond prints the new state, or hands the rejection back to the loop without printing a board.
func (that *Server) respond(snap engine.Snapshot, err error) error {
	if err != nil {
		return err
	}

	return that.render(snap)
}
