package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/eduwars-backend/internal/engine"
	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

type uCampaign interface {
	CampaignID() string
	Snapshot(ctx context.Context) engine.Snapshot

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

type Server struct {
	logger    *slog.Logger
	uCampaign uCampaign

	in           io.Reader
	out          io.Writer
	defaultNames []string

	// flipped reveals the German side of the current flashcard until the next command.
	flipped bool

	handlers map[string]func(ctx context.Context, message *Message) error
}

func New(logger *slog.Logger, uCampaign uCampaign, in io.Reader, out io.Writer, defaultNames []string) *Server {
	server := &Server{
		logger:       logger.With("component", "console"),
		uCampaign:    uCampaign,
		in:           in,
		out:          out,
		defaultNames: defaultNames,

		handlers: make(map[string]func(context.Context, *Message) error),
	}

	server.handlers["start"] = server.handleStart
	server.handlers["place"] = server.handlePlace
	server.handlers["remove"] = server.handleRemove
	server.handlers["undo"] = server.handleUndo
	server.handlers["reset"] = server.handleReset
	server.handlers["confirm"] = server.handleConfirm
	server.handlers["pass"] = server.handlePass
	server.handlers["flip"] = server.handleFlip
	server.handlers["correct"] = server.handleCorrect
	server.handlers["wrong"] = server.handleWrong
	server.handlers["shoot"] = server.handleShoot
	server.handlers["reload"] = server.handleReload
	server.handlers["next"] = server.handleNext
	server.handlers["restart"] = server.handleRestart
	server.handlers["show"] = server.handleShow
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Run reads commands line by line until quit, end of input or ctx is canceled.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	if err := that.render(that.uCampaign.Snapshot(ctx)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.endOfInput(scanErr)
			}

			err := that.handleLine(ctx, line)
			if errors.Is(err, errQuit) {
				log.Info("console closed by player", "campaign", that.uCampaign.CampaignID())
				return nil
			}
			if err != nil {
				log.Debug("command failed", "line", line, "error", err)
				if _, werr := fmt.Fprintf(that.out, "error: %v\n", err); werr != nil {
					return fmt.Errorf("failed to write error: %w", werr)
				}
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line string) error {
	message, ok := parseMessage(line)
	if !ok {
		return nil
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, message.Action)
	}

	if message.Action != "flip" && message.Action != "show" && message.Action != "help" {
		that.flipped = false
	}

	return handler(ctx, message)
}

func (that *Server) endOfInput(scanErr <-chan error) error {
	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	that.logger.Info("console input closed")

	return nil
}
