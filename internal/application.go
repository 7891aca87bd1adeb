package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/eduwars-backend/internal/config"
	"github.com/rocketscienceinc/eduwars-backend/internal/engine"
	"github.com/rocketscienceinc/eduwars-backend/internal/quiz"
	"github.com/rocketscienceinc/eduwars-backend/internal/transport/console"
	"github.com/rocketscienceinc/eduwars-backend/internal/usecase"
)

// RunApp - runs the hot-seat console until the players quit, input ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := quiz.LoadCatalog(conf.QuestionBankPath)
	if err != nil {
		return fmt.Errorf("failed to load question catalog: %w", err)
	}

	pool := quiz.NewPool(catalog, quiz.NewRand(conf.Seed))
	campaignUseCase := usecase.NewCampaignUseCase(logger, engine.New(pool))
	consoleServer := console.New(logger, campaignUseCase, in, out, conf.PlayerNames)

	log.Info("Starting EDU-WARS", "questions", catalog.Len(), "seed", conf.Seed)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer stop()

		return consoleServer.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down")
		return nil
	})

	if err = g.Wait(); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}
