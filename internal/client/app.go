package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/app"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/service"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/workers"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

var ErrNilServices = errors.New("nil client services")

type App struct {
	services       *service.ClientServices
	workers        *workers.Workers
	registrationID string
	out            io.Writer
	logger         *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNilServices
	}

	return &App{
		services:       services,
		workers:        workers.NewClientWorkers(services, cfg.Workers),
		registrationID: strings.TrimSpace(cfg.App.RegistrationID),
		out:            out,
		logger:         log.Component("app"),
	}, nil
}

// Run bootstraps the configuration and starts the workers. With a
// registration id configured it looks it up, prints the outcome and returns;
// otherwise it waits for ctx to be cancelled. Workers are stopped before Run
// returns.
func (a *App) Run(ctx context.Context) error {
	st := a.services.ConfigSynchronizer.Bootstrap(ctx)
	a.printConfig(st)

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if a.registrationID != "" {
		return a.checkEnrollment(ctx)
	}

	a.logger.Info().Msg("client running, waiting for shutdown")
	<-ctx.Done()
	a.logger.Info().Msg("client shutting down")
	return nil
}

func (a *App) checkEnrollment(ctx context.Context) error {
	status, err := a.services.EnrollmentService.CheckEnrollment(ctx, a.registrationID)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %s\n", a.registrationID, app.ErrorMessage(err))
		return fmt.Errorf("check enrollment %s: %w", a.registrationID, err)
	}

	if !status.Exists {
		fmt.Fprintf(a.out, "%s: %s\n", a.registrationID, app.MsgNotEnrolled)
		return nil
	}

	fmt.Fprintf(a.out, "%s: %s", a.registrationID, app.MsgEnrolled)
	if status.FullName != "" {
		fmt.Fprintf(a.out, " (%s)", status.FullName)
	}
	if status.Status != "" {
		fmt.Fprintf(a.out, " status=%s", status.Status)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) printConfig(st models.ConfigState) {
	source := "default"
	if st.IsLoaded {
		source = "remote"
	}
	fmt.Fprintf(a.out, "API base URL: %s (%s)\n", st.APIBaseURL, source)
}
