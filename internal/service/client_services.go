package service

import (
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/adapter"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/remoteconfig"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/state"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/validators"
)

type ClientServices struct {
	ConfigSynchronizer ConfigSynchronizer
	ConfigRefreshJob   ConfigRefreshJob
	EnrollmentService  EnrollmentService
}

func NewClientServices(registry *remoteconfig.Registry, provider remoteconfig.Provider, store *state.Store, enrollmentAdapter adapter.EnrollmentAdapter, log *logger.Logger) (*ClientServices, error) {
	synchronizer, err := NewConfigSynchronizer(registry, provider, store, enrollmentAdapter, log)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		ConfigSynchronizer: synchronizer,
		ConfigRefreshJob:   NewConfigRefreshJob(synchronizer, log),
		EnrollmentService:  NewEnrollmentService(enrollmentAdapter, validators.NewRequestValidator(), log),
	}, nil
}
