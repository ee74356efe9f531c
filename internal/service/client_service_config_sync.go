// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/adapter"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/remoteconfig"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/state"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

type configSynchronizer struct {
	registry *remoteconfig.Registry
	provider remoteconfig.Provider
	store    *state.Store
	client   BaseURLSetter
	logger   *logger.Logger

	providerKey string
	defaultURL  string
	now         func() time.Time
}

// NewConfigSynchronizer creates a [ConfigSynchronizer] for the API base URL
// entry of registry.
//
// Returns [ErrMissingRegistryEntry] when registry has no API base URL entry,
// and an error wrapping [adapter.ErrInvalidBaseURL] when its default is not
// a usable base URL.
func NewConfigSynchronizer(registry *remoteconfig.Registry, provider remoteconfig.Provider, store *state.Store, client BaseURLSetter, log *logger.Logger) (ConfigSynchronizer, error) {
	if registry == nil || provider == nil || store == nil || client == nil {
		return nil, ErrNilDependency
	}

	entry, ok := registry.Lookup(remoteconfig.NameAPIBaseURL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingRegistryEntry, remoteconfig.NameAPIBaseURL)
	}
	defaultURL, err := adapter.NormalizeBaseURL(entry.DefaultValue)
	if err != nil {
		return nil, fmt.Errorf("registry default: %w", err)
	}

	return &configSynchronizer{
		registry:    registry,
		provider:    provider,
		store:       store,
		client:      client,
		logger:      log.Component("config-sync"),
		providerKey: entry.ProviderKey,
		defaultURL:  defaultURL,
		now:         time.Now,
	}, nil
}

func (s *configSynchronizer) Bootstrap(ctx context.Context) models.ConfigState {
	url, loaded := s.resolve(ctx)

	st := models.ConfigState{
		APIBaseURL:    url,
		IsLoaded:      loaded,
		LastFetchedAt: s.now(),
	}
	s.store.Write(st)
	s.apply(st.APIBaseURL)

	s.logger.Info().
		Str("api_base_url", st.APIBaseURL).
		Bool("is_loaded", st.IsLoaded).
		Msg("configuration bootstrapped")

	return st
}

// resolve runs the provider cycle and returns the base URL to use and
// whether it came from the remote snapshot.
func (s *configSynchronizer) resolve(ctx context.Context) (string, bool) {
	if err := s.provider.SetDefaults(s.registry.Defaults()); err != nil {
		s.logger.Warn().Err(err).Msg("provider rejected defaults, using registry default")
		return s.defaultURL, false
	}

	activated, err := s.provider.FetchAndActivate(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("remote configuration fetch failed, using registry default")
		return s.defaultURL, false
	}
	s.logger.Debug().Bool("activated", activated).Msg("remote configuration fetched")

	value, err := s.provider.GetValue(s.providerKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.providerKey).Msg("provider value unavailable, using registry default")
		return s.defaultURL, false
	}

	url, err := adapter.NormalizeBaseURL(value.String)
	if err != nil {
		s.logger.Warn().Err(err).Str("source", value.Source.String()).Msg("provider value unusable, using registry default")
		return s.defaultURL, false
	}

	return url, value.Source == remoteconfig.SourceRemote
}

func (s *configSynchronizer) Resync() {
	s.apply(s.store.Read().APIBaseURL)
}

func (s *configSynchronizer) ResetToDefaults() {
	s.store.Reset()
	s.Resync()
	s.logger.Info().Msg("configuration reset to defaults")
}

func (s *configSynchronizer) apply(url string) {
	if err := s.client.SetBaseURL(url); err != nil {
		// The store only ever holds normalized URLs, so this means the
		// client was swapped for one with stricter rules.
		s.logger.Error().Err(err).Str("api_base_url", url).Msg("http client rejected base url")
	}
}
