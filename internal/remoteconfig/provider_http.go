package remoteconfig

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/store"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/utils"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

type httpProvider struct {
	client           *utils.HTTPClient
	endpoint         string
	minFetchInterval time.Duration
	repo             store.SnapshotRepository
	logger           *logger.Logger

	mu        sync.RWMutex
	defaults  map[string]string
	active    *models.ConfigSnapshot
	lastFetch time.Time
}

// NewHTTPProvider constructs a [Provider] that fetches its snapshot document
// from cfg.Endpoint.
//
// The document is a JSON object of the form {"entries": {"key": "value"}}.
// The last activated snapshot is persisted through repo and restored here,
// so that a throttled start still serves the previously fetched values.
// Failing to restore is logged and otherwise ignored.
func NewHTTPProvider(ctx context.Context, cfg config.ClientRemoteConfig, repo store.SnapshotRepository, log *logger.Logger) (Provider, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.FetchTimeout).
		SetHeader("Accept", "application/json")

	p := &httpProvider{
		client:           client,
		endpoint:         endpoint,
		minFetchInterval: cfg.MinFetchInterval,
		repo:             repo,
		logger:           log.Component("remote-config"),
		defaults:         map[string]string{},
	}
	p.restore(ctx)

	return p, nil
}

func (p *httpProvider) restore(ctx context.Context) {
	if p.repo == nil {
		return
	}

	snapshot, err := p.repo.LoadSnapshot(ctx)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return
	}
	if err != nil {
		p.logger.Warn().Err(err).Msg("could not restore persisted remote config snapshot")
		return
	}

	p.active = &snapshot
	p.lastFetch = snapshot.FetchedAt
	p.logger.Debug().
		Str("fingerprint", snapshot.Fingerprint).
		Time("fetched_at", snapshot.FetchedAt).
		Msg("restored persisted remote config snapshot")
}

// SetDefaults implements [Provider].
func (p *httpProvider) SetDefaults(defaults map[string]string) error {
	cloned := maps.Clone(defaults)
	if cloned == nil {
		cloned = map[string]string{}
	}

	p.mu.Lock()
	p.defaults = cloned
	p.mu.Unlock()

	return nil
}

// FetchAndActivate implements [Provider]. When the last successful fetch is
// younger than the configured minimum interval no request is made and false
// is returned.
func (p *httpProvider) FetchAndActivate(ctx context.Context) (bool, error) {
	now := time.Now()

	p.mu.RLock()
	lastFetch := p.lastFetch
	p.mu.RUnlock()

	if p.minFetchInterval > 0 && !lastFetch.IsZero() && now.Sub(lastFetch) < p.minFetchInterval {
		p.logger.Debug().
			Time("last_fetch", lastFetch).
			Dur("min_fetch_interval", p.minFetchInterval).
			Msg("remote config fetch throttled")
		return false, nil
	}

	resp, err := p.client.R().
		SetContext(ctx).
		Get(p.endpoint)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("%w: http %d: %s", ErrFetchFailed, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	var snapshot models.ConfigSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if snapshot.Entries == nil {
		return false, fmt.Errorf("%w: no entries", ErrMalformedSnapshot)
	}

	snapshot.Fingerprint = Fingerprint(snapshot.Entries)
	snapshot.FetchedAt = now

	p.mu.Lock()
	activated := p.active == nil || p.active.Fingerprint != snapshot.Fingerprint
	if activated {
		p.active = &snapshot
	} else {
		p.active.FetchedAt = now
	}
	p.lastFetch = now
	p.mu.Unlock()

	p.persist(ctx, snapshot)

	p.logger.Info().
		Bool("activated", activated).
		Str("fingerprint", snapshot.Fingerprint).
		Int("entries", len(snapshot.Entries)).
		Msg("remote config fetched")

	return activated, nil
}

func (p *httpProvider) persist(ctx context.Context, snapshot models.ConfigSnapshot) {
	if p.repo == nil {
		return
	}
	if err := p.repo.SaveSnapshot(ctx, snapshot); err != nil {
		p.logger.Warn().Err(err).Msg("could not persist remote config snapshot")
	}
}

// GetValue implements [Provider].
func (p *httpProvider) GetValue(key string) (Value, error) {
	if key == "" {
		return Value{}, ErrUnknownKey
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.active != nil {
		if v, ok := p.active.Value(key); ok {
			return Value{String: v, Source: SourceRemote}, nil
		}
	}
	if v, ok := p.defaults[key]; ok {
		return Value{String: v, Source: SourceDefault}, nil
	}

	return Value{Source: SourceStatic}, nil
}
