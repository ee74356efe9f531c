// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.RemoteConfig.Endpoint) ||
		!isAbsoluteURL(cfg.RemoteConfig.DefaultAPIBaseURL) ||
		cfg.RemoteConfig.FetchTimeout <= 0 ||
		cfg.RemoteConfig.MinFetchInterval < 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
