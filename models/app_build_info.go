// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the
// client binary by linker flags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String formats the metadata as "version (commit, date)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.buildVersion, a.buildCommit, a.buildDate)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
