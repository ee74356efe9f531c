// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package remoteconfig defines how the client sources settings from the
// remote configuration service.
//
// [Registry] is the fixed table of settings the client knows about, each with
// a provider key and a bundled default. [Provider] is the contract of the
// remote configuration service: defaults can be pushed into it, a new
// snapshot can be fetched and activated, and typed values can be read by key.
// [NewHTTPProvider] implements [Provider] over HTTP and keeps the last
// activated snapshot in the local database.
package remoteconfig
