// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the enrollment client application runtime.
//
// It bootstraps the remote configuration, runs the background workers and
// performs the one-shot lookup requested on the command line within a single
// process lifecycle.
package client
