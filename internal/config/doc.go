// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the enrollment client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. A dotenv file (ENV_FILE, ".env" by default), exported into the process
//     environment without overriding variables that are already set
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetClientConfig].
package config
