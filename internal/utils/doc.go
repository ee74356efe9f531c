// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the transport and
// configuration layers: the resty HTTP client wrapper, keyed payload hashing,
// request id generation and verification token claim parsing.
package utils
