// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the updater application runtime.
//
// It authenticates once at startup and then hands control to the
// background workers, which pace activity updates until the process is
// asked to stop.
package client
