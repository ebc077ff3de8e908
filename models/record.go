// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Action names the operation an [UpdateRecord] was written for.
type Action string

const (
	ActionLogin  Action = "login"
	ActionUpdate Action = "update"
)

// Outcome tells which log sequence an [UpdateRecord] belongs to.
type Outcome string

const (
	OutcomeSuccessful Outcome = "successful"
	OutcomeFailed     Outcome = "failed"
)

// UpdateRecord is a single entry of the in-memory request log.
//
// Records are created once and never modified; Fields holds the
// operation-specific details (count sent, server totals, error message and
// so on) exactly as they were logged to the console.
type UpdateRecord struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Action    Action         `json:"action"`
	Outcome   Outcome        `json:"outcome"`
	Fields    map[string]any `json:"fields,omitempty"`
}
