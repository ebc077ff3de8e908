// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusSuccess is the value of the "status" field on every accepted request.
const StatusSuccess = "SUCCESS"

// Envelope is the common shape of every response returned by the remote
// service. Data is only meaningful when Status equals [StatusSuccess].
type Envelope[T any] struct {
	// Status is "SUCCESS" for accepted requests and anything else otherwise.
	Status string `json:"status"`

	// Message is a human-readable explanation, mostly set on failures.
	Message string `json:"message,omitempty"`

	// Data carries the operation-specific payload.
	Data T `json:"data"`
}

// LoginData is the payload of a successful login response.
type LoginData struct {
	Token string `json:"token"`
}

// UserData describes the account after an update was applied.
type UserData struct {
	// Count is the cumulative activity count recorded for the account.
	Count int64 `json:"count"`

	// IsActive reports whether the server considers the account active.
	IsActive bool `json:"isActive"`
}

// LeaderboardData describes the group the account contributes to.
type LeaderboardData struct {
	// Count is the cumulative activity count of the whole leaderboard.
	Count int64 `json:"count"`
}

// UpdateData is the payload of a successful update response.
type UpdateData struct {
	UserData        UserData        `json:"userData"`
	LeaderboardData LeaderboardData `json:"leaderboardData"`
}
