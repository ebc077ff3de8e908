// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the JSON body of the login call.
type LoginRequest struct {
	// IdentityAddress identifies the single account this client acts for.
	IdentityAddress string `json:"identityAddress"`
}

// UpdateRequest is the JSON body of the activity-count update call.
type UpdateRequest struct {
	// Count is the number of activities reported in this update.
	Count int `json:"count"`
}
