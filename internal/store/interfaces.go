// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the process-lifetime state of the updater.
//
// Nothing is persisted: the request log lives in memory and is lost on
// restart.
package store

import "github.com/MKhiriev/go-count-updater/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RequestLog keeps every [models.UpdateRecord] written during the process
// lifetime, split into a successful and a failed sequence in append order.
type RequestLog interface {
	// Append adds rec to the sequence matching rec.Outcome. Records with an
	// outcome other than successful go to the failed sequence.
	Append(rec models.UpdateRecord)

	// Successful returns a copy of the successful sequence.
	Successful() []models.UpdateRecord

	// Failed returns a copy of the failed sequence.
	Failed() []models.UpdateRecord
}
