// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks outbound messages, media uploads and catalog
// inputs before they reach the backend or the database.
//
// Services hold a [Validator] and call it first, so rejected input never
// costs a request. The optional field names restrict a check to part of the
// value, e.g. only "to" while the composer is still being filled in.
package validators

import "context"

// Validator validates a value, optionally limited to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
