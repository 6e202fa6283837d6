// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks review-site models before they reach storage:
// usernames and passwords on registration, ids and text on reviews and
// comments. Services call it through their validation wrappers, so handlers
// and repositories never see malformed input.
package validators

import "context"

// Validator checks obj, a models.User, models.Review or models.Comment value.
// When fields are given only those fields (FieldID, FieldText, ...) are
// checked; otherwise the whole object is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
