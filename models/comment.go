// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is a user's remark on a review.
// A user may hold at most one comment per review.
type Comment struct {
	ID       string `json:"id"`
	Text     string `json:"txt"`
	UserID   string `json:"user_id"`
	ReviewID string `json:"review_id"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
