// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Review is a user's rating and text for a single item.
// A user may hold at most one review per item.
type Review struct {
	// ID is the unique identifier of the review (UUID string).
	ID string `json:"id"`

	// Text is the review body. Stored in the "txt" column.
	Text string `json:"txt"`

	// Rating is the integer score given to the item.
	Rating int `json:"rating"`

	// UserID is the owner of the review. Only the owner may update or
	// delete it.
	UserID string `json:"user_id"`

	// ItemID is the reviewed item.
	ItemID string `json:"item_id"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}
