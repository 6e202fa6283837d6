// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the review-site REST API.
//
// [ReviewSiteClient] covers every public and authenticated route. HTTP error
// statuses are mapped by mapHTTPError to the sentinel values in errors.go so
// callers can branch with [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/review-site/models"
)

// ReviewSiteClient talks to a review-site server. Login stores the issued
// token, which is then sent with every authenticated call.
type ReviewSiteClient interface {
	// SetToken replaces the bearer token used for authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a login.
	Token() string

	Register(ctx context.Context, username, password string) (models.Identity, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, username, password string) (string, error)

	Me(ctx context.Context) (models.Identity, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string) (models.Item, error)

	ListItemReviews(ctx context.Context, itemID string) ([]models.Review, error)
	GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error)
	CreateReview(ctx context.Context, itemID, text string, rating int) (models.Review, error)
	MyReviews(ctx context.Context) ([]models.Review, error)
	// UpdateReview and DeleteReview address the review through its owner;
	// the server answers 401 unless userID is the logged-in user.
	UpdateReview(ctx context.Context, userID, reviewID, text string, rating int) (models.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID string) error

	ListReviewComments(ctx context.Context, itemID, reviewID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, itemID, reviewID, text string) (models.Comment, error)
	MyComments(ctx context.Context) ([]models.Comment, error)
	UpdateComment(ctx context.Context, userID, commentID, text string) (models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error

	Version(ctx context.Context) (string, error)
}
