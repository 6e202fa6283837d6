package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/mock"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/internal/validators"
	"github.com/MKhiriev/review-site/models"
)

const (
	shampooID = "3f1c6a0e-8d2b-4b7e-9a41-5c2d7e8f9a01"
	reviewID  = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	bobID     = "5d1f3a2b-6c7e-4f80-9a1b-2c3d4e5f6a7b"
)

func newTestReviewSvc(t *testing.T) (ReviewService, *mock.MockReviewRepository) {
	t.Helper()
	repo := mock.NewMockReviewRepository(gomock.NewController(t))
	return NewReviewValidationService().Wrap(NewReviewService(repo, logger.Nop())), repo
}

func TestReviewService_CreateReview(t *testing.T) {
	svc, repo := newTestReviewSvc(t)
	in := models.Review{Text: "not worth the money", Rating: 1, UserID: aliceID, ItemID: shampooID}
	want := in
	want.ID = reviewID

	repo.EXPECT().CreateReview(gomock.Any(), in).Return(want, nil)

	got, err := svc.CreateReview(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	svc, repo := newTestReviewSvc(t)

	repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(models.Review{}, store.ErrDuplicateReview)

	_, err := svc.CreateReview(context.Background(), models.Review{Text: "again", UserID: aliceID, ItemID: shampooID})

	assert.ErrorIs(t, err, store.ErrDuplicateReview)
}

func TestReviewService_ValidationStopsBeforeRepository(t *testing.T) {
	// no repository expectations: any call fails the test
	svc, _ := newTestReviewSvc(t)
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, models.Review{Text: "", UserID: aliceID, ItemID: shampooID})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidText)

	_, err = svc.ListItemReviews(ctx, "shampoo")
	assert.ErrorIs(t, err, validators.ErrInvalidItemID)

	_, err = svc.GetReview(ctx, shampooID, "42")
	assert.ErrorIs(t, err, validators.ErrInvalidID)

	_, err = svc.ListUserReviews(ctx, "")
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	_, err = svc.UpdateReview(ctx, models.Review{ID: reviewID, UserID: aliceID, Text: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.DeleteReview(ctx, aliceID, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestReviewService_UpdateReview_NotOwned(t *testing.T) {
	svc, repo := newTestReviewSvc(t)
	in := models.Review{ID: reviewID, UserID: bobID, Text: "hacked", Rating: 1}

	repo.EXPECT().UpdateReview(gomock.Any(), in).Return(models.Review{}, store.ErrReviewNotFound)

	_, err := svc.UpdateReview(context.Background(), in)

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReviewService_DeleteReview(t *testing.T) {
	svc, repo := newTestReviewSvc(t)

	repo.EXPECT().DeleteReview(gomock.Any(), aliceID, reviewID).Return(nil)

	assert.NoError(t, svc.DeleteReview(context.Background(), aliceID, reviewID))
}

func TestReviewService_Lists(t *testing.T) {
	svc, repo := newTestReviewSvc(t)
	ctx := context.Background()
	reviews := []models.Review{{ID: reviewID, Text: "ok", UserID: aliceID, ItemID: shampooID}}

	repo.EXPECT().ListReviewsByItem(ctx, shampooID).Return(reviews, nil)
	repo.EXPECT().ListReviewsByUser(ctx, aliceID).Return([]models.Review{}, nil)
	repo.EXPECT().GetReview(ctx, shampooID, reviewID).Return(reviews[0], nil)

	byItem, err := svc.ListItemReviews(ctx, shampooID)
	require.NoError(t, err)
	assert.Equal(t, reviews, byItem)

	byUser, err := svc.ListUserReviews(ctx, aliceID)
	require.NoError(t, err)
	assert.Empty(t, byUser)

	one, err := svc.GetReview(ctx, shampooID, reviewID)
	require.NoError(t, err)
	assert.Equal(t, reviews[0], one)
}
