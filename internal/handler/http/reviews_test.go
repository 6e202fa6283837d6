package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/models"
)

type mockReviewService struct {
	listItemReviewsFn func(ctx context.Context, itemID string) ([]models.Review, error)
	getReviewFn       func(ctx context.Context, itemID, reviewID string) (models.Review, error)
	listUserReviewsFn func(ctx context.Context, userID string) ([]models.Review, error)
	createReviewFn    func(ctx context.Context, review models.Review) (models.Review, error)
	updateReviewFn    func(ctx context.Context, review models.Review) (models.Review, error)
	deleteReviewFn    func(ctx context.Context, userID, reviewID string) error
}

func (m *mockReviewService) ListItemReviews(ctx context.Context, itemID string) ([]models.Review, error) {
	if m.listItemReviewsFn == nil {
		return []models.Review{}, nil
	}
	return m.listItemReviewsFn(ctx, itemID)
}

func (m *mockReviewService) GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error) {
	if m.getReviewFn == nil {
		return models.Review{}, nil
	}
	return m.getReviewFn(ctx, itemID, reviewID)
}

func (m *mockReviewService) ListUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	if m.listUserReviewsFn == nil {
		return []models.Review{}, nil
	}
	return m.listUserReviewsFn(ctx, userID)
}

func (m *mockReviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if m.createReviewFn == nil {
		return review, nil
	}
	return m.createReviewFn(ctx, review)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if m.updateReviewFn == nil {
		return review, nil
	}
	return m.updateReviewFn(ctx, review)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if m.deleteReviewFn == nil {
		return nil
	}
	return m.deleteReviewFn(ctx, userID, reviewID)
}

var aliceReview = models.Review{ID: reviewID, Text: "smells nice", Rating: 5, UserID: aliceID, ItemID: shampooID}

func TestListItemReviews(t *testing.T) {
	svcs := newTestServices()
	svcs.ReviewService = &mockReviewService{
		listItemReviewsFn: func(_ context.Context, itemID string) ([]models.Review, error) {
			assert.Equal(t, shampooID, itemID)
			return []models.Review{aliceReview}, nil
		},
	}

	rr := serve(t, svcs, http.MethodGet, "/api/items/"+shampooID+"/reviews", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []models.Review{aliceReview}, decodeBody[[]models.Review](t, rr))
}

func TestGetReview(t *testing.T) {
	svcs := newTestServices()
	svcs.ReviewService = &mockReviewService{
		getReviewFn: func(_ context.Context, itemID, id string) (models.Review, error) {
			if itemID == shampooID && id == reviewID {
				return aliceReview, nil
			}
			return models.Review{}, store.ErrReviewNotFound
		},
	}

	rr := serve(t, svcs, http.MethodGet, "/api/items/"+shampooID+"/reviews/"+reviewID, "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, aliceReview, decodeBody[models.Review](t, rr))

	rr = serve(t, svcs, http.MethodGet, "/api/items/"+shampooID+"/reviews/"+commentID, "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateReview_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		token      string
		createErr  error
		wantStatus int
		wantText   string
	}{
		{name: "text field → 201", body: `{"text":"smells nice","rating":5}`, token: aliceToken, wantStatus: http.StatusCreated, wantText: "smells nice"},
		{name: "txt field → 201", body: `{"txt":"smells nice","rating":5}`, token: aliceToken, wantStatus: http.StatusCreated, wantText: "smells nice"},
		{name: "no token → 401", body: `{"text":"smells nice","rating":5}`, wantStatus: http.StatusUnauthorized},
		{name: "bad JSON → 400", body: `{"rating":"five"}`, token: aliceToken, wantStatus: http.StatusBadRequest},
		{name: "second review → 409", body: `{"text":"again","rating":1}`, token: aliceToken, createErr: store.ErrDuplicateReview, wantStatus: http.StatusConflict},
		{name: "unknown item → 409", body: `{"text":"again","rating":1}`, token: aliceToken, createErr: store.ErrReferenceNotFound, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Review
			svcs := newTestServices()
			svcs.ReviewService = &mockReviewService{
				createReviewFn: func(_ context.Context, review models.Review) (models.Review, error) {
					got = review
					if tt.createErr != nil {
						return models.Review{}, tt.createErr
					}
					review.ID = reviewID
					return review, nil
				},
			}

			rr := serve(t, svcs, http.MethodPost, "/api/items/"+shampooID+"/reviews", tt.body, tt.token)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus != http.StatusCreated {
				return
			}

			want := models.Review{ID: reviewID, Text: tt.wantText, Rating: 5, UserID: aliceID, ItemID: shampooID}
			assert.Equal(t, want, decodeBody[models.Review](t, rr))
			assert.Equal(t, aliceID, got.UserID, "owner comes from the token, not the body")
		})
	}
}

func TestListMyReviews(t *testing.T) {
	svcs := newTestServices()
	svcs.ReviewService = &mockReviewService{
		listUserReviewsFn: func(_ context.Context, userID string) ([]models.Review, error) {
			if userID == aliceID {
				return []models.Review{aliceReview}, nil
			}
			return []models.Review{}, nil
		},
	}

	rr := serve(t, svcs, http.MethodGet, "/api/reviews/me", "", aliceToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []models.Review{aliceReview}, decodeBody[[]models.Review](t, rr))

	rr = serve(t, svcs, http.MethodGet, "/api/reviews/me", "", bobToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestUpdateReview_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		pathUser   string
		token      string
		updateErr  error
		wantStatus int
		wantCalled bool
	}{
		{name: "owner → 200", pathUser: aliceID, token: aliceToken, wantStatus: http.StatusOK, wantCalled: true},
		{name: "non-owner → 401", pathUser: aliceID, token: bobToken, wantStatus: http.StatusUnauthorized},
		{name: "no token → 401", pathUser: aliceID, wantStatus: http.StatusUnauthorized},
		{name: "missing review → 404", pathUser: aliceID, token: aliceToken, updateErr: store.ErrReviewNotFound, wantStatus: http.StatusNotFound, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svcs := newTestServices()
			svcs.ReviewService = &mockReviewService{
				updateReviewFn: func(_ context.Context, review models.Review) (models.Review, error) {
					called = true
					if tt.updateErr != nil {
						return models.Review{}, tt.updateErr
					}
					assert.Equal(t, models.Review{ID: reviewID, Text: "changed", Rating: 2, UserID: aliceID}, review)
					review.ItemID = shampooID
					return review, nil
				},
			}

			rr := serve(t, svcs, http.MethodPut, "/api/users/"+tt.pathUser+"/reviews/"+reviewID, `{"text":"changed","rating":2}`, tt.token)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantStatus == http.StatusOK {
				got := decodeBody[models.Review](t, rr)
				assert.Equal(t, "changed", got.Text)
				assert.Equal(t, 2, got.Rating)
			}
		})
	}
}

func TestDeleteReview_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		deleteErr  error
		wantStatus int
		wantCalled bool
	}{
		{name: "owner → 204", token: aliceToken, wantStatus: http.StatusNoContent, wantCalled: true},
		{name: "non-owner → 401", token: bobToken, wantStatus: http.StatusUnauthorized},
		{name: "missing review → 404", token: aliceToken, deleteErr: store.ErrReviewNotFound, wantStatus: http.StatusNotFound, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svcs := newTestServices()
			svcs.ReviewService = &mockReviewService{
				deleteReviewFn: func(_ context.Context, userID, id string) error {
					called = true
					assert.Equal(t, aliceID, userID)
					assert.Equal(t, reviewID, id)
					return tt.deleteErr
				},
			}

			rr := serve(t, svcs, http.MethodDelete, "/api/users/"+aliceID+"/reviews/"+reviewID, "", tt.token)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
