package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/review-site/models"
)

const defaultTimeout = 15 * time.Second

// Config holds the client connection settings.
type Config struct {
	// Address is the server base URL; "localhost:8080" is read as
	// "http://localhost:8080".
	Address string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a [ReviewSiteClient] for the server at cfg.Address.
func NewHTTPClient(cfg Config) (ReviewSiteClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpClient{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpClient) Register(ctx context.Context, username, password string) (models.Identity, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.User{Username: username, Password: password}).
		Post("/api/auth/register")

	return decode[models.Identity]("register", resp, err)
}

func (c *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.User{Username: username, Password: password}).
		Post("/api/auth/login")

	token, err := decode[models.TokenResponse]("login", resp, err)
	if err != nil {
		return "", err
	}

	c.SetToken(token.Token)
	return token.Token, nil
}

func (c *httpClient) Me(ctx context.Context) (models.Identity, error) {
	resp, err := c.authedRequest(ctx).Get("/api/auth/me")
	return decode[models.Identity]("me", resp, err)
}

func (c *httpClient) ListItems(ctx context.Context) ([]models.Item, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/api/items")
	return decode[[]models.Item]("list items", resp, err)
}

func (c *httpClient) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("itemID", itemID).
		Get("/api/items/{itemID}")

	return decode[models.Item]("get item", resp, err)
}

func (c *httpClient) ListItemReviews(ctx context.Context, itemID string) ([]models.Review, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("itemID", itemID).
		Get("/api/items/{itemID}/reviews")

	return decode[[]models.Review]("list item reviews", resp, err)
}

func (c *httpClient) GetReview(ctx context.Context, itemID, reviewID string) (models.Review, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"itemID": itemID, "reviewID": reviewID}).
		Get("/api/items/{itemID}/reviews/{reviewID}")

	return decode[models.Review]("get review", resp, err)
}

func (c *httpClient) CreateReview(ctx context.Context, itemID, text string, rating int) (models.Review, error) {
	resp, err := c.authedRequest(ctx).
		SetPathParam("itemID", itemID).
		SetBody(models.ReviewRequest{Text: text, Rating: rating}).
		Post("/api/items/{itemID}/reviews")

	return decode[models.Review]("create review", resp, err)
}

func (c *httpClient) MyReviews(ctx context.Context) ([]models.Review, error) {
	resp, err := c.authedRequest(ctx).Get("/api/reviews/me")
	return decode[[]models.Review]("my reviews", resp, err)
}

func (c *httpClient) UpdateReview(ctx context.Context, userID, reviewID, text string, rating int) (models.Review, error) {
	resp, err := c.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "reviewID": reviewID}).
		SetBody(models.ReviewRequest{Text: text, Rating: rating}).
		Put("/api/users/{userID}/reviews/{reviewID}")

	return decode[models.Review]("update review", resp, err)
}

func (c *httpClient) DeleteReview(ctx context.Context, userID, reviewID string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "reviewID": reviewID}).
		Delete("/api/users/{userID}/reviews/{reviewID}")
	if err != nil {
		return fmt.Errorf("delete review request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpClient) ListReviewComments(ctx context.Context, itemID, reviewID string) ([]models.Comment, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"itemID": itemID, "reviewID": reviewID}).
		Get("/api/items/{itemID}/reviews/{reviewID}/comments")

	return decode[[]models.Comment]("list review comments", resp, err)
}

func (c *httpClient) CreateComment(ctx context.Context, itemID, reviewID, text string) (models.Comment, error) {
	resp, err := c.authedRequest(ctx).
		SetPathParams(map[string]string{"itemID": itemID, "reviewID": reviewID}).
		SetBody(models.CommentRequest{Text: text}).
		Post("/api/items/{itemID}/reviews/{reviewID}/comments")

	return decode[models.Comment]("create comment", resp, err)
}

func (c *httpClient) MyComments(ctx context.Context) ([]models.Comment, error) {
	resp, err := c.authedRequest(ctx).Get("/api/comments/me")
	return decode[[]models.Comment]("my comments", resp, err)
}

func (c *httpClient) UpdateComment(ctx context.Context, userID, commentID, text string) (models.Comment, error) {
	resp, err := c.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "commentID": commentID}).
		SetBody(models.CommentRequest{Text: text}).
		Put("/api/users/{userID}/comments/{commentID}")

	return decode[models.Comment]("update comment", resp, err)
}

func (c *httpClient) DeleteComment(ctx context.Context, userID, commentID string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "commentID": commentID}).
		Delete("/api/users/{userID}/comments/{commentID}")
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/api/version")

	version, err := decode[models.VersionResponse]("version", resp, err)
	return version.Version, err
}

func (c *httpClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decode checks the transport error and status of a finished call, then
// unmarshals its JSON body into T. op names the call in returned errors.
func decode[T any](op string, resp *resty.Response, err error) (T, error) {
	var result T
	if err != nil {
		return result, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode %s response: %w", op, err)
	}
	return result, nil
}
