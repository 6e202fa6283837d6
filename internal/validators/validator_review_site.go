package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

const (
	FieldID       = "id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldText     = "text"
	FieldUserID   = "user_id"
	FieldItemID   = "item_id"
	FieldReviewID = "review_id"
)

const (
	maxUsernameLength = 50
	// bcrypt ignores everything after the 72nd byte
	maxPasswordBytes = 72
	maxTextLength    = 255
)

// ReviewSiteValidator checks users, reviews and comments before they reach
// the repositories. Identifier fields must be canonical UUIDs.
type ReviewSiteValidator struct {
}

func NewReviewSiteValidator() Validator {
	return &ReviewSiteValidator{}
}

// Validate dispatches on the type of obj. When no fields are given, the
// default set for that type is checked:
//   - models.User: username, password
//   - models.Review: text, user_id, item_id
//   - models.Comment: text, user_id, review_id
func (v *ReviewSiteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Review:
		return v.validateReview(value, fields...)
	case *models.Review:
		return v.validateReview(*value, fields...)

	case models.Comment:
		return v.validateComment(value, fields...)
	case *models.Comment:
		return v.validateComment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ReviewSiteValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" || utf8.RuneCountInString(user.Username) > maxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if user.Password == "" || len(user.Password) > maxPasswordBytes {
				return ErrInvalidPassword
			}
		case FieldID, FieldUserID:
			if !utils.IsUUID(user.UserID) {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReviewSiteValidator) validateReview(review models.Review, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldUserID, FieldItemID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsUUID(review.ID) {
				return ErrInvalidID
			}
		case FieldText:
			if !isValidText(review.Text) {
				return ErrInvalidText
			}
		case FieldUserID:
			if !utils.IsUUID(review.UserID) {
				return ErrInvalidUserID
			}
		case FieldItemID:
			if !utils.IsUUID(review.ItemID) {
				return ErrInvalidItemID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReviewSiteValidator) validateComment(comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldUserID, FieldReviewID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsUUID(comment.ID) {
				return ErrInvalidID
			}
		case FieldText:
			if !isValidText(comment.Text) {
				return ErrInvalidText
			}
		case FieldUserID:
			if !utils.IsUUID(comment.UserID) {
				return ErrInvalidUserID
			}
		case FieldReviewID:
			if !utils.IsUUID(comment.ReviewID) {
				return ErrInvalidReviewID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidText(text string) bool {
	return strings.TrimSpace(text) != "" && utf8.RuneCountInString(text) <= maxTextLength
}
