package facade

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  string
	PlaceID string
}

// CreateReview requires both references to resolve and enforces one review
// per (user, place) pair. The pre-check gives a clean conflict message; the
// composite unique index catches the race underneath.
func (f *Facade) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	r, err := domain.NewReview(in.Text, in.Rating, in.UserID, in.PlaceID)
	if err != nil {
		return nil, err
	}
	u, err := f.users.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user", in.UserID)
	}
	p, err := f.places.Get(ctx, in.PlaceID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("place", in.PlaceID)
	}
	dup, err := f.reviewByUserAndPlace(ctx, in.UserID, in.PlaceID)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, domain.Conflict("user has already reviewed this place")
	}
	if err := f.reviews.Add(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return f.reviews.Get(ctx, id)
}

func (f *Facade) GetAllReviews(ctx context.Context) ([]domain.Review, error) {
	return f.reviews.GetAll(ctx)
}

// GetReviewsByPlace returns the reviews of an existing place, oldest first.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	p, err := f.places.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("place", placeID)
	}
	var reviews []domain.Review
	if err := f.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at").
		Find(&reviews).Error; err != nil {
		return nil, domain.Unexpected(err)
	}
	return reviews, nil
}

// UpdateReview lets only the review's author change it, and only the text and
// rating fields.
func (f *Facade) UpdateReview(ctx context.Context, id, userID string, fields map[string]any) (*domain.Review, error) {
	if userID == "" {
		return nil, domain.Invalid("user_id", "required for authorization")
	}
	r, err := f.reviews.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("review", id)
	}
	if r.UserID != userID {
		return nil, domain.Unauthorized("only the author can update this review")
	}
	allowed := map[string]any{}
	for _, k := range []string{"text", "rating"} {
		if v, ok := fields[k]; ok {
			allowed[k] = v
		}
	}
	updated, err := f.reviews.Update(ctx, id, allowed)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("review", id)
	}
	return updated, nil
}

// DeleteReview returns false when no such review exists.
func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	return f.reviews.Delete(ctx, id)
}

func (f *Facade) reviewByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error) {
	var r domain.Review
	err := f.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Unexpected(err)
	}
	return &r, nil
}
