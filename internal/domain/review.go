package domain

import (
	"time"

	"stayhub/pkg/utils"
)

// One review per (user, place) pair, enforced by the composite unique index.
type Review struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"size:1024;not null" json:"text"`
	Rating    int       `gorm:"not null" json:"rating"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:uq_reviews_user_place" json:"user_id"`
	PlaceID   string    `gorm:"size:36;not null;uniqueIndex:uq_reviews_user_place" json:"place_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }

func NewReview(text string, rating int, userID, placeID string) (*Review, error) {
	r := &Review{ID: utils.NewID()}
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	if err := r.SetUserID(userID); err != nil {
		return nil, err
	}
	if err := r.SetPlaceID(placeID); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) SetText(v string) error {
	v, ok := trimmedInRange(v, 1, 1024)
	if !ok {
		return Invalid("text", "cannot be empty")
	}
	r.Text = v
	return nil
}

func (r *Review) SetRating(v int) error {
	if v < 1 || v > 5 {
		return Invalid("rating", "must be an integer between 1 and 5")
	}
	r.Rating = v
	return nil
}

func (r *Review) SetUserID(v string) error {
	if v == "" {
		return Invalid("user_id", "cannot be empty")
	}
	r.UserID = v
	return nil
}

func (r *Review) SetPlaceID(v string) error {
	if v == "" {
		return Invalid("place_id", "cannot be empty")
	}
	r.PlaceID = v
	return nil
}

func (r *Review) Apply(fields map[string]any) error {
	next := *r
	for k, v := range fields {
		switch k {
		case "text":
			s, ok := asString(v)
			if !ok {
				return Invalid("text", "must be a string")
			}
			if err := next.SetText(s); err != nil {
				return err
			}
		case "rating":
			n, ok := asInt(v)
			if !ok {
				return Invalid("rating", "must be an integer between 1 and 5")
			}
			if err := next.SetRating(n); err != nil {
				return err
			}
		}
	}
	*r = next
	return nil
}
