package facade

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// CreatePlace requires the owner to exist. Unknown amenity ids in the initial
// list are skipped rather than failing the whole create.
func (f *Facade) CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error) {
	p, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID)
	if err != nil {
		return nil, err
	}
	owner, err := f.users.Get(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.NotFound("user", in.OwnerID)
	}
	if err := f.places.Add(ctx, p); err != nil {
		return nil, err
	}
	for _, aid := range in.AmenityIDs {
		a, err := f.amenities.Get(ctx, aid)
		if err != nil {
			return nil, err
		}
		if a == nil {
			continue
		}
		if err := f.db.WithContext(ctx).Model(p).Association("Amenities").Append(a); err != nil {
			return nil, domain.Unexpected(errors.Wrap(err, "attach amenity"))
		}
	}
	return f.places.Get(ctx, p.ID)
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	return f.places.Get(ctx, id)
}

func (f *Facade) GetAllPlaces(ctx context.Context) ([]domain.Place, error) {
	return f.places.GetAll(ctx)
}

// UpdatePlace re-validates every supplied field; the owner reference is
// immutable once assigned.
func (f *Facade) UpdatePlace(ctx context.Context, id string, fields map[string]any) (*domain.Place, error) {
	p, err := f.places.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("place", id)
	}
	return p, nil
}

// DeletePlace removes the place, its reviews and its amenity memberships in
// one transaction. Returns false when no such place exists.
func (f *Facade) DeletePlace(ctx context.Context, id string) (bool, error) {
	p, err := f.places.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	err = f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deletePlaceTx(tx, p)
	})
	if err != nil {
		return false, domain.Unexpected(errors.Wrap(err, "delete place cascade"))
	}
	f.log.Info("place deleted", zap.String("place_id", id))
	return true, nil
}

// deletePlaceTx is the shared cascade: reviews first, then the join rows,
// then the place row itself.
func deletePlaceTx(tx *gorm.DB, p *domain.Place) error {
	if err := tx.Where("place_id = ?", p.ID).Delete(&domain.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Model(p).Association("Amenities").Clear(); err != nil {
		return err
	}
	return tx.Delete(&domain.Place{}, "id = ?", p.ID).Error
}

// AddAmenityToPlace is an idempotent membership add: appending an amenity the
// place already has is a no-op.
func (f *Facade) AddAmenityToPlace(ctx context.Context, placeID, amenityID string) (*domain.Place, error) {
	p, err := f.places.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("place", placeID)
	}
	a, err := f.amenities.Get(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound("amenity", amenityID)
	}
	if err := f.db.WithContext(ctx).Model(p).Association("Amenities").Append(a); err != nil {
		return nil, domain.Unexpected(errors.Wrap(err, "attach amenity"))
	}
	return f.places.Get(ctx, placeID)
}

// RemoveAmenityFromPlace drops the membership row; removing an absent
// membership is a no-op.
func (f *Facade) RemoveAmenityFromPlace(ctx context.Context, placeID, amenityID string) (*domain.Place, error) {
	p, err := f.places.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("place", placeID)
	}
	a, err := f.amenities.Get(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound("amenity", amenityID)
	}
	if err := f.db.WithContext(ctx).Model(p).Association("Amenities").Delete(a); err != nil {
		return nil, domain.Unexpected(errors.Wrap(err, "detach amenity"))
	}
	return f.places.Get(ctx, placeID)
}
