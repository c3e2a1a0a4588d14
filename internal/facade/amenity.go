package facade

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"stayhub/internal/domain"
)

func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	a, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}
	if err := f.amenities.Add(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return f.amenities.Get(ctx, id)
}

func (f *Facade) GetAllAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return f.amenities.GetAll(ctx)
}

func (f *Facade) UpdateAmenity(ctx context.Context, id string, fields map[string]any) (*domain.Amenity, error) {
	a, err := f.amenities.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound("amenity", id)
	}
	return a, nil
}

// DeleteAmenity drops the amenity and its place memberships.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) (bool, error) {
	a, err := f.amenities.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if a == nil {
		return false, nil
	}
	err = f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(a).Association("Places").Clear(); err != nil {
			return err
		}
		return tx.Delete(&domain.Amenity{}, "id = ?", id).Error
	})
	if err != nil {
		return false, domain.Unexpected(errors.Wrap(err, "delete amenity"))
	}
	return true, nil
}
