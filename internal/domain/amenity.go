package domain

import (
	"time"

	"stayhub/pkg/utils"
)

type Amenity struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Places []Place `gorm:"many2many:place_amenities" json:"-"`
}

func (Amenity) TableName() string { return "amenities" }

func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{ID: utils.NewID()}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) SetName(v string) error {
	v, ok := trimmedInRange(v, 1, 50)
	if !ok {
		return Invalid("name", "must be between 1 and 50 characters")
	}
	a.Name = v
	return nil
}

func (a *Amenity) Apply(fields map[string]any) error {
	next := *a
	for k, v := range fields {
		switch k {
		case "name":
			s, ok := asString(v)
			if !ok {
				return Invalid("name", "must be a string")
			}
			if err := next.SetName(s); err != nil {
				return err
			}
		}
	}
	*a = next
	return nil
}
