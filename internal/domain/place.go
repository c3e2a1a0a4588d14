package domain

import (
	"time"

	"stayhub/pkg/utils"
)

type Place struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	OwnerID     string    `gorm:"size:36;not null;index" json:"owner_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Owner     *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	Reviews   []Review  `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Amenities []Amenity `gorm:"many2many:place_amenities;constraint:OnDelete:CASCADE" json:"amenities,omitempty"`
}

func (Place) TableName() string { return "places" }

func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	p := &Place{ID: utils.NewID()}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return nil, err
	}
	if err := p.SetOwnerID(ownerID); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Place) SetTitle(v string) error {
	v, ok := trimmedInRange(v, 1, 100)
	if !ok {
		return Invalid("title", "must be between 1 and 100 characters")
	}
	p.Title = v
	return nil
}

func (p *Place) SetDescription(v string) error {
	v, ok := trimmedInRange(v, 1, 1000)
	if !ok {
		return Invalid("description", "must be between 1 and 1000 characters")
	}
	p.Description = v
	return nil
}

func (p *Place) SetPrice(v float64) error {
	if v <= 0 {
		return Invalid("price", "must be a positive number")
	}
	p.Price = v
	return nil
}

func (p *Place) SetLatitude(v float64) error {
	if v < -90 || v > 90 {
		return Invalid("latitude", "must be between -90 and 90 degrees")
	}
	p.Latitude = v
	return nil
}

func (p *Place) SetLongitude(v float64) error {
	if v < -180 || v > 180 {
		return Invalid("longitude", "must be between -180 and 180 degrees")
	}
	p.Longitude = v
	return nil
}

func (p *Place) SetOwnerID(v string) error {
	if v == "" {
		return Invalid("owner_id", "cannot be empty")
	}
	p.OwnerID = v
	return nil
}

func (p *Place) Apply(fields map[string]any) error {
	next := *p
	for k, v := range fields {
		switch k {
		case "title":
			s, ok := asString(v)
			if !ok {
				return Invalid("title", "must be a string")
			}
			if err := next.SetTitle(s); err != nil {
				return err
			}
		case "description":
			s, ok := asString(v)
			if !ok {
				return Invalid("description", "must be a string")
			}
			if err := next.SetDescription(s); err != nil {
				return err
			}
		case "price":
			f, ok := asFloat(v)
			if !ok {
				return Invalid("price", "must be a number")
			}
			if err := next.SetPrice(f); err != nil {
				return err
			}
		case "latitude":
			f, ok := asFloat(v)
			if !ok {
				return Invalid("latitude", "must be a number")
			}
			if err := next.SetLatitude(f); err != nil {
				return err
			}
		case "longitude":
			f, ok := asFloat(v)
			if !ok {
				return Invalid("longitude", "must be a number")
			}
			if err := next.SetLongitude(f); err != nil {
				return err
			}
		}
	}
	*p = next
	return nil
}
