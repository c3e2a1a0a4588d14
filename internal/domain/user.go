package domain

import (
	"time"

	"stayhub/pkg/utils"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string    `gorm:"size:50;not null" json:"first_name"`
	LastName     string    `gorm:"size:50;not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Places  []Place  `gorm:"foreignKey:OwnerID" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "users" }

// NewUser validates every field and assigns a fresh ID. The password hash is
// set by the facade; a User never carries plaintext.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	u := &User{ID: utils.NewID(), IsAdmin: isAdmin}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetFirstName(v string) error {
	v, ok := trimmedInRange(v, 2, 50)
	if !ok {
		return Invalid("first_name", "must be between 2 and 50 characters")
	}
	u.FirstName = v
	return nil
}

func (u *User) SetLastName(v string) error {
	v, ok := trimmedInRange(v, 2, 50)
	if !ok {
		return Invalid("last_name", "must be between 2 and 50 characters")
	}
	u.LastName = v
	return nil
}

func (u *User) SetEmail(v string) error {
	v, ok := trimmedInRange(v, 0, 120)
	if !ok {
		return Invalid("email", "must be at most 120 characters")
	}
	if !emailRx.MatchString(v) {
		return Invalid("email", "invalid email address")
	}
	u.Email = v
	return nil
}

// VerifyPassword checks plaintext against the stored hash.
func (u *User) VerifyPassword(plain string) bool {
	return utils.CheckPassword(plain, u.PasswordHash)
}

// Apply merges a partial field map, re-validating each supplied field.
// Either all fields apply or none do.
func (u *User) Apply(fields map[string]any) error {
	next := *u
	for k, v := range fields {
		switch k {
		case "first_name":
			s, ok := asString(v)
			if !ok {
				return Invalid("first_name", "must be a string")
			}
			if err := next.SetFirstName(s); err != nil {
				return err
			}
		case "last_name":
			s, ok := asString(v)
			if !ok {
				return Invalid("last_name", "must be a string")
			}
			if err := next.SetLastName(s); err != nil {
				return err
			}
		case "email":
			s, ok := asString(v)
			if !ok {
				return Invalid("email", "must be a string")
			}
			if err := next.SetEmail(s); err != nil {
				return err
			}
		case "is_admin":
			b, ok := v.(bool)
			if !ok {
				return Invalid("is_admin", "must be a boolean")
			}
			next.IsAdmin = b
		}
	}
	*u = next
	return nil
}
