package facade

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/pkg/utils"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreateUser rejects duplicate emails and stores only a bcrypt hash of the
// password.
func (f *Facade) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if in.Password == "" {
		return nil, domain.Invalid("password", "cannot be empty")
	}
	u, err := domain.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}
	existing, err := f.users.GetByAttribute(ctx, "email", u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("email already registered")
	}
	u.PasswordHash = utils.HashPassword(in.Password)
	if err := f.users.Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return f.users.Get(ctx, id)
}

func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByAttribute(ctx, "email", email)
}

func (f *Facade) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return f.users.GetAll(ctx)
}

// SearchUsers filters by an email/name substring; an empty query lists all.
func (f *Facade) SearchUsers(ctx context.Context, q string) ([]domain.User, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return f.users.GetAll(ctx)
	}
	like := "%" + q + "%"
	var users []domain.User
	if err := f.db.WithContext(ctx).
		Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like).
		Order("created_at").
		Find(&users).Error; err != nil {
		return nil, domain.Unexpected(err)
	}
	return users, nil
}

// UpdateUser merges a partial field map. Email and password are immutable via
// this path, so only the name fields survive the filter.
func (f *Facade) UpdateUser(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	allowed := map[string]any{}
	for _, k := range []string{"first_name", "last_name"} {
		if v, ok := fields[k]; ok {
			allowed[k] = v
		}
	}
	u, err := f.users.Update(ctx, id, allowed)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user", id)
	}
	return u, nil
}

// DeleteUser removes the user together with their reviews and owned places in
// one transaction. Returns false when no such user exists.
func (f *Facade) DeleteUser(ctx context.Context, id string) (bool, error) {
	u, err := f.users.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	err = f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		var places []domain.Place
		if err := tx.Where("owner_id = ?", id).Find(&places).Error; err != nil {
			return err
		}
		for i := range places {
			if err := deletePlaceTx(tx, &places[i]); err != nil {
				return err
			}
		}
		return tx.Delete(&domain.User{}, "id = ?", id).Error
	})
	if err != nil {
		return false, domain.Unexpected(errors.Wrap(err, "delete user cascade"))
	}
	f.log.Info("user deleted", zap.String("user_id", id))
	return true, nil
}
