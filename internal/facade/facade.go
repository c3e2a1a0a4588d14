package facade

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/repo"
)

// Facade enforces the cross-entity rules a single repository cannot express:
// duplicate emails, dangling review references, owner checks, cascades.
type Facade struct {
	db        *gorm.DB
	users     *repo.Repo[domain.User]
	places    *repo.Repo[domain.Place]
	reviews   *repo.Repo[domain.Review]
	amenities *repo.Repo[domain.Amenity]
	log       *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Facade {
	return &Facade{
		db:        db,
		users:     repo.New[domain.User](db),
		places:    repo.New[domain.Place](db, "Owner", "Reviews", "Amenities"),
		reviews:   repo.New[domain.Review](db),
		amenities: repo.New[domain.Amenity](db),
		log:       log,
	}
}
