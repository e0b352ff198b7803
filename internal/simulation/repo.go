package simulation

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, s *Simulation) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// List returns every run, oldest first.
func (r *Repo) List(ctx context.Context) ([]Simulation, error) {
	var sims []Simulation
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&sims).Error; err != nil {
		return nil, err
	}
	return sims, nil
}
