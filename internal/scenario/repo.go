package scenario

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("scenario not found")

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context) ([]Query, error) {
	var qs []Query
	if err := r.db.WithContext(ctx).Find(&qs).Error; err != nil {
		return nil, err
	}
	return qs, nil
}

// GetBySlug returns ErrNotFound when no row has the slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*Query, error) {
	var q Query
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Query{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CreateBatch inserts all rows in one transaction.
func (r *Repo) CreateBatch(ctx context.Context, qs []Query) error {
	if len(qs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(qs, 50).Error
	})
}
