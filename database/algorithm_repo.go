package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/dsa-learning-backend/models"
)

type AlgorithmRepo struct {
	catalogRepo[models.Algorithm, *models.Algorithm]
}

func NewAlgorithmRepo(db *gorm.DB) *AlgorithmRepo {
	return &AlgorithmRepo{newCatalogRepo[models.Algorithm, *models.Algorithm](db)}
}

// FindAll returns one page of algorithms, restricted to a category label when
// category is non-nil. The empty label is a real filter.
func (r *AlgorithmRepo) FindAll(ctx context.Context, page Page, category *string) ([]models.Algorithm, error) {
	if category == nil {
		return r.list(ctx, page)
	}
	return r.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", *category)
	})
}
