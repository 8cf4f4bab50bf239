package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/dsa-learning-backend/errs"
	"github.com/rpupo63/dsa-learning-backend/models"
)

type CategoryRepo struct {
	catalogRepo[models.Category, *models.Category]
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	r := &CategoryRepo{newCatalogRepo[models.Category, *models.Category](db)}
	r.beforeDelete = rejectReferencedCategory
	return r
}

// FindAll returns one page of categories.
func (r *CategoryRepo) FindAll(ctx context.Context, page Page) ([]models.Category, error) {
	return r.list(ctx, page)
}

// A category that examples still point at cannot be deleted.
func rejectReferencedCategory(tx *gorm.DB, c *models.Category) error {
	var count int64
	if err := tx.Model(&models.Example{}).Where("category_id = ?", c.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewStillReferencedError(c.EntityName(), c.ID, "examples", count)
	}
	return nil
}
