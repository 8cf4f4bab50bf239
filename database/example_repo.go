package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/dsa-learning-backend/errs"
	"github.com/rpupo63/dsa-learning-backend/models"
)

type ExampleRepo struct {
	catalogRepo[models.Example, *models.Example]
}

func NewExampleRepo(db *gorm.DB) *ExampleRepo {
	r := &ExampleRepo{newCatalogRepo[models.Example, *models.Example](db)}
	r.beforeWrite = requireExistingCategory
	return r
}

// FindAll returns one page of examples, restricted to a category when
// categoryID is non-nil. A zero id is a real filter.
func (r *ExampleRepo) FindAll(ctx context.Context, page Page, categoryID *int) ([]models.Example, error) {
	if categoryID == nil {
		return r.list(ctx, page)
	}
	return r.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", *categoryID)
	})
}

func requireExistingCategory(tx *gorm.DB, e *models.Example) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", e.CategoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewForeignKeyConstraintError(e.EntityName(), "Category", "category_id", e.CategoryID)
	}
	return nil
}
