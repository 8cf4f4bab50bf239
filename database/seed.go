package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/dsa-learning-backend/errs"
	"github.com/rpupo63/dsa-learning-backend/models"
)

// SeedResult reports what a Seed call inserted.
type SeedResult struct {
	Skipped    bool
	Categories int
	Examples   int
	Algorithms int
}

// Seed loads the starter catalog when no category exists yet. The count check
// is the only idempotency guard; everything is inserted in one transaction.
func (d Database) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Category{}).Count(&existing).Error; err != nil {
			return errs.NewDatabaseError("count", "Category", err)
		}
		if existing > 0 {
			result.Skipped = true
			return nil
		}

		categories := seedCategories()
		if err := tx.Omit(clause.Associations).Create(&categories).Error; err != nil {
			return errs.NewDatabaseError("create", "Category", err)
		}
		bySlug := make(map[string]int, len(categories))
		for _, c := range categories {
			bySlug[c.Slug] = c.ID
		}

		examples := seedExamples(bySlug)
		if err := tx.Omit(clause.Associations).Create(&examples).Error; err != nil {
			return errs.NewDatabaseError("create", "Example", err)
		}

		algorithms := seedAlgorithms()
		if err := tx.Create(&algorithms).Error; err != nil {
			return errs.NewDatabaseError("create", "Algorithm", err)
		}

		result = SeedResult{Categories: len(categories), Examples: len(examples), Algorithms: len(algorithms)}
		return nil
	})
	if err != nil {
		return SeedResult{}, errs.NewInternalErrorWithCause("seed failed", err)
	}

	if result.Skipped {
		log.Info().Msg("catalog already has categories, skipping seed")
	} else {
		log.Info().
			Int("categories", result.Categories).
			Int("examples", result.Examples).
			Int("algorithms", result.Algorithms).
			Msg("catalog seeded")
	}
	return result, nil
}

func (r SeedResult) String() string {
	if r.Skipped {
		return "skipped"
	}
	return fmt.Sprintf("%d categories, %d examples, %d algorithms", r.Categories, r.Examples, r.Algorithms)
}
