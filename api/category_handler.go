package api

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/dsa-learning-backend/database"
	"github.com/rpupo63/dsa-learning-backend/models"
)

type categoryHandler = resourceHandler[models.Category, models.CategoryInput]

// newCategoryHandler serves the category routes. Deleting a category that
// examples still reference is refused.
func newCategoryHandler(repo *database.CategoryRepo, validate *validator.Validate) categoryHandler {
	list := func(ctx context.Context, page database.Page, _ url.Values) ([]models.Category, error) {
		return repo.FindAll(ctx, page)
	}
	return newResourceHandler[models.Category, models.CategoryInput]("Category", repo, list, validate)
}
