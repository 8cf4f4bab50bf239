package api

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/dsa-learning-backend/database"
	"github.com/rpupo63/dsa-learning-backend/models"
)

type exampleHandler = resourceHandler[models.Example, models.ExampleInput]

// newExampleHandler serves the example routes. Listing accepts an optional
// category_id filter; an explicit 0 is applied like any other id.
func newExampleHandler(repo *database.ExampleRepo, validate *validator.Validate) exampleHandler {
	list := func(ctx context.Context, page database.Page, query url.Values) ([]models.Example, error) {
		categoryID, err := optionalIntParam(query, "category_id")
		if err != nil {
			return nil, err
		}
		return repo.FindAll(ctx, page, categoryID)
	}
	return newResourceHandler[models.Example, models.ExampleInput]("Example", repo, list, validate)
}
