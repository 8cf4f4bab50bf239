package api

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/dsa-learning-backend/database"
	"github.com/rpupo63/dsa-learning-backend/models"
)

type algorithmHandler = resourceHandler[models.Algorithm, models.AlgorithmInput]

// newAlgorithmHandler serves the algorithm routes. The category filter matches
// the free-text label exactly, including the empty label.
func newAlgorithmHandler(repo *database.AlgorithmRepo, validate *validator.Validate) algorithmHandler {
	list := func(ctx context.Context, page database.Page, query url.Values) ([]models.Algorithm, error) {
		return repo.FindAll(ctx, page, optionalStringParam(query, "category"))
	}
	return newResourceHandler[models.Algorithm, models.AlgorithmInput]("Algorithm", repo, list, validate)
}
