package api

import (
	"time"

	"github.com/rpupo63/dsa-learning-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, startupTime time.Time) *routeHandlers {
	validate := newValidator()

	return &routeHandlers{
		categoryHandler:  newCategoryHandler(database.CategoryRepo(), validate),
		exampleHandler:   newExampleHandler(database.ExampleRepo(), validate),
		algorithmHandler: newAlgorithmHandler(database.AlgorithmRepo(), validate),
		systemHandler:    newSystemHandler(database, startupTime),
	}
}
