package models

import "gorm.io/gorm"

// Algorithm is a reference entry with pseudocode and code samples.
// Category is a free-text label, not a reference to the categories table.
type Algorithm struct {
	ID                    int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                  string     `json:"name" gorm:"type:varchar(200);not null"`
	Slug                  string     `json:"slug" gorm:"type:varchar(200);not null;uniqueIndex"`
	Category              string     `json:"category" gorm:"type:varchar(100);index"`
	Description           *string    `json:"description" gorm:"type:text"`
	Explanation           *string    `json:"explanation" gorm:"type:text"`
	Pseudocode            *string    `json:"pseudocode" gorm:"type:text"`
	PythonCode            *string    `json:"python_code" gorm:"type:text"`
	JavascriptCode        *string    `json:"javascript_code" gorm:"type:text"`
	TimeComplexityBest    *string    `json:"time_complexity_best" gorm:"type:varchar(50)"`
	TimeComplexityAverage *string    `json:"time_complexity_average" gorm:"type:varchar(50)"`
	TimeComplexityWorst   *string    `json:"time_complexity_worst" gorm:"type:varchar(50)"`
	SpaceComplexity       *string    `json:"space_complexity" gorm:"type:varchar(50)"`
	Difficulty            Difficulty `json:"difficulty" gorm:"type:varchar(20);not null;default:beginner"`
	UseCases              *string    `json:"use_cases" gorm:"type:text"`
	VisualizationData     *string    `json:"visualization_data" gorm:"type:text"`
}

func (Algorithm) TableName() string {
	return "algorithms"
}

func (a *Algorithm) EntityName() string { return "Algorithm" }
func (a *Algorithm) PrimaryKey() int { return a.ID }
func (a *Algorithm) SetPrimaryKey(id int) { a.ID = id }
func (a *Algorithm) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "slug", Value: a.Slug}}
}

func (a *Algorithm) BeforeSave(*gorm.DB) error {
	a.Difficulty = a.Difficulty.OrDefault()
	return nil
}

// AlgorithmInput is the body of both create and full-replacement writes.
type AlgorithmInput struct {
	Name                  string      `json:"name" validate:"notblank,max=200"`
	Slug                  string      `json:"slug" validate:"notblank,max=200,slug"`
	Category              *string     `json:"category" validate:"required,max=100"`
	Description           *string     `json:"description"`
	Explanation           *string     `json:"explanation"`
	Pseudocode            *string     `json:"pseudocode"`
	PythonCode            *string     `json:"python_code"`
	JavascriptCode        *string     `json:"javascript_code"`
	TimeComplexityBest    *string     `json:"time_complexity_best" validate:"omitempty,max=50"`
	TimeComplexityAverage *string     `json:"time_complexity_average" validate:"omitempty,max=50"`
	TimeComplexityWorst   *string     `json:"time_complexity_worst" validate:"omitempty,max=50"`
	SpaceComplexity       *string     `json:"space_complexity" validate:"omitempty,max=50"`
	Difficulty            *Difficulty `json:"difficulty" validate:"omitnil,difficulty"`
	UseCases              *string     `json:"use_cases"`
	VisualizationData     *string     `json:"visualization_data"`
}

func (in AlgorithmInput) Record() Algorithm {
	var category string
	if in.Category != nil {
		category = *in.Category
	}
	return Algorithm{
		Name:                  in.Name,
		Slug:                  in.Slug,
		Category:              category,
		Description:           in.Description,
		Explanation:           in.Explanation,
		Pseudocode:            in.Pseudocode,
		PythonCode:            in.PythonCode,
		JavascriptCode:        in.JavascriptCode,
		TimeComplexityBest:    in.TimeComplexityBest,
		TimeComplexityAverage: in.TimeComplexityAverage,
		TimeComplexityWorst:   in.TimeComplexityWorst,
		SpaceComplexity:       in.SpaceComplexity,
		Difficulty:            difficultyOrDefault(in.Difficulty),
		UseCases:              in.UseCases,
		VisualizationData:     in.VisualizationData,
	}
}
