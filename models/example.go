package models

import "gorm.io/gorm"

// Example is a worked data-structure explainer filed under one Category.
//
// VisualizationData, UseCases, Pros and Cons hold serialized structures that
// only the presentation layer interprets; they are stored as given.
type Example struct {
	ID                int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title             string     `json:"title" gorm:"type:varchar(200);not null"`
	Slug              string     `json:"slug" gorm:"type:varchar(200);not null;uniqueIndex"`
	CategoryID        int        `json:"category_id" gorm:"not null;index"`
	Description       *string    `json:"description" gorm:"type:text"`
	Explanation       *string    `json:"explanation" gorm:"type:text"`
	TimeComplexity    *string    `json:"time_complexity" gorm:"type:varchar(50)"`
	SpaceComplexity   *string    `json:"space_complexity" gorm:"type:varchar(50)"`
	Difficulty        Difficulty `json:"difficulty" gorm:"type:varchar(20);not null;default:beginner"`
	CodeExample       *string    `json:"code_example" gorm:"type:text"`
	VisualizationData *string    `json:"visualization_data" gorm:"type:text"`
	UseCases          *string    `json:"use_cases" gorm:"type:text"`
	Pros              *string    `json:"pros" gorm:"type:text"`
	Cons              *string    `json:"cons" gorm:"type:text"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Example) TableName() string {
	return "examples"
}

func (e *Example) EntityName() string { return "Example" }
func (e *Example) PrimaryKey() int { return e.ID }
func (e *Example) SetPrimaryKey(id int) { e.ID = id }
func (e *Example) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "slug", Value: e.Slug}}
}

// BeforeSave fills the difficulty default for writes that bypass the API.
func (e *Example) BeforeSave(*gorm.DB) error {
	e.Difficulty = e.Difficulty.OrDefault()
	return nil
}

// ExampleInput is the body of both create and full-replacement writes.
type ExampleInput struct {
	Title             string      `json:"title" validate:"notblank,max=200"`
	Slug              string      `json:"slug" validate:"notblank,max=200,slug"`
	CategoryID        *int        `json:"category_id" validate:"required"`
	Description       *string     `json:"description"`
	Explanation       *string     `json:"explanation"`
	TimeComplexity    *string     `json:"time_complexity" validate:"omitempty,max=50"`
	SpaceComplexity   *string     `json:"space_complexity" validate:"omitempty,max=50"`
	Difficulty        *Difficulty `json:"difficulty" validate:"omitnil,difficulty"`
	CodeExample       *string     `json:"code_example"`
	VisualizationData *string     `json:"visualization_data"`
	UseCases          *string     `json:"use_cases"`
	Pros              *string     `json:"pros"`
	Cons              *string     `json:"cons"`
}

func (in ExampleInput) Record() Example {
	var categoryID int
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	return Example{
		Title:             in.Title,
		Slug:              in.Slug,
		CategoryID:        categoryID,
		Description:       in.Description,
		Explanation:       in.Explanation,
		TimeComplexity:    in.TimeComplexity,
		SpaceComplexity:   in.SpaceComplexity,
		Difficulty:        difficultyOrDefault(in.Difficulty),
		CodeExample:       in.CodeExample,
		VisualizationData: in.VisualizationData,
		UseCases:          in.UseCases,
		Pros:              in.Pros,
		Cons:              in.Cons,
	}
}
