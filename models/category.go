package models

// Category groups examples under a data-structure or algorithm heading.
type Category struct {
	ID          int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string       `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string       `json:"slug" gorm:"type:varchar(100);not null;uniqueIndex"`
	Description *string      `json:"description" gorm:"type:text"`
	Type        CategoryType `json:"type" gorm:"type:varchar(20);not null"`
	Icon        *string      `json:"icon" gorm:"type:varchar(50)"`
	Order       int          `json:"order" gorm:"column:order;not null;default:0"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) EntityName() string { return "Category" }
func (c *Category) PrimaryKey() int { return c.ID }
func (c *Category) SetPrimaryKey(id int) { c.ID = id }
func (c *Category) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "name", Value: c.Name}, {Column: "slug", Value: c.Slug}}
}

// CategoryInput is the body of both create and full-replacement writes.
// Every field is resupplied on each write; omitted optional fields reset.
type CategoryInput struct {
	Name        string       `json:"name" validate:"notblank,max=100"`
	Slug        string       `json:"slug" validate:"notblank,max=100,slug"`
	Description *string      `json:"description"`
	Type        CategoryType `json:"type" validate:"required,categorytype"`
	Icon        *string      `json:"icon" validate:"omitempty,max=50"`
	Order       int          `json:"order"`
}

// Record converts the input into a Category without an identity.
func (in CategoryInput) Record() Category {
	return Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Type:        in.Type,
		Icon:        in.Icon,
		Order:       in.Order,
	}
}
