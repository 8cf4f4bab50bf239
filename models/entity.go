package models

// UniqueField is a column whose value must not repeat across rows of a table.
type UniqueField struct {
	Column string
	Value  string
}

// Entity is implemented by every catalog record family.
type Entity interface {
	EntityName() string
	PrimaryKey() int
	SetPrimaryKey(id int)
	UniqueFields() []UniqueField
}

// All returns one pointer per catalog table, in dependency order, for
// migrations and schema tooling.
func All() []any {
	return []any{&Category{}, &Example{}, &Algorithm{}}
}
