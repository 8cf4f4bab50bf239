package models

import "strings"

// CategoryType tells whether a category groups data structures or algorithms.
type CategoryType string

const (
	CategoryTypeDataStructure CategoryType = "data_structure"
	CategoryTypeAlgorithm     CategoryType = "algorithm"
)

// CategoryTypes lists every recognized CategoryType in display order.
func CategoryTypes() []CategoryType {
	return []CategoryType{CategoryTypeDataStructure, CategoryTypeAlgorithm}
}

func (t CategoryType) Valid() bool {
	for _, known := range CategoryTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Difficulty is the learning level shared by examples and algorithms.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DefaultDifficulty is applied when a write leaves difficulty empty.
const DefaultDifficulty = DifficultyBeginner

func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

func (d Difficulty) Valid() bool {
	for _, known := range Difficulties() {
		if d == known {
			return true
		}
	}
	return false
}

// OrDefault returns d, or DefaultDifficulty when d is empty.
func (d Difficulty) OrDefault() Difficulty {
	if d == "" {
		return DefaultDifficulty
	}
	return d
}

// difficultyOrDefault resets an omitted difficulty. An explicit value is kept
// as-is so validation still sees it.
func difficultyOrDefault(d *Difficulty) Difficulty {
	if d == nil {
		return DefaultDifficulty
	}
	return *d
}

// JoinValues renders enum values as "a, b, c" for error messages.
func JoinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
