package domain

import "fmt"

// Category-specific validation errors
var (
	// ErrCategoryNameEmpty is returned when a category's name is empty.
	// Matches ErrValidation via errors.Is.
	ErrCategoryNameEmpty = fmt.Errorf("%w: category name cannot be empty", ErrValidation)
)

// Category groups related posts. Categories are referenced, not owned, by
// posts: a category cannot be deleted while posts still reference it.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCategory creates a new Category with the given name and description.
// The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewCategory(name, description string) (*Category, error) {
	category := &Category{
		Name:        name,
		Description: description,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}
	return nil
}
