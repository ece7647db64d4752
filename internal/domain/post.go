package domain

import (
	"fmt"
	"time"
)

// Post-specific validation errors. All match ErrValidation via errors.Is.
var (
	// ErrPostTitleEmpty is returned when a post's title is empty.
	ErrPostTitleEmpty = fmt.Errorf("%w: post title cannot be empty", ErrValidation)

	// ErrPostTitleTooShort is returned when a post's title is shorter than 2 characters.
	ErrPostTitleTooShort = fmt.Errorf("%w: post title must have at least 2 characters", ErrValidation)

	// ErrPostDescriptionEmpty is returned when a post's description is empty.
	ErrPostDescriptionEmpty = fmt.Errorf("%w: post description cannot be empty", ErrValidation)

	// ErrPostContentEmpty is returned when a post's content is empty.
	ErrPostContentEmpty = fmt.Errorf("%w: post content cannot be empty", ErrValidation)

	// ErrPostCategoryEmpty is returned when a post has no category reference.
	ErrPostCategoryEmpty = fmt.Errorf("%w: post category cannot be empty", ErrValidation)
)

// Post represents a blog post. A post belongs to exactly one category and
// exclusively owns its comments: deleting a post deletes its comments.
// The title is unique across all posts, enforced by the store.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CategoryID  int64     `json:"category_id"`
	Comments    []Comment `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPost creates a new Post with the given fields and sets the
// creation/update timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewPost(title, description, content string, categoryID int64) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		Title:       title,
		Description: description,
		Content:     content,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.Title == "" {
		return ErrPostTitleEmpty
	}

	if len(p.Title) < 2 {
		return ErrPostTitleTooShort
	}

	if p.Description == "" {
		return ErrPostDescriptionEmpty
	}

	if p.Content == "" {
		return ErrPostContentEmpty
	}

	if p.CategoryID == 0 {
		return ErrPostCategoryEmpty
	}

	return nil
}

// Update replaces the post's mutable fields and refreshes the update
// timestamp. The ID and comments are left untouched.
// Returns an error if the resulting post is invalid.
func (p *Post) Update(title, description, content string, categoryID int64) error {
	origTitle, origDescription := p.Title, p.Description
	origContent, origCategoryID := p.Content, p.CategoryID

	p.Title = title
	p.Description = description
	p.Content = content
	p.CategoryID = categoryID

	if err := p.Validate(); err != nil {
		p.Title, p.Description = origTitle, origDescription
		p.Content, p.CategoryID = origContent, origCategoryID
		return err
	}

	p.UpdatedAt = time.Now().UTC()
	return nil
}
