package domain

import (
	"fmt"
	"time"
)

// Comment-specific validation errors. All match ErrValidation via errors.Is.
var (
	// ErrCommentNameEmpty is returned when a comment's author name is empty.
	ErrCommentNameEmpty = fmt.Errorf("%w: comment name cannot be empty", ErrValidation)

	// ErrCommentEmailEmpty is returned when a comment's email is empty.
	ErrCommentEmailEmpty = fmt.Errorf("%w: comment email cannot be empty", ErrValidation)

	// ErrCommentEmailInvalid is returned when a comment's email is malformed.
	ErrCommentEmailInvalid = fmt.Errorf("%w: comment email is not a valid address", ErrValidation)

	// ErrCommentBodyTooShort is returned when a comment's body is shorter
	// than 10 characters.
	ErrCommentBodyTooShort = fmt.Errorf("%w: comment body must be at least 10 characters", ErrValidation)

	// ErrCommentPostEmpty is returned when a comment has no parent post reference.
	ErrCommentPostEmpty = fmt.Errorf("%w: comment post ID cannot be empty", ErrValidation)
)

// Comment represents a reader comment attached to a single post.
// A comment's parent-post reference must match the post addressed in any
// request path that names it; a mismatch is a client error, not a not-found.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewComment creates a new Comment attached to the given post and sets the
// creation/update timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewComment(postID int64, name, email, body string) (*Comment, error) {
	now := time.Now().UTC()
	comment := &Comment{
		PostID:    postID,
		Name:      name,
		Email:     email,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
// Returns an error if any field fails validation.
func (c *Comment) Validate() error {
	if c.PostID == 0 {
		return ErrCommentPostEmpty
	}

	if c.Name == "" {
		return ErrCommentNameEmpty
	}

	if c.Email == "" {
		return ErrCommentEmailEmpty
	}

	if !validateEmailFormat(c.Email) {
		return ErrCommentEmailInvalid
	}

	if len(c.Body) < 10 {
		return ErrCommentBodyTooShort
	}

	return nil
}

// Update replaces the comment's mutable fields and refreshes the update
// timestamp. The ID and parent post are left untouched.
// Returns an error if the resulting comment is invalid.
func (c *Comment) Update(name, email, body string) error {
	origName, origEmail, origBody := c.Name, c.Email, c.Body

	c.Name = name
	c.Email = email
	c.Body = body

	if err := c.Validate(); err != nil {
		c.Name, c.Email, c.Body = origName, origEmail, origBody
		return err
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}
