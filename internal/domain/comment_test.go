package domain

import (
	"errors"
	"testing"
)

func TestNewComment(t *testing.T) {
	comment, err := NewComment(1, "Reader", "reader@example.com", "This is a long enough comment body")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if comment.PostID != 1 {
		t.Errorf("Expected post ID 1, got %d", comment.PostID)
	}
	if comment.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
}

func TestCommentValidate(t *testing.T) {
	tests := []struct {
		name    string
		postID  int64
		author  string
		email   string
		body    string
		wantErr error
	}{
		{
			name:    "valid comment",
			postID:  1,
			author:  "Reader",
			email:   "reader@example.com",
			body:    "ten chars!",
			wantErr: nil,
		},
		{
			name:    "missing post reference",
			postID:  0,
			author:  "Reader",
			email:   "reader@example.com",
			body:    "long enough body",
			wantErr: ErrCommentPostEmpty,
		},
		{
			name:    "empty name",
			postID:  1,
			author:  "",
			email:   "reader@example.com",
			body:    "long enough body",
			wantErr: ErrCommentNameEmpty,
		},
		{
			name:    "empty email",
			postID:  1,
			author:  "Reader",
			email:   "",
			body:    "long enough body",
			wantErr: ErrCommentEmailEmpty,
		},
		{
			name:    "malformed email",
			postID:  1,
			author:  "Reader",
			email:   "not-an-email",
			body:    "long enough body",
			wantErr: ErrCommentEmailInvalid,
		},
		{
			name:    "nine character body",
			postID:  1,
			author:  "Reader",
			email:   "reader@example.com",
			body:    "too short",
			wantErr: ErrCommentBodyTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := Comment{
				PostID: tt.postID,
				Name:   tt.author,
				Email:  tt.email,
				Body:   tt.body,
			}
			err := comment.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCommentUpdateRollsBackOnInvalid(t *testing.T) {
	comment, err := NewComment(1, "Reader", "reader@example.com", "original comment body")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err = comment.Update("Reader", "reader@example.com", "short")
	if !errors.Is(err, ErrCommentBodyTooShort) {
		t.Fatalf("Expected error %v, got %v", ErrCommentBodyTooShort, err)
	}

	if comment.Body != "original comment body" {
		t.Errorf("Expected body to be restored, got %q", comment.Body)
	}
}
