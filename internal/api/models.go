package api

import (
	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/service"
)

// Request models

// CreatePostRequest is the request body for creating or updating a post.
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=10"`
	Content     string `json:"content" validate:"required"`
	CategoryID  int64  `json:"category_id" validate:"required"`
}

// CommentRequest is the request body for creating or updating a comment.
type CommentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required,min=10"`
}

// CategoryRequest is the request body for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the request body for authentication. The identifier is the
// username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response models

// PostDTO is the API representation of a post.
type PostDTO struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	CategoryID  int64        `json:"category_id"`
	Comments    []CommentDTO `json:"comments"`
}

// PostDTOV2 extends the post representation with tags for the v2 endpoint.
type PostDTOV2 struct {
	PostDTO
	Tags []string `json:"tags"`
}

// PostPageResponse is one page of posts plus pagination metadata.
type PostPageResponse struct {
	Content       []PostDTO `json:"content"`
	PageNo        int       `json:"pageNo"`
	PageSize      int       `json:"pageSize"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Last          bool      `json:"last"`
}

// CommentDTO is the API representation of a comment.
type CommentDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Body  string `json:"body"`
}

// CategoryDTO is the API representation of a category.
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AuthResponse carries the issued token after registration or login.
type AuthResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Conversions. Each mapping is written out explicitly so the wire shape of
// every response is visible at the call site.

func toPostDTO(post *domain.Post) PostDTO {
	comments := make([]CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, toCommentDTO(&post.Comments[i]))
	}
	return PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		CategoryID:  post.CategoryID,
		Comments:    comments,
	}
}

// toPostDTOV2 builds the v2 representation. The tag list is a fixed
// placeholder until per-post tags are stored.
func toPostDTOV2(post *domain.Post) PostDTOV2 {
	return PostDTOV2{
		PostDTO: toPostDTO(post),
		Tags:    []string{"Java", "AWS"},
	}
}

func toPostPageResponse(page *service.PostPage) PostPageResponse {
	content := make([]PostDTO, 0, len(page.Posts))
	for _, post := range page.Posts {
		content = append(content, toPostDTO(post))
	}
	return PostPageResponse{
		Content:       content,
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Last:          page.Last,
	}
}

func toCommentDTO(comment *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:    comment.ID,
		Name:  comment.Name,
		Email: comment.Email,
		Body:  comment.Body,
	}
}

func toCommentDTOs(comments []*domain.Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentDTO(c))
	}
	return out
}

func toCategoryDTO(category *domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func toCategoryDTOs(categories []*domain.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryDTO(c))
	}
	return out
}
