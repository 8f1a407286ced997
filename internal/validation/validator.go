package validation

import (
	"fmt"

	"github.com/blog-api/internal/models"
)

// field pairs a JSON field name with the value received for it
type field struct {
	name  string
	value string
}

// required returns one error per empty field, in declaration order
func required(fields ...field) []models.FieldError {
	var errors []models.FieldError
	for _, f := range fields {
		if f.value == "" {
			errors = append(errors, models.FieldError{
				Field:   f.name,
				Message: fmt.Sprintf("%s is required", f.name),
			})
		}
	}
	return errors
}

// ValidateComment checks that a comment payload carries every required field
func ValidateComment(req *models.CreateCommentRequest) []models.FieldError {
	return required(
		field{"content", req.Content},
		field{"article_id", req.ArticleID.String()},
		field{"author_id", req.AuthorID.String()},
	)
}

// ValidateArticle checks that an article payload carries every required field
func ValidateArticle(req *models.CreateArticleRequest) []models.FieldError {
	return required(
		field{"title", req.Title},
		field{"content", req.Content},
		field{"author_id", req.AuthorID.String()},
	)
}

// ValidateUser checks a user provisioning request
func ValidateUser(req *models.CreateUserRequest) []models.FieldError {
	errors := required(
		field{"email", req.Email},
		field{"name", req.Name},
		field{"password", req.Password},
	)
	if req.Password != "" && len(req.Password) < 8 {
		errors = append(errors, models.FieldError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	return errors
}
