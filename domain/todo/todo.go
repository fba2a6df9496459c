package todo

import (
	"strings"

	"todoapi/pkg/errors"
)

// MaxTitleLength bounds the stored title after trimming.
const MaxTitleLength = 500

// Todo is the sole entity of the service. The JSON shape is the public
// API shape; the dynamodbav tags match the table's attribute names,
// where the key attribute is todoId.
type Todo struct {
	ID          string `json:"id" dynamodbav:"todoId"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	Completed   bool   `json:"completed" dynamodbav:"completed"`
	CreatedAt   string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// New builds a fully-formed record for insertion. Title and description
// are trimmed; the trimmed title must be non-empty. CreatedAt and
// UpdatedAt are both set to now.
func New(id, title, description, now string) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.NewValidationError(
			errors.CodeInvalidTitle,
			"Title is required and must be a non-empty string",
		)
	}
	if len(title) > MaxTitleLength {
		return nil, errors.NewValidationError(
			errors.CodeInvalidTitle,
			"Title is too long",
		)
	}

	return &Todo{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateFields is the partial field set of an update request. A nil
// pointer means the field was absent; validation never confuses absent
// with zero-valued.
type UpdateFields struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether no recognized field is present.
func (f UpdateFields) IsEmpty() bool {
	return f.Title == nil && f.Description == nil && f.Completed == nil
}

// Normalize trims the present string fields in place and validates
// them. A present title must be non-empty after trimming. Description
// cannot be invalid, only absent.
func (f *UpdateFields) Normalize() error {
	if f.IsEmpty() {
		return errors.NewValidationError(
			errors.CodeNoUpdates,
			"No valid fields to update",
		)
	}
	if f.Title != nil {
		title := strings.TrimSpace(*f.Title)
		if title == "" {
			return errors.NewValidationError(
				errors.CodeInvalidTitle,
				"Title must be a non-empty string",
			)
		}
		if len(title) > MaxTitleLength {
			return errors.NewValidationError(
				errors.CodeInvalidTitle,
				"Title is too long",
			)
		}
		f.Title = &title
	}
	if f.Description != nil {
		description := strings.TrimSpace(*f.Description)
		f.Description = &description
	}
	return nil
}

// Apply writes the present fields onto a record and refreshes
// UpdatedAt. CreatedAt is never touched.
func (f UpdateFields) Apply(t *Todo, updatedAt string) {
	if f.Title != nil {
		t.Title = *f.Title
	}
	if f.Description != nil {
		t.Description = *f.Description
	}
	if f.Completed != nil {
		t.Completed = *f.Completed
	}
	t.UpdatedAt = updatedAt
}
