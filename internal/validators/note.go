package validators

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/akimenko/securevault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"

	// FieldCategory targets the note category.
	FieldCategory = "category"
)

// Length bounds measured in unicode characters, not bytes.
const (
	maxTitleLength   = 100
	maxContentLength = 5000
)

// NoteValidator implements the Validator interface for note-related domain
// models: models.Note and models.NotePatch.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Note / *models.Note
//   - models.NotePatch / *models.NotePatch
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// all fields are validated.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NotePatch:
		return v.validateNotePatch(ctx, value, fields...)
	case *models.NotePatch:
		return v.validateNotePatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNote validates a full note. Default validated fields (when none
// specified): Title, Content, Category. Returns the first encountered
// validation error or nil.
func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateText(FieldTitle, note.Title, maxTitleLength); err != nil {
				return err
			}
		case FieldContent:
			if err := validateText(FieldContent, note.Content, maxContentLength); err != nil {
				return err
			}
		case FieldCategory:
			if !note.Category.Valid() {
				return NewInvalidInput(FieldCategory, "unknown category")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNotePatch validates a partial note update. A nil field means
// "do not touch" and is skipped; a supplied field must satisfy the same
// rules as on creation. An entirely empty patch is rejected.
func (v *NoteValidator) validateNotePatch(ctx context.Context, patch models.NotePatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if patch.Title != nil {
				if err := validateText(FieldTitle, *patch.Title, maxTitleLength); err != nil {
					return err
				}
			}
		case FieldContent:
			if patch.Content != nil {
				if err := validateText(FieldContent, *patch.Content, maxContentLength); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	if patch.IsEmpty() {
		return NewInvalidInput("patch", "at least one field must be provided for update")
	}

	return nil
}

// validateText applies the shared text rules: non-blank and a rune-count
// upper bound.
func validateText(field, value string, maxRunes int) error {
	if strings.TrimSpace(value) == "" {
		return NewInvalidInput(field, "must not be empty")
	}

	if err := validation.Validate(value, validation.RuneLength(1, maxRunes)); err != nil {
		return NewInvalidInput(field, err.Error())
	}

	return nil
}
