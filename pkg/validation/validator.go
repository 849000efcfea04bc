package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/chemflow/pkg/entry"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxIDLength      = 128
	MaxTypeLength    = 128
	MaxFormulaLength = 256
	MaxBatchSize     = 10000
	MinBatchSize     = 1

	// Regular expressions
	idPattern      = regexp.MustCompile(`^[a-zA-Z0-9_.:/-]+$`)
	formulaPattern = regexp.MustCompile(`^[A-Za-z0-9()]*$`)
)

func init() {
	validate = validator.New()
}

// ValidateEntry validates a decoded entry record before it joins a
// population. Structural checks come from the struct tags; format
// checks on the identity fields are applied on top.
func ValidateEntry(e *entry.Entry) error {
	if e == nil {
		return errors.New("entry cannot be nil")
	}

	// Validate using struct tags
	if err := validate.Struct(e); err != nil {
		return formatValidationError(err)
	}

	if len(e.ID) > MaxIDLength {
		return fmt.Errorf("ID: exceeds maximum length of %d characters", MaxIDLength)
	}
	if !idPattern.MatchString(e.ID) {
		return fmt.Errorf("ID: '%s' contains invalid characters", e.ID)
	}

	if len(e.Type) > MaxTypeLength {
		return fmt.Errorf("Type: exceeds maximum length of %d characters", MaxTypeLength)
	}

	if len(e.Formula) > MaxFormulaLength {
		return fmt.Errorf("Formula: exceeds maximum length of %d characters", MaxFormulaLength)
	}
	if !formulaPattern.MatchString(e.Formula) {
		return fmt.Errorf("Formula: '%s' contains invalid characters", e.Formula)
	}

	return nil
}

// ValidateBatchSize validates the size of a write batch
func ValidateBatchSize(size int) error {
	if size < MinBatchSize {
		return fmt.Errorf("batch size must be at least %d, got %d", MinBatchSize, size)
	}
	if size > MaxBatchSize {
		return fmt.Errorf("batch size must not exceed %d, got %d", MaxBatchSize, size)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
