package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"katalog/internal/models"

	"github.com/go-playground/validator/v10"
)

// Cross-field violations of an update request.
const (
	MsgNoFields           = "must supply at least one field"
	MsgStockRequiresPrice = "updating stock requires price to also be supplied"
)

// Bounds of a product name, mirrored by the min/max tags on the request types.
const (
	NameMinLen = 3
	NameMaxLen = 100
)

// Validator checks request payloads and reports violations as human readable
// messages.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. Field names in messages use the json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateCreate returns every violation of the create rules, or nil.
func (v *Validator) ValidateCreate(req models.CreateProductRequest) []string {
	return v.fieldErrors(req)
}

// ValidateUpdate checks per-field rules first. The cross-field rules are only
// evaluated once every present field is valid.
func (v *Validator) ValidateUpdate(req models.UpdateProductRequest) []string {
	if errs := v.fieldErrors(req); len(errs) > 0 {
		return errs
	}

	if req.Name == nil && req.Price == nil && req.Stock == nil {
		return []string{MsgNoFields}
	}
	if req.Name == nil && req.Stock != nil && req.Price == nil {
		return []string{MsgStockRequiresPrice}
	}
	return nil
}

func (v *Validator) fieldErrors(s any) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, message(fe))
	}
	return messages
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "max":
		return fmt.Sprintf("%s must be between %d and %d characters", field, NameMinLen, NameMaxLen)
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
