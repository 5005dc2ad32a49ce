package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
)

const (
	tagISBNDigits = "isbn_digits"
	tagSlug       = "slug"
	tagNotFuture  = "not_future"
)

var (
	isbnDigitsRe = regexp.MustCompile(`^\d{13}$`)
	slugRe       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Validator checks DTO field constraints and reports every violation at once.
type Validator struct {
	validate *validator.Validate
	clock    clock.Clock
}

// New builds a Validator. clk decides what "today" is for date rules.
func New(clk clock.Clock) *Validator {
	if clk == nil {
		clk = clock.RealClock{}
	}
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), clock: clk}

	v.validate.RegisterTagNameFunc(jsonFieldName)
	v.validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.validate.RegisterValidation(tagISBNDigits, validateISBNDigits)
	_ = v.validate.RegisterValidation(tagSlug, validateSlug)
	_ = v.validate.RegisterValidation(tagNotFuture, v.validateNotFuture)

	return v
}

// Validate returns nil or a *domain.ValidationError listing every violation
// in field order.
func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	out := &domain.ValidationError{Violations: make([]domain.Violation, 0, len(verrs))}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, domain.Violation{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case tagISBNDigits:
		return fmt.Sprintf("%s must be exactly 13 digits", field)
	case tagSlug:
		return fmt.Sprintf("%s must be lowercase words joined by hyphens", field)
	case tagNotFuture:
		return fmt.Sprintf("%s cannot be in the future", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// decimalValue lets numeric tags such as gte compare decimals.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateISBNDigits(fl validator.FieldLevel) bool {
	return isbnDigitsRe.MatchString(fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRe.MatchString(fl.Field().String())
}

// validateNotFuture accepts today and any earlier date. Comparison is by
// calendar date in UTC.
func (v *Validator) validateNotFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !civil.DateOf(t.UTC()).After(clock.Today(v.clock))
}
