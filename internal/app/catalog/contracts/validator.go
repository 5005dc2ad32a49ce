package contracts

// Validator checks a DTO's field constraints. A failed check returns a
// *domain.ValidationError.
type Validator interface {
	Validate(v any) error
}
