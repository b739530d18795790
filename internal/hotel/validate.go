package hotel

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that a listing is fit for persistence: non-empty name,
// city and country, a name inside the plausible 3-200 character window,
// and optional numeric fields within their valid ranges. Records failing
// validation are dropped before they reach the export sink.
func Validate(l *Listing) error {
	if err := validate.Struct(l); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid listing %q: field %s failed %q", l.Name, f.Field(), f.Tag())
		}
		return fmt.Errorf("invalid listing %q: %w", l.Name, err)
	}
	return nil
}

// Valid reports whether a listing passes Validate.
func Valid(l *Listing) bool {
	return Validate(l) == nil
}
