package booking

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// ValidationErrors maps field name → message for the booking form.
// Validation runs before any write; on failure nothing is persisted.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	return "invalid booking fields: " + strings.Join(fields, ", ")
}

// Validate checks the required booking fields.
func Validate(b *Booking) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(b.Name) == "" {
		errs["name"] = "name is required"
	}
	number := strings.TrimSpace(b.Number)
	if number == "" {
		errs["number"] = "contact number is required"
	} else if !govalidator.IsNumeric(number) {
		errs["number"] = "contact number must contain digits only"
	}
	if b.Email != "" && !govalidator.IsEmail(b.Email) {
		errs["email"] = "invalid email address"
	}
	if strings.TrimSpace(b.StartDate) == "" {
		errs["start_date"] = "start date is required"
	}
	if b.Pax <= 0 {
		errs["pax"] = "pax must be a positive number"
	}
	if b.RatePlan == "" {
		errs["rate_plan"] = "rate plan is required"
	}
	if b.FoodType == "" {
		errs["food_type"] = "food type is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
