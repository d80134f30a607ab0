package client

import (
	"github.com/go-playground/validator/v10"

	"github.com/realtorcrm/authsvc/domain"
)

var validate = validator.New()

// ValidateDraft runs the synchronous client-side checks that must pass
// before any network call: non-empty names, matching passwords of at
// least six characters, a chosen method, and exactly one contact value
// populated for that method. Returns nil when the draft is valid.
func ValidateDraft(d *domain.SignupDraft) *domain.Error {
	details := make(map[string]string)

	if err := validate.Struct(d); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				switch fe.Field() {
				case "FirstName":
					details["first_name"] = "First name is required"
				case "LastName":
					details["last_name"] = "Last name is required"
				case "Password":
					details["password"] = "Password must be at least 6 characters"
				case "ConfirmPassword":
					details["confirmPassword"] = "Please confirm your password"
				case "Email":
					details["email"] = "Enter a valid email address"
				case "Method":
					details["method"] = "Choose a verification method"
				}
			}
		} else {
			return domain.NewValidationError("Invalid form", nil)
		}
	}

	if d.Password != "" && d.ConfirmPassword != "" && d.Password != d.ConfirmPassword {
		details["confirmPassword"] = "Passwords do not match"
	}

	switch d.Method {
	case domain.MethodEmail:
		if d.Email == "" {
			details["email"] = "Email is required for email verification"
		}
		if d.Phone != "" {
			details["phone"] = "Leave phone empty when verifying by email"
		}
	case domain.MethodPhone:
		if d.Phone == "" {
			details["phone"] = "Phone is required for SMS verification"
		}
		if d.Email != "" {
			details["email"] = "Leave email empty when verifying by phone"
		}
	}

	if len(details) > 0 {
		return domain.NewValidationError("Please fix the highlighted fields", details)
	}
	return nil
}
