package domain

// Known gender values. The empty string is a valid "unspecified" value
// carried over from registration.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnset  = ""
)

// User represents a registered Unitip account. Accounts are created and
// destroyed outside this service; the profile endpoints only ever read
// them or update the mutable fields (name and gender).
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
}

// ValidGender reports whether g is an accepted gender value.
func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnset:
		return true
	}
	return false
}

// ValidateProfileUpdate checks the mutable profile fields.
// Returns a ValidationError naming the offending field.
func ValidateProfileUpdate(name, gender string) error {
	if name == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyName)
	}
	if !ValidGender(gender) {
		return NewValidationError("gender", "must be male, female or empty", ErrInvalidGender)
	}
	return nil
}
