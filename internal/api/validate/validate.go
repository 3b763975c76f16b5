package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email checks shape only; deliverability is the auth provider's problem.
func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// Password mirrors the provider's minimum so obviously bad input fails
// before a network round trip.
func Password(v string) error {
	if v == "" {
		return fmt.Errorf("password is required")
	}
	if len(v) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// JSONObject checks that a raw payload is a JSON object, not a scalar or array.
func JSONObject(field string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("%s is required", field)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("%s must be a JSON object", field)
	}
	return nil
}
