package enums

import "fmt"

// MethodStatus tracks whether a stored payment method is usable.
type MethodStatus string

const (
	MethodStatusActive   MethodStatus = "active"
	MethodStatusInactive MethodStatus = "inactive"
	MethodStatusExpired  MethodStatus = "expired"
)

var validMethodStatuses = []MethodStatus{
	MethodStatusActive,
	MethodStatusInactive,
	MethodStatusExpired,
}

// String implements fmt.Stringer.
func (m MethodStatus) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MethodStatus.
func (m MethodStatus) IsValid() bool {
	for _, candidate := range validMethodStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMethodStatus converts raw input into a MethodStatus.
func ParseMethodStatus(value string) (MethodStatus, error) {
	for _, candidate := range validMethodStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method status %q", value)
}
