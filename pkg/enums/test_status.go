package enums

import "fmt"

// TestStatus is the recorded outcome of one test case execution.
type TestStatus string

const (
	TestStatusPass TestStatus = "PASS"
	TestStatusFail TestStatus = "FAIL"
	TestStatusSkip TestStatus = "SKIP"
)

var validTestStatuses = []TestStatus{
	TestStatusPass,
	TestStatusFail,
	TestStatusSkip,
}

// String implements fmt.Stringer.
func (s TestStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TestStatus.
func (s TestStatus) IsValid() bool {
	for _, candidate := range validTestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTestStatus converts raw input into a TestStatus.
func ParseTestStatus(value string) (TestStatus, error) {
	for _, candidate := range validTestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid test status %q", value)
}
