package enums

import "fmt"

// Engine identifies the storage engine backing the record store.
type Engine string

const (
	EngineSQLite Engine = "sqlite"
)

var validEngines = []Engine{
	EngineSQLite,
}

// String implements fmt.Stringer.
func (e Engine) String() string {
	return string(e)
}

// IsValid reports whether the engine is supported.
func (e Engine) IsValid() bool {
	for _, candidate := range validEngines {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEngine converts a raw string into an Engine.
func ParseEngine(value string) (Engine, error) {
	for _, candidate := range validEngines {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid engine %q", value)
}
