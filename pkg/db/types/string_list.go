package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of strings as encoded text. Used for the
// triggered rules on fraud alerts, where emission order matters.
type StringList []string

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return l.parseFromString(v)
	case []byte:
		return l.parseFromString(string(v))
	default:
		return fmt.Errorf("StringList: unsupported Scan type %T", src)
	}
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("StringList: marshal: %w", err)
	}
	return string(raw), nil
}

func (l *StringList) parseFromString(s string) error {
	if s == "" {
		*l = StringList{}
		return nil
	}
	out := []string{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return fmt.Errorf("StringList: parse: %w", err)
	}
	*l = StringList(out)
	return nil
}
