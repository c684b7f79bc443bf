package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func intptr(v int) *int           { return &v }
func floatptr(v float64) *float64 { return &v }

func timeAt(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}
