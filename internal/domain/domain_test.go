package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// marshalJSON serializes v and returns the JSON as a string, failing the
// test on error.
func marshalJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
