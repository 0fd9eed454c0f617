//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON map so tests can drop or
// overwrite fields the typed struct would always send.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Nested applies mutate to the object stored under section, e.g. "customer".
func Nested(section string, mutate func(map[string]any)) func(map[string]any) {
	return func(m map[string]any) {
		if sub, ok := m[section].(map[string]any); ok {
			mutate(sub)
		}
	}
}
