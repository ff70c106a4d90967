package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictBool(t *testing.T) {
	var req ProductCreate
	require.NoError(t, json.Unmarshal([]byte(`{"featured":true}`), &req))
	assert.True(t, req.Product("p1").Featured)

	req = ProductCreate{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.False(t, req.Product("p1").Featured)

	var te *json.UnmarshalTypeError
	err := json.Unmarshal([]byte(`{"featured":null}`), &req)
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, "featured", te.Field)
	assert.Equal(t, "null", te.Value)

	err = json.Unmarshal([]byte(`{"featured":"yes"}`), &req)
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, "featured", te.Field)
}
