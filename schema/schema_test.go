package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecbench/vector"
)

func upsertRecord(dim int) map[string]any {
	vec := make([]any, dim)
	for i := range vec {
		vec[i] = 0.5
	}

	return map[string]any{
		"id":      "vec-0001",
		"vector":  vec,
		"payload": map[string]any{"source": "unit"},
	}
}

func TestVectorUpsertWellFormed(t *testing.T) {
	c, err := VectorUpsert(1536)
	require.NoError(t, err)
	require.Equal(t, 1536, c.Dim())

	res := c.Validate(upsertRecord(1536))
	assert.True(t, res.Passed)
	assert.Empty(t, res.Violation)
}

func TestVectorUpsertPayloadOptional(t *testing.T) {
	c, err := VectorUpsert(8)
	require.NoError(t, err)

	rec := upsertRecord(8)
	delete(rec, "payload")

	res := c.Validate(rec)
	assert.True(t, res.Passed)
	assert.Empty(t, res.Violation)
}

func TestVectorUpsertShortVector(t *testing.T) {
	c, err := VectorUpsert(1536)
	require.NoError(t, err)

	res := c.Validate(upsertRecord(1535))
	assert.False(t, res.Passed)
	assert.NotEmpty(t, res.Violation)
}

func TestVectorUpsertLongVector(t *testing.T) {
	c, err := VectorUpsert(8)
	require.NoError(t, err)

	res := c.Validate(upsertRecord(9))
	assert.False(t, res.Passed)
	assert.NotEmpty(t, res.Violation)
}

func TestVectorUpsertMissingFields(t *testing.T) {
	c, err := VectorUpsert(8)
	require.NoError(t, err)

	t.Run("id", func(t *testing.T) {
		rec := upsertRecord(8)
		delete(rec, "id")

		res := c.Validate(rec)
		assert.False(t, res.Passed)
		assert.NotEmpty(t, res.Violation)
	})

	t.Run("vector", func(t *testing.T) {
		rec := upsertRecord(8)
		delete(rec, "vector")

		res := c.Validate(rec)
		assert.False(t, res.Passed)
		assert.NotEmpty(t, res.Violation)
	})
}

func TestVectorUpsertWrongTypes(t *testing.T) {
	c, err := VectorUpsert(4)
	require.NoError(t, err)

	t.Run("string element", func(t *testing.T) {
		rec := upsertRecord(4)
		rec["vector"] = []any{0.1, "0.2", 0.3, 0.4}

		res := c.Validate(rec)
		assert.False(t, res.Passed)
		assert.NotEmpty(t, res.Violation)
	})

	t.Run("numeric id", func(t *testing.T) {
		rec := upsertRecord(4)
		rec["id"] = 42

		res := c.Validate(rec)
		assert.False(t, res.Passed)
		assert.NotEmpty(t, res.Violation)
	})

	t.Run("string payload", func(t *testing.T) {
		rec := upsertRecord(4)
		rec["payload"] = "not an object"

		res := c.Validate(rec)
		assert.False(t, res.Passed)
		assert.NotEmpty(t, res.Violation)
	})
}

func TestVectorUpsertIntegerElements(t *testing.T) {
	c, err := VectorUpsert(3)
	require.NoError(t, err)

	rec := upsertRecord(3)
	rec["vector"] = []any{1, 2, 3}

	res := c.Validate(rec)
	assert.True(t, res.Passed)
}

func TestVectorUpsertInvalidDimension(t *testing.T) {
	for _, dim := range []int{0, -3} {
		_, err := VectorUpsert(dim)
		require.Error(t, err)

		var dimErr *vector.ErrInvalidDimension
		require.ErrorAs(t, err, &dimErr)
		assert.Equal(t, dim, dimErr.Dimension)
	}
}

func TestVectorUpsertSchemaShape(t *testing.T) {
	c, err := VectorUpsert(16)
	require.NoError(t, err)

	s := c.Schema()
	require.NotNil(t, s)
	assert.Equal(t, "object", s.Type)
	assert.ElementsMatch(t, []string{"id", "vector"}, s.Required)

	vec := s.Properties["vector"]
	require.NotNil(t, vec)
	require.NotNil(t, vec.MinItems)
	require.NotNil(t, vec.MaxItems)
	assert.Equal(t, 16, *vec.MinItems)
	assert.Equal(t, 16, *vec.MaxItems)
}

func TestValidateBytes(t *testing.T) {
	c, err := VectorUpsert(2)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		res := c.ValidateBytes([]byte(`{"id":"a","vector":[0.1,0.2]}`))
		assert.True(t, res.Passed)
	})

	t.Run("short", func(t *testing.T) {
		res := c.ValidateBytes([]byte(`{"id":"a","vector":[0.1]}`))
		assert.False(t, res.Passed)
		assert.NotEmpty(t, res.Violation)
	})

	t.Run("malformed", func(t *testing.T) {
		res := c.ValidateBytes([]byte(`{"id":`))
		assert.False(t, res.Passed)
		assert.NotEmpty(t, res.Violation)
	})
}
