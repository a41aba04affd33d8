package simulate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	driver := New()

	first, err := driver.Generate(context.Background(), "explain photosynthesis")
	require.NoError(t, err)
	second, err := driver.Generate(context.Background(), "explain photosynthesis")
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, MODEL, first.Model)
}

func TestGenerateFixedResponse(t *testing.T) {
	driver := NewWithResponse("canned")

	result, err := driver.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "canned", result.Content)
}

func TestGenerateInjectedError(t *testing.T) {
	driver := NewWithError(assert.AnError)

	_, err := driver.Generate(context.Background(), "anything")
	assert.ErrorIs(t, err, assert.AnError)
}
