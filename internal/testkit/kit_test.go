package testkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRun(t *testing.T) {
	kit := NewTestKit()

	result, err := kit.DemoRun(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Manifest.SampleSize)
	assert.Equal(t, 500, result.Manifest.GridPoints)
	assert.Greater(t, result.PosteriorMean, 2.3)
	assert.Less(t, result.PosteriorMean, 2.8)
}
