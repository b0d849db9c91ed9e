package moderation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessClassifier(t *testing.T) {
	// sh -c stands in for the real model process; it prints two scores the
	// same way run_model.py does.
	clf := NewProcessClassifier("sh", "-c")

	scores, err := clf.Classify(context.Background(), "echo 0.12 0.88")
	require.NoError(t, err)
	assert.InDelta(t, 0.12, scores.Score0, 1e-9)
	assert.InDelta(t, 0.88, scores.Score1, 1e-9)
}

func TestProcessClassifierExecError(t *testing.T) {
	clf := NewProcessClassifier("/nonexistent/classifier", "run_model.py")

	_, err := clf.Classify(context.Background(), "x")
	assert.Error(t, err)
}

func TestProcessClassifierMalformedOutput(t *testing.T) {
	clf := NewProcessClassifier("sh", "-c")

	_, err := clf.Classify(context.Background(), "echo not-a-score")
	assert.Error(t, err)
}
