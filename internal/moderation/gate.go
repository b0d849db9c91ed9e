package moderation

import (
	"context"

	"github.com/mkravets/safechat/internal/services"
)

// Threshold above which either score flags a message for retraction.
const Threshold = 0.55

type Gate struct {
	classifier services.Classifier
}

func NewGate(classifier services.Classifier) *Gate {
	return &Gate{classifier: classifier}
}

// Flagged applies the retraction policy to a score pair.
func Flagged(s services.Scores) bool {
	return s.Score0 > Threshold || s.Score1 > Threshold
}

// Check classifies the text and applies the threshold policy. On a
// classifier error the caller must fail open: log, no verdict, message
// stays visible.
func (g *Gate) Check(ctx context.Context, text string) (bool, error) {
	scores, err := g.classifier.Classify(ctx, text)
	if err != nil {
		return false, err
	}
	return Flagged(scores), nil
}
