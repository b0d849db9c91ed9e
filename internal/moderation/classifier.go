package moderation

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mkravets/safechat/internal/services"
)

// ProcessClassifier shells out to the scoring model. The child process takes
// the raw text as its argument and prints two whitespace-separated scores on
// stdout.
type ProcessClassifier struct {
	command string
	script  string
}

func NewProcessClassifier(command, script string) *ProcessClassifier {
	return &ProcessClassifier{command: command, script: script}
}

func (p *ProcessClassifier) Classify(ctx context.Context, text string) (services.Scores, error) {
	cmd := exec.CommandContext(ctx, p.command, p.script, text)

	out, err := cmd.Output()
	if err != nil {
		return services.Scores{}, fmt.Errorf("classifier process: %w", err)
	}

	return ParseScores(string(out))
}

// ParseScores validates the classifier's output line into the typed
// two-score contract. Anything but exactly two parseable numbers is a
// classifier error.
func ParseScores(line string) (services.Scores, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 2 {
		return services.Scores{}, fmt.Errorf("classifier output: expected 2 scores, got %d", len(fields))
	}

	score0, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return services.Scores{}, fmt.Errorf("classifier output: %w", err)
	}

	score1, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return services.Scores{}, fmt.Errorf("classifier output: %w", err)
	}

	return services.Scores{Score0: score0, Score1: score1}, nil
}
