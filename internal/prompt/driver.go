// Package prompt collects function arguments interactively.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// Driver abstracts the terminal so callers can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

// NewSurveyDriver returns a Driver backed by survey prompts.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

type surveyDriver struct{}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(q, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Static replays scripted answers in order.
type Static struct {
	Answers []string
	pos     int
}

// Input returns the next scripted answer.
func (s *Static) Input(ctx context.Context, _ InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pos >= len(s.Answers) {
		return "", fmt.Errorf("prompt: no scripted answer left")
	}
	answer := s.Answers[s.pos]
	s.pos++
	return answer, nil
}

// Args fills args up to len(params), prompting for each missing parameter.
// Supplied args are kept as-is.
func Args(ctx context.Context, driver Driver, params []string, args []string) ([]string, error) {
	if len(args) >= len(params) {
		return args, nil
	}
	if driver == nil {
		return nil, fmt.Errorf("prompt: driver is required")
	}

	out := append([]string(nil), args...)
	for _, param := range params[len(args):] {
		value, err := driver.Input(ctx, InputConfig{Message: param + ":"})
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}
