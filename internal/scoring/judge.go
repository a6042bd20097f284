package scoring

import (
	"context"
	"fmt"

	"github.com/jonathan/interview-scorer/internal/llm"
	"github.com/jonathan/interview-scorer/internal/prompts"
	"github.com/jonathan/interview-scorer/internal/types"
)

// JudgeResponse asks the LLM to evaluate one interview response.
// Returns an error when generation fails or the reply is unusable; the caller
// then evaluates with a nil external evaluation (degraded mode).
func JudgeResponse(ctx context.Context, client llm.Client, question, response, category string) (*types.ExternalEvaluation, error) {
	prompt := prompts.MustRender("evaluation.json", "judge-response", map[string]string{
		"Category": category,
		"Question": question,
		"Response": response,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	eval, err := ParseExternalEvaluation(raw)
	if err != nil {
		return nil, err
	}

	return &eval, nil
}
