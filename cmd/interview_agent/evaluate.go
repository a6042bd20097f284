package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scorer/internal/observability"
	"github.com/jonathan/interview-scorer/internal/schemas"
	"github.com/jonathan/interview-scorer/internal/scoring"
	"github.com/jonathan/interview-scorer/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a single interview response",
	Long:  "Evaluate one question/response pair. The model judgment comes from a pre-recorded evaluation file (--external-eval), a live model call (--live), or the deterministic heuristic when neither is given.",
	RunE:  runEvaluate,
}

var (
	evaluateQuestion     string
	evaluateResponse     string
	evaluateResponseFile string
	evaluateCategory     string
	evaluateExternalFile string
	evaluateLive         bool
	evaluateOutputFile   string
	evaluateVerbose      bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateQuestion, "question", "q", "", "Interview question text (required)")
	evaluateCmd.Flags().StringVar(&evaluateResponse, "response", "", "Candidate response text")
	evaluateCmd.Flags().StringVar(&evaluateResponseFile, "response-file", "", "Path to a file with the candidate response")
	evaluateCmd.Flags().StringVarP(&evaluateCategory, "category", "c", "technical", "Question category")
	evaluateCmd.Flags().StringVar(&evaluateExternalFile, "external-eval", "", "Path to a JSON file with a recorded model evaluation")
	evaluateCmd.Flags().BoolVar(&evaluateLive, "live", false, "Obtain the model evaluation live (requires GEMINI_API_KEY)")
	evaluateCmd.Flags().StringVarP(&evaluateOutputFile, "out", "o", "", "Write result JSON to this file instead of stdout")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := evaluateCmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	if evaluateResponse == "" && evaluateResponseFile == "" {
		return fmt.Errorf("either --response or --response-file must be provided")
	}
	if evaluateResponse != "" && evaluateResponseFile != "" {
		return fmt.Errorf("--response and --response-file are mutually exclusive; provide only one")
	}
	if evaluateExternalFile != "" && evaluateLive {
		return fmt.Errorf("--external-eval and --live are mutually exclusive; provide only one")
	}

	responseText := evaluateResponse
	if evaluateResponseFile != "" {
		data, err := os.ReadFile(evaluateResponseFile)
		if err != nil {
			return fmt.Errorf("failed to read response file: %w", err)
		}
		responseText = string(data)
	}
	if strings.TrimSpace(responseText) == "" {
		return fmt.Errorf("response text is empty")
	}

	external, err := obtainExternalEvaluation(evaluateQuestion, responseText, evaluateCategory)
	if err != nil {
		return err
	}

	evaluation := scoring.Evaluate(evaluateQuestion, responseText, evaluateCategory, external)
	validateEvaluationAdvisory(&evaluation)

	if evaluateVerbose {
		observability.NewPrinter(os.Stdout).PrintEvaluation(&evaluation)
	}

	return writeJSONResult(evaluation, evaluateOutputFile, evaluateVerbose)
}

// obtainExternalEvaluation resolves the model side of the evaluation. A nil
// return with nil error means heuristic-only scoring.
func obtainExternalEvaluation(question, response, category string) (*types.ExternalEvaluation, error) {
	if evaluateExternalFile != "" {
		data, err := os.ReadFile(evaluateExternalFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read external evaluation file: %w", err)
		}
		external, err := scoring.ParseExternalEvaluation(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse external evaluation: %w", err)
		}
		return &external, nil
	}

	if !evaluateLive {
		return nil, nil
	}

	ctx := context.Background()
	c, err := buildComponents(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if c.client == nil {
		return nil, fmt.Errorf("--live requires GEMINI_API_KEY")
	}

	external, err := scoring.JudgeResponse(ctx, c.client, question, response, category)
	if err != nil {
		// Degrade the same way the session manager does: heuristic scoring,
		// visible through used_fallback in the output.
		fmt.Fprintf(os.Stderr, "warning: model evaluation failed, using heuristic scoring: %v\n", err)
		return nil, nil
	}
	return external, nil
}

// validateEvaluationAdvisory checks the result against the shipped evaluation
// schema. Failures warn and never reject: range clamping upstream is the hard
// guarantee, the schema is a tripwire for drift.
func validateEvaluationAdvisory(evaluation *types.ComprehensiveEvaluation) {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "evaluation.schema.json"))
	if schemaPath == "" {
		return
	}
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return
	}
	jsonBytes, err := json.Marshal(evaluation)
	if err != nil {
		return
	}
	if err := schemas.ValidateJSONString(string(schemaContent), string(jsonBytes)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: evaluation does not conform to %s: %v\n", schemaPath, err)
	}
}
