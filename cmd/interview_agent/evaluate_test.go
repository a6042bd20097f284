package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-scorer/internal/types"
)

const sampleResponse = "I led the migration of our billing system to microservices. " +
	"For example, we split the payment service first and used a database per service, " +
	"which reduced deploy times by 80 percent and removed the worst coupling."

const sampleExternalEval = `{
	"overall_score": 8,
	"technical_depth": 4,
	"communication_clarity": 4,
	"relevance_to_role": 5,
	"specific_examples": 4,
	"problem_solving_approach": 4,
	"strengths": ["Concrete migration experience"],
	"improvements": ["More detail on rollback strategy"],
	"technical_keywords_used": ["microservices", "database"],
	"demonstrates_experience": true,
	"shows_leadership": true,
	"mentions_metrics": true,
	"brief_feedback": "Strong, detailed answer."
}`

func TestEvaluateCommand_MissingQuestion(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate", "--response", sampleResponse)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestEvaluateCommand_NeitherResponseSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate", "--question", "Tell me about a hard problem.")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --response or --response-file must be provided")
}

func TestEvaluateCommand_BothResponseSources(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	responseFile := filepath.Join(tmpDir, "response.txt")
	require.NoError(t, os.WriteFile(responseFile, []byte(sampleResponse), 0644))

	cmd := exec.Command(binaryPath, "evaluate",
		"--question", "Tell me about a hard problem.",
		"--response", sampleResponse,
		"--response-file", responseFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestEvaluateCommand_ExternalAndLiveConflict(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	externalFile := filepath.Join(tmpDir, "external.json")
	require.NoError(t, os.WriteFile(externalFile, []byte(sampleExternalEval), 0644))

	cmd := exec.Command(binaryPath, "evaluate",
		"--question", "Tell me about a hard problem.",
		"--response", sampleResponse,
		"--external-eval", externalFile,
		"--live")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestEvaluateCommand_EmptyResponse(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate",
		"--question", "Tell me about a hard problem.",
		"--response", "   ")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "response text is empty")
}

func TestEvaluateCommand_HeuristicEvaluation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate",
		"--question", "Describe a challenging technical problem you solved.",
		"--response", sampleResponse)
	cmd.Env = envWithout("GEMINI_API_KEY")
	stdout, err := cmd.Output()
	require.NoError(t, err, "evaluate should work offline")

	var evaluation types.ComprehensiveEvaluation
	require.NoError(t, json.Unmarshal(stdout, &evaluation))

	assert.True(t, evaluation.UsedFallback)
	assert.Equal(t, "technical", evaluation.Category)
	assert.GreaterOrEqual(t, evaluation.FinalOverallScore, 1.0)
	assert.LessOrEqual(t, evaluation.FinalOverallScore, 10.0)
	assert.NotEmpty(t, evaluation.Strengths)
}

func TestEvaluateCommand_ExternalEvalFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	externalFile := filepath.Join(tmpDir, "external.json")
	require.NoError(t, os.WriteFile(externalFile, []byte(sampleExternalEval), 0644))

	cmd := exec.Command(binaryPath, "evaluate",
		"--question", "Describe a challenging technical problem you solved.",
		"--response", sampleResponse,
		"--category", "behavioral",
		"--external-eval", externalFile)
	stdout, err := cmd.Output()
	require.NoError(t, err)

	var evaluation types.ComprehensiveEvaluation
	require.NoError(t, json.Unmarshal(stdout, &evaluation))

	assert.False(t, evaluation.UsedFallback)
	assert.Equal(t, "behavioral", evaluation.Category)
	assert.Equal(t, 8.0, evaluation.External.OverallScore)
}

func TestEvaluateCommand_MalformedExternalFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	externalFile := filepath.Join(tmpDir, "external.json")
	require.NoError(t, os.WriteFile(externalFile, []byte("this is not json"), 0644))

	cmd := exec.Command(binaryPath, "evaluate",
		"--question", "Describe a challenging technical problem you solved.",
		"--response", sampleResponse,
		"--external-eval", externalFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to parse external evaluation")
}

func TestEvaluateCommand_WritesOutputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "evaluation.json")

	cmd := exec.Command(binaryPath, "evaluate",
		"--question", "Describe a challenging technical problem you solved.",
		"--response", sampleResponse,
		"--out", outputFile)
	cmd.Env = envWithout("GEMINI_API_KEY")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))
	assert.Contains(t, string(output), outputFile)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var evaluation types.ComprehensiveEvaluation
	require.NoError(t, json.Unmarshal(data, &evaluation))
	assert.NotZero(t, evaluation.FinalOverallScore)
}
