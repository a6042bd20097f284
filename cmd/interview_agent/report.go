package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scorer/internal/observability"
	"github.com/jonathan/interview-scorer/internal/reporting"
	"github.com/jonathan/interview-scorer/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate evaluated responses into an interview report",
	Long:  "Read evaluated responses from a session export (or a bare array of evaluations), compute aggregate statistics per category, and derive hiring insights.",
	RunE:  runReport,
}

var (
	reportInputFile  string
	reportOutputFile string
	reportVerbose    bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportInputFile, "input", "i", "", "Path to session export JSON or evaluations array (required)")
	reportCmd.Flags().StringVarP(&reportOutputFile, "out", "o", "", "Write result JSON to this file instead of stdout")
	reportCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := reportCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	responses, err := loadResponses(reportInputFile)
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		return fmt.Errorf("no evaluated responses in %s", reportInputFile)
	}

	aggregate := reporting.Aggregate(responses)
	insights := reporting.Insights(aggregate)

	result := struct {
		Aggregate types.AggregateReport   `json:"aggregate_scores"`
		Insights  types.InterviewInsights `json:"insights"`
	}{Aggregate: aggregate, Insights: insights}

	if reportVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAggregateReport(&aggregate)
		printer.PrintInsights(&insights)
	}

	return writeJSONResult(result, reportOutputFile, reportVerbose)
}

// loadResponses reads evaluations from path. Both shapes the system emits are
// accepted: a full session export with a "responses" field, and a bare JSON
// array of evaluations.
func loadResponses(path string) ([]types.ComprehensiveEvaluation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var responses []types.ComprehensiveEvaluation
	if err := json.Unmarshal(data, &responses); err == nil {
		return responses, nil
	}

	var export struct {
		Responses []types.ComprehensiveEvaluation `json:"responses"`
	}
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("input is neither an evaluations array nor a session export: %w", err)
	}
	return export.Responses, nil
}
