package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scorer/internal/fetch"
	"github.com/jonathan/interview-scorer/internal/ingestion"
	"github.com/jonathan/interview-scorer/internal/observability"
	"github.com/jonathan/interview-scorer/internal/parsing"
	"github.com/jonathan/interview-scorer/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Extract a candidate profile from a resume (.pdf, .txt, .md), fetch or read the job description, and compute the blended semantic/skill match score. Requires GEMINI_API_KEY for embeddings.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchJobURL     string
	matchOutputFile string
	matchRender     bool
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job-file", "j", "", "Path to job description text file")
	matchCmd.Flags().StringVarP(&matchJobURL, "job-url", "u", "", "URL of the job posting")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Write result JSON to this file instead of stdout")
	matchCmd.Flags().BoolVar(&matchRender, "render", false, "Render JS-heavy postings with a headless browser (requires Chrome)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchJobFile == "" && matchJobURL == "" {
		return fmt.Errorf("either --job-file or --job-url must be provided")
	}
	if matchJobFile != "" && matchJobURL != "" {
		return fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	c, err := buildComponents(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if c.matcher == nil {
		return fmt.Errorf("matching requires an embedding provider: set GEMINI_API_KEY")
	}

	resumeText, _, err := ingestion.ReadDocument(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobDescription, jobMeta, err := loadJobDescription(ctx, matchJobFile, matchJobURL)
	if err != nil {
		return err
	}

	candidate, err := parsing.ExtractCandidate(ctx, c.client, resumeText)
	if err != nil {
		return fmt.Errorf("failed to extract candidate profile: %w", err)
	}

	match, err := c.matcher.ComputeMatch(ctx, *candidate, jobDescription)
	if err != nil {
		return fmt.Errorf("failed to compute match: %w", err)
	}

	result := struct {
		Candidate types.CandidateRecord `json:"candidate"`
		Match     types.MatchResult     `json:"match"`
		Job       *ingestion.Metadata   `json:"job,omitempty"`
	}{Candidate: *candidate, Match: match, Job: jobMeta}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCandidate(candidate)
		printer.PrintMatchResult(&match)
	}

	return writeJSONResult(result, matchOutputFile, matchVerbose)
}

// loadJobDescription reads the job description from a local file or a
// posting URL. URL fetches go through the platform-aware cached fetcher,
// with headless rendering when --render is set.
func loadJobDescription(ctx context.Context, jobFile, jobURL string) (string, *ingestion.Metadata, error) {
	if jobFile != "" {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read job file: %w", err)
		}
		text := ingestion.CleanText(string(data))
		if strings.TrimSpace(text) == "" {
			return "", nil, fmt.Errorf("job file %s contains no usable text", jobFile)
		}
		meta := ingestion.NewMetadata(text, "")
		meta.Source = jobFile
		return text, meta, nil
	}

	fetcherConfig := fetch.DefaultCachedFetcherConfig()
	fetcherConfig.RenderSPA = matchRender
	text, meta, err := ingestion.IngestFromURL(ctx, fetch.NewCachedFetcher(fetcherConfig), jobURL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, meta, nil
}

// writeJSONResult marshals v and writes it to outputFile, or to stdout when
// outputFile is empty. In verbose mode the JSON is suppressed from stdout so
// the human-readable summary stays readable.
func writeJSONResult(v any, outputFile string, verbose bool) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
		}
		fmt.Fprintf(os.Stdout, "Result written to %s\n", outputFile)
		return nil
	}

	if !verbose {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	}
	return nil
}
