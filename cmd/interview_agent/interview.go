package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scorer/internal/ingestion"
	"github.com/jonathan/interview-scorer/internal/interview"
	"github.com/jonathan/interview-scorer/internal/observability"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive terminal interview",
	Long:  "Conduct a question/answer interview in the terminal. Answers are scored as they come in and a full report is produced at the end. Works offline; GEMINI_API_KEY enables personalized questions and model judging.",
	RunE:  runInterview,
}

var (
	interviewName       string
	interviewRole       string
	interviewResumeFile string
	interviewJobFile    string
	interviewQuestions  int
	interviewOutputFile string
)

func init() {
	interviewCmd.Flags().StringVar(&interviewName, "name", "", "Candidate name (prompted when omitted)")
	interviewCmd.Flags().StringVar(&interviewRole, "role", "", "Role being interviewed for (prompted when omitted)")
	interviewCmd.Flags().StringVarP(&interviewResumeFile, "resume", "r", "", "Path to resume file")
	interviewCmd.Flags().StringVarP(&interviewJobFile, "job-file", "j", "", "Path to job description text file")
	interviewCmd.Flags().IntVarP(&interviewQuestions, "questions", "n", 0, "Number of questions (0 uses the configured default)")
	interviewCmd.Flags().StringVarP(&interviewOutputFile, "out", "o", "", "Write the full session report JSON to this file")

	rootCmd.AddCommand(interviewCmd)
}

const answerSelectFinish = "Finish the interview now"

func runInterview(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	c, err := buildComponents(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	input, err := collectSessionInput()
	if err != nil {
		return err
	}

	manager := interview.NewManager(interview.NewMemoryStore(), interview.ManagerOptions{
		Client:           c.client,
		Matcher:          c.matcher,
		Logger:           c.logger,
		DefaultQuestions: c.cfg.Interview.DefaultQuestions,
		MinQuestions:     c.cfg.Interview.MinQuestions,
		MaxQuestions:     c.cfg.Interview.MaxQuestions,
	})

	session, err := manager.CreateSession(ctx, *input)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if session.Candidate != nil {
		printer.PrintCandidate(session.Candidate)
	}
	if session.Match.Computed {
		printer.PrintMatchResult(&session.Match)
	}
	if c.client == nil {
		fmt.Println("Running offline: curated questions and heuristic scoring.")
	}
	fmt.Printf("\nStarting interview with %d questions. Finish each answer with an empty line.\n", session.TotalQuestions)

	stdin := bufio.NewReader(os.Stdin)
	if err := askQuestions(ctx, manager, session.ID, stdin); err != nil {
		return err
	}

	report, err := manager.CompleteSession(session.ID)
	if err != nil {
		if errors.Is(err, interview.ErrNoResponses) {
			fmt.Println("\nNo responses recorded; there is nothing to report.")
			return nil
		}
		return fmt.Errorf("failed to complete session: %w", err)
	}

	fmt.Printf("\nInterview complete. Overall score %.1f/10, recommendation: %s (hire probability %.0f%%)\n",
		report.Performance.OverallScore,
		report.Performance.Recommendation,
		report.Performance.HireProbability)
	printer.PrintAggregateReport(&report.Aggregate)
	printer.PrintInsights(&report.Insights)

	if interviewOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(interviewOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write report file %s: %w", interviewOutputFile, err)
		}
		fmt.Printf("Full report written to %s\n", interviewOutputFile)
	}

	return nil
}

// collectSessionInput assembles the session parameters, prompting for
// anything not supplied through flags.
func collectSessionInput() (*interview.CreateSessionInput, error) {
	name := interviewName
	if name == "" {
		prompt := promptui.Prompt{Label: "Candidate name", Default: "Anonymous Candidate"}
		value, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		name = value
	}

	role := interviewRole
	if role == "" {
		prompt := promptui.Prompt{Label: "Role (optional)"}
		value, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		role = value
	}

	resumeFile := interviewResumeFile
	if resumeFile == "" {
		prompt := promptui.Prompt{Label: "Resume file (optional, Enter to skip)"}
		value, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		resumeFile = strings.TrimSpace(value)
	}

	var resumeText string
	if resumeFile != "" {
		text, _, err := ingestion.ReadDocument(resumeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume: %w", err)
		}
		resumeText = text
	}

	var jobDescription string
	if interviewJobFile != "" {
		data, err := os.ReadFile(interviewJobFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file: %w", err)
		}
		jobDescription = ingestion.CleanText(string(data))
	}

	numQuestions := interviewQuestions
	if numQuestions == 0 {
		prompt := promptui.Prompt{
			Label:    "Number of questions (Enter for default)",
			Validate: validateQuestionCount,
		}
		value, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			numQuestions, _ = strconv.Atoi(trimmed)
		}
	}

	return &interview.CreateSessionInput{
		CandidateName:  name,
		Role:           role,
		JobDescription: jobDescription,
		ResumeText:     resumeText,
		NumQuestions:   numQuestions,
	}, nil
}

// validateQuestionCount accepts an empty value (use the default) or a
// positive integer. Out-of-range counts are clamped later, not rejected.
func validateQuestionCount(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 1 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// askQuestions runs the question/answer loop until the planned questions are
// exhausted or the candidate finishes early.
func askQuestions(ctx context.Context, manager *interview.Manager, sessionID string, stdin *bufio.Reader) error {
	for {
		next, err := manager.NextQuestion(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to get next question: %w", err)
		}
		if next.Completed {
			return nil
		}

		question := next.Question
		fmt.Printf("\nQuestion %d of %d [%s]\n%s\n\n", question.Number, next.TotalQuestions, question.Category, question.Text)

		answer, finished, err := collectAnswer(stdin)
		if err != nil {
			return err
		}
		if finished {
			return nil
		}

		result, err := manager.SubmitResponse(ctx, sessionID, question.ID, answer)
		if err != nil {
			return fmt.Errorf("failed to submit response: %w", err)
		}
		fmt.Printf("Score: %.1f/10 - %s\n", result.Score, result.Feedback)
	}
}

// collectAnswer reads one answer, re-prompting on empty input. finished is
// true when the candidate chose to end the interview early.
func collectAnswer(stdin *bufio.Reader) (answer string, finished bool, err error) {
	for {
		answer, err = readMultiline(stdin)
		if err != nil {
			return "", false, fmt.Errorf("failed to read answer: %w", err)
		}
		if answer != "" {
			return answer, false, nil
		}

		choice := promptui.Select{
			Label: "Empty answer",
			Items: []string{"Answer again", answerSelectFinish},
		}
		_, selected, selectErr := choice.Run()
		if selectErr != nil || selected == answerSelectFinish {
			return "", true, nil
		}
	}
}

// readMultiline reads lines until a blank line or EOF and returns them joined
// and trimmed.
func readMultiline(reader *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if line == "" {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
