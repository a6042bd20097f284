package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scorer/internal/fetch"
	"github.com/jonathan/interview-scorer/internal/interview"
	"github.com/jonathan/interview-scorer/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for interview sessions, response scoring, and candidate matching. Without GEMINI_API_KEY the server runs in heuristic-only mode.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	c, err := buildComponents(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	port := servePort
	if port == 0 {
		port = c.cfg.Server.Port
	}

	manager := interview.NewManager(interview.NewMemoryStore(), interview.ManagerOptions{
		Client:           c.client,
		Matcher:          c.matcher,
		Logger:           c.logger,
		DefaultQuestions: c.cfg.Interview.DefaultQuestions,
		MinQuestions:     c.cfg.Interview.MinQuestions,
		MaxQuestions:     c.cfg.Interview.MaxQuestions,
	})

	fetcherConfig := fetch.DefaultCachedFetcherConfig()
	fetcherConfig.RenderSPA = c.cfg.Fetch.RenderSPA

	srv, err := server.New(server.Config{
		Port:           port,
		MaxUploadBytes: c.cfg.Server.MaxUploadBytes,
		SessionTimeout: c.cfg.Interview.SessionTimeout,
		Manager:        manager,
		Matcher:        c.matcher,
		Fetcher:        fetch.NewCachedFetcher(fetcherConfig),
		Client:         c.client,
		Logger:         c.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if c.client == nil {
		fmt.Println("GEMINI_API_KEY not set: running in heuristic-only mode (curated questions, rule-based scoring, no matching)")
	}

	return srv.Start()
}
