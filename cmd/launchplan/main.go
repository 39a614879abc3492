// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/launchplan-ai/launchplan/api"
	"github.com/launchplan-ai/launchplan/config"
	"github.com/launchplan-ai/launchplan/gateway"
	"github.com/launchplan-ai/launchplan/llm"
	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/marketing"
	"github.com/launchplan-ai/launchplan/mcpserver"
	"github.com/launchplan-ai/launchplan/metrics"
	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/prompts"
	"github.com/launchplan-ai/launchplan/store"
)

const version = "0.1.0"

var (
	debug   bool
	logFile string

	// serve flags
	listenAddr string

	// mcp flags
	mcpHTTPAddr string

	// generate and suggest flags
	attributesFile string
	setValues      []string
	autoIterate    bool
	fullEval       bool
	outputFormat   string
	outputPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "launchplan",
		Short: "Marketing plan generation service",
		Long: `launchplan generates complete marketing plan documents from product intake
forms by orchestrating a pipeline of LLM calls: market research, strategy,
compilation, and quality evaluation.

Providers are configured through environment variables (LLM_PROVIDER,
LLM_MODEL, OLLAMA_BASE_URL, OPENAI_API_KEY, ...). Every deployment falls
back to a local Ollama endpoint when the primary provider fails.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&logFile, "logfile", "l", "", "Path to log file (logs to file in addition to stderr)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server. Plans are persisted to Postgres when DATABASE_URL
is set; otherwise completed plans are only held in memory for polling.`,
		RunE: runServe,
	}
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (defaults to LISTEN_ADDR or :8000)")

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server",
		Long: `Run the MCP server exposing generate_marketing_plan and suggest_field_value
as tools. Serves stdio by default; --http serves streamable HTTP instead.`,
		RunE: runMCP,
	}
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "Serve MCP over streamable HTTP on this address instead of stdio")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a marketing plan and print it",
		Example: `  launchplan generate --set product_name="Trail Mug" --set product_category=drinkware
  launchplan generate --attributes intake.json --auto-iterate --full-eval --format json -o plan.json`,
		RunE: runGenerate,
	}
	generateCmd.Flags().StringVarP(&attributesFile, "attributes", "a", "", "Path to a JSON file with intake attributes")
	generateCmd.Flags().StringArrayVar(&setValues, "set", nil, "Set a single attribute as key=value (repeatable)")
	generateCmd.Flags().BoolVar(&autoIterate, "auto-iterate", false, "Rerun the strategy phase once when the evaluation scores below the quality threshold")
	generateCmd.Flags().BoolVar(&fullEval, "full-eval", false, "Evaluate the document with LLM calls instead of the fast heuristic")
	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", "markdown", "Output format (markdown or json)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the document to a file instead of stdout")

	suggestCmd := &cobra.Command{
		Use:   "suggest <field>",
		Short: "Suggest a value for an intake field",
		Example: `  launchplan suggest competitors --set product_name="Trail Mug"
  launchplan suggest target_primary --attributes intake.json`,
		Args: cobra.ExactArgs(1),
		RunE: runSuggest,
	}
	suggestCmd.Flags().StringVarP(&attributesFile, "attributes", "a", "", "Path to a JSON file with intake attributes")
	suggestCmd.Flags().StringArrayVar(&setValues, "set", nil, "Set a single attribute as key=value (repeatable)")

	rootCmd.AddCommand(serveCmd, mcpCmd, generateCmd, suggestCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() (logger.Logger, error) {
	log, err := logger.New(logger.Options{Debug: debug, File: logFile})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// buildModel wires the configured primary provider with the Ollama fallback.
func buildModel(cfg *config.Config, log logger.Logger, m metrics.Metrics) (llm.LanguageModel, error) {
	primary, fallback, err := cfg.LLM.ServiceConfigs()
	if err != nil {
		return nil, err
	}

	gw, err := gateway.New(primary, fallback, log, m)
	if err != nil {
		return nil, err
	}

	return gw, nil
}

func orchestratorOptions(cfg *config.Config, m metrics.Metrics) []marketing.Option {
	opts := []marketing.Option{marketing.WithMetrics(m)}
	if fullEval || cfg.LLM.EvalMode == config.EvalModeFull {
		opts = append(opts, marketing.WithFullEvaluation())
	}
	return opts
}

// loadAttributes merges the attributes file with --set overrides.
func loadAttributes() (plan.Attributes, error) {
	attrs := plan.Attributes{}

	if attributesFile != "" {
		raw, err := os.ReadFile(attributesFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read attributes file: %w", err)
		}
		if err := json.Unmarshal(raw, &attrs); err != nil {
			return nil, fmt.Errorf("attributes file must contain a JSON object: %w", err)
		}
	}

	for _, kv := range setValues {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", kv)
		}
		attrs[key] = value
	}

	return attrs, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Flush()
	}()

	cfg := config.FromEnv()
	if listenAddr != "" {
		cfg.HTTP.ListenAddr = listenAddr
	}

	m := metrics.NewMetrics(metrics.InstanceInfo{ServiceVersion: version})

	model, err := buildModel(cfg, log, m)
	if err != nil {
		log.Error("unable to configure LLM providers", "error", err.Error())
		return err
	}

	promptLibrary, err := prompts.New()
	if err != nil {
		log.Error("unable to load prompt templates", "error", err.Error())
		return err
	}

	orchestrator := marketing.New(model, promptLibrary, log, orchestratorOptions(cfg, m)...)
	assistant := marketing.NewFieldAssistant(model, promptLibrary, log)

	var planStore api.PlanStore
	if cfg.Store.DatabaseURL != "" {
		st, err := store.New(cfg.Store.DatabaseURL, log)
		if err != nil {
			log.Error("unable to connect to database", "error", err.Error())
			return err
		}
		defer st.Close()

		if err := st.Init(cmd.Context()); err != nil {
			log.Error("unable to initialize database schema", "error", err.Error())
			return err
		}
		planStore = st
	} else {
		log.Warn("DATABASE_URL not set, plans will not be persisted")
	}

	handler := api.New(orchestrator, assistant, planStore, m, log, cfg.HTTP.APIKey)

	server := &http.Server{
		Addr:         cfg.HTTP.ListenAddr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("starting HTTP API server",
		"addr", cfg.HTTP.ListenAddr,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model,
		"eval_mode", cfg.LLM.EvalMode,
		"persistence", planStore != nil,
	)

	return server.ListenAndServe()
}

func runMCP(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Flush()
	}()

	cfg := config.FromEnv()
	m := metrics.NewMetrics(metrics.InstanceInfo{ServiceVersion: version})

	model, err := buildModel(cfg, log, m)
	if err != nil {
		log.Error("unable to configure LLM providers", "error", err.Error())
		return err
	}

	promptLibrary, err := prompts.New()
	if err != nil {
		log.Error("unable to load prompt templates", "error", err.Error())
		return err
	}

	orchestrator := marketing.New(model, promptLibrary, log, orchestratorOptions(cfg, m)...)
	assistant := marketing.NewFieldAssistant(model, promptLibrary, log)

	srv := mcpserver.New(orchestrator, assistant, log)

	if mcpHTTPAddr != "" {
		httpServer := &http.Server{
			Addr:        mcpHTTPAddr,
			Handler:     srv.HTTPHandler(),
			ReadTimeout: 30 * time.Second,
		}
		log.Info("starting MCP server over streamable HTTP", "addr", mcpHTTPAddr)
		return httpServer.ListenAndServe()
	}

	return srv.Run(cmd.Context())
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Flush()
	}()

	attrs, err := loadAttributes()
	if err != nil {
		return err
	}
	if attrs.Str("product_name", "") == "" {
		return fmt.Errorf("product_name is required (use --attributes or --set product_name=...)")
	}

	cfg := config.FromEnv()
	m := metrics.NewMetrics(metrics.InstanceInfo{ServiceVersion: version})

	model, err := buildModel(cfg, log, m)
	if err != nil {
		log.Error("unable to configure LLM providers", "error", err.Error())
		return err
	}

	promptLibrary, err := prompts.New()
	if err != nil {
		log.Error("unable to load prompt templates", "error", err.Error())
		return err
	}

	orchestrator := marketing.New(model, promptLibrary, log, orchestratorOptions(cfg, m)...)

	doc, err := orchestrator.GenerateDocument(cmd.Context(), attrs, autoIterate)
	if err != nil {
		log.Error("generation failed", "error", err.Error())
		return err
	}

	var out []byte
	switch outputFormat {
	case "markdown", "md":
		out = []byte(doc.Markdown())
	case "json":
		out, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("unable to encode document: %w", err)
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown format: %s (supported formats: 'markdown', 'json')", outputFormat)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("unable to write output file: %w", err)
		}
		log.Info("document written", "path", outputPath, "quality_score", doc.Metadata.QualityScore)
		return nil
	}

	_, err = os.Stdout.Write(out)
	return err
}

func runSuggest(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Flush()
	}()

	attrs, err := loadAttributes()
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	m := metrics.NewMetrics(metrics.InstanceInfo{ServiceVersion: version})

	model, err := buildModel(cfg, log, m)
	if err != nil {
		log.Error("unable to configure LLM providers", "error", err.Error())
		return err
	}

	promptLibrary, err := prompts.New()
	if err != nil {
		log.Error("unable to load prompt templates", "error", err.Error())
		return err
	}

	assistant := marketing.NewFieldAssistant(model, promptLibrary, log)

	suggestion, err := assistant.SuggestField(cmd.Context(), args[0], attrs)
	if err != nil {
		log.Error("suggestion failed", "field_name", args[0], "error", err.Error())
		return err
	}

	fmt.Println(suggestion)
	return nil
}
