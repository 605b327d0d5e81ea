package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/agents"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/config"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/db"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/fetch"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/jobs"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/llm"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/observability"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/pipeline"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/report"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/resume"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

var searchCommand = &cobra.Command{
	Use:   "search",
	Short: "Run the full advice pipeline: search listings, then generate skills, interview, and career guidance",
	Long: `Searches live job listings for the given role and location, then runs the
four-stage agent pipeline (search -> skills gap -> interview prep -> career strategy)
and writes all stage outputs to the report file.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runSearchCmd,
}

var (
	searchConfigPath  string
	searchRole        string
	searchLocation    string
	searchResultCount int
	searchCountry     string
	searchResume      string
	searchReport      string
	searchDatabaseURL string
	searchPostings    int
	searchParallel    bool
	searchVerbose     bool
)

func init() {
	// Config file flag (processed first)
	searchCommand.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	searchCommand.Flags().StringVarP(&searchRole, "role", "r", "", "Job role to search for")
	searchCommand.Flags().StringVarP(&searchLocation, "location", "l", "", "Location to search in")
	searchCommand.Flags().IntVarP(&searchResultCount, "num-results", "n", 0, "Number of listings to request")
	searchCommand.Flags().StringVar(&searchCountry, "country", "", "Two-letter country code for the listings API")
	searchCommand.Flags().StringVar(&searchResume, "resume", "", "Path to a resume PDF for personalized advice (optional)")
	searchCommand.Flags().StringVarP(&searchReport, "report", "o", "", "Path for the plain-text advice report")
	searchCommand.Flags().IntVar(&searchPostings, "enrich-postings", 0, "Fetch full posting pages for up to N listings as extra context")
	searchCommand.Flags().BoolVar(&searchParallel, "parallel", false, "Run independent tail stages concurrently")
	searchCommand.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run persistence
	searchCommand.Flags().StringVar(&searchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(searchCommand)
}

func runSearchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Role == "" {
		return fmt.Errorf("--role is required (via flag or config)")
	}
	if cfg.Location == "" {
		return fmt.Errorf("--location is required (via flag or config)")
	}
	if err := cfg.CheckCredentials(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)

	// Resume extraction never fails the run; advice degrades to general
	// recommendations instead.
	var resumeDoc *types.ResumeDocument
	if cfg.ResumePath != "" {
		resumeDoc = resume.Extract(cfg.ResumePath)
		switch resumeDoc.Status {
		case types.StatusNotFound:
			fmt.Printf("Warning: Resume file not found at %s, continuing with general recommendations.\n", cfg.ResumePath)
		case types.StatusExtractionFailed:
			fmt.Printf("Warning: Could not extract text from %s, continuing with general recommendations.\n", cfg.ResumePath)
		}
		if cfg.Verbose {
			printer.PrintResume(resumeDoc)
		}
	} else {
		resumeDoc = &types.ResumeDocument{Status: types.StatusNotFound}
	}

	llmClient, err := llm.NewClient(ctx, nil, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	var toolOpts []jobs.ToolOption
	if searchPostings > 0 {
		toolOpts = append(toolOpts, jobs.WithPostingFetcher(func(ctx context.Context, url string) (string, error) {
			return fetch.Posting(ctx, url, nil)
		}, searchPostings))
	}
	tool := jobs.NewSearchTool(jobs.NewClient(&cfg), toolOpts...)

	runID := uuid.New()
	query := types.NewJobQuery(cfg.Role, cfg.Location, cfg.ResultCount)

	writer := report.NewWriter(cfg.ReportPath)
	if err := writer.Begin(query, runID.String(), resumeDoc.Parsed()); err != nil {
		return err
	}
	hooks := []pipeline.StageHook{writer}

	// Database persistence is optional and best effort.
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: Failed to apply database schema: %v\n", err)
			}
			if err := database.CreateRun(ctx, runID, cfg.Role, cfg.Location); err != nil {
				fmt.Printf("Warning: Failed to record run: %v\n", err)
			} else {
				hooks = append(hooks, db.NewStoreHook(database))
				if cfg.Verbose {
					fmt.Printf("[VERBOSE] Recording run %s in database\n", runID)
				}
			}
		}
	}

	run, err := pipeline.Run(ctx, pipeline.RunOptions{
		RunID:     runID.String(),
		Query:     query,
		Resume:    resumeDoc,
		Completer: agents.NewLLMCompleter(llmClient, llm.TierAdvanced),
		Source:    tool,
		Hooks:     hooks,
		Parallel:  cfg.Parallel,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		if database != nil {
			_ = database.CompleteRun(ctx, runID, "failed")
		}
		return err
	}

	if database != nil {
		_ = database.CompleteRun(ctx, runID, "completed")
	}

	fmt.Printf("Done! %d stage outputs written to %s\n", len(run.Results), writer.Path())
	return nil
}

// loadMergedConfig assembles the effective configuration: config file, then
// explicit flag overrides, then environment credentials, then defaults.
func loadMergedConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if searchConfigPath != "" {
		loaded, err := config.Load(searchConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if searchVerbose {
			fmt.Printf("Loaded config from: %s\n", searchConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("role") {
		cfg.Role = searchRole
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = searchLocation
	}
	if cmd.Flags().Changed("num-results") {
		cfg.ResultCount = searchResultCount
	}
	if cmd.Flags().Changed("country") {
		cfg.Country = searchCountry
	}
	if cmd.Flags().Changed("resume") {
		cfg.ResumePath = searchResume
	}
	if cmd.Flags().Changed("report") {
		cfg.ReportPath = searchReport
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = searchDatabaseURL
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = searchParallel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = searchVerbose
	}

	cfg.FromEnv()

	cfg = cfg.MergeWithDefaults(config.Config{
		Country:     "us",
		ReportPath:  "task_output.txt",
		ResultCount: types.DefaultResultCount,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
