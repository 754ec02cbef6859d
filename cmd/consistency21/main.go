// Package main provides the CLI entrypoint for consistency21.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/consistency21/internal/config"
	"github.com/verte-zerg/consistency21/internal/genai"
	"github.com/verte-zerg/consistency21/internal/generator"
	"github.com/verte-zerg/consistency21/internal/model"
	"github.com/verte-zerg/consistency21/internal/session"
	"github.com/verte-zerg/consistency21/internal/stats"
	"github.com/verte-zerg/consistency21/internal/store"
	"github.com/verte-zerg/consistency21/internal/tui"
)

const defaultTheme = string(config.ThemeDark)

var (
	dbPath        string
	baseURL       string
	planModel     string
	analysisModel string
	ephemeral     bool

	reportPDF string
	exportOut string
	resetYes  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "consistency21",
		Short:         "21-day habit tracker with AI-generated plans",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrackerCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "database path")
	rootCmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "keep state in memory only")
	rootCmd.Flags().StringVar(&baseURL, "base-url", genai.DefaultBaseURL, "OpenAI-compatible API base URL")
	rootCmd.Flags().StringVar(&planModel, "plan-model", genai.DefaultPlanModel, "model used to generate plans")
	rootCmd.Flags().StringVar(&analysisModel, "analysis-model", genai.DefaultAnalysisModel, "model used for the final analysis")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// kvStore is what the commands need from a persistence backend.
type kvStore interface {
	session.Store
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
	Close() error
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &dbPath, fileCfg.Storage.Path)
	return fileCfg, nil
}

func openStore() (kvStore, error) {
	if ephemeral {
		return store.NewMemory(), nil
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st kvStore) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

// newOfflineManager builds a manager without generation collaborators.
func newOfflineManager(st kvStore) *session.Manager {
	return session.New(st, nil, nil)
}

func runTrackerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "base-url", &baseURL, fileCfg.AI.BaseURL)
	applyStringConfig(cmd, "plan-model", &planModel, fileCfg.AI.PlanModel)
	applyStringConfig(cmd, "analysis-model", &analysisModel, fileCfg.AI.AnalysisModel)
	theme := defaultTheme
	if fileCfg.UI.Theme != nil {
		theme = *fileCfg.UI.Theme
	}

	config.LoadDotEnv()
	apiKey, err := config.ResolveAPIKey(fileCfg.AI)
	if err != nil {
		return err
	}
	if apiKey == "" {
		logErrln("warning: no API key found; set API_KEY or GEMINI_API_KEY before generating a plan")
	}

	logPath := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	client := genai.New(genai.Config{
		APIKey:        apiKey,
		BaseURL:       baseURL,
		PlanModel:     planModel,
		AnalysisModel: analysisModel,
	})
	mgr := session.New(st, client, client)
	outcome := mgr.Load(cmd.Context())

	pdfDir, err := os.Getwd()
	if err != nil {
		pdfDir = "."
	}
	m := tui.NewModel(mgr, generator.New(), tui.Options{
		Theme:   config.Theme(theme),
		Prefs:   st,
		PDFDir:  pdfDir,
		Outcome: outcome,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current challenge",
		Args:  cobra.NoArgs,
		RunE:  runStatusCmd,
	}
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := cmd.Context()
	mgr := newOfflineManager(st)
	state, outcome := mgr.Inspect(ctx)
	if outcome == session.LoadCorrupt {
		logErrln("saved state could not be read; launch the tracker to set it aside and start fresh")
	}
	var updated *time.Time
	if at, ok, err := st.UpdatedAt(ctx, mgr.Key()); err != nil {
		logErrf("failed to read last save time: %v\n", err)
	} else if ok {
		updated = &at
	}
	return writeStatus(cmd.OutOrStdout(), state, updated)
}

func writeStatus(w io.Writer, state model.UserState, updated *time.Time) error {
	view := model.ViewOf(state).Kind()
	lines := []string{fmt.Sprintf("View: %s", view)}
	if view != model.ViewOnboarding {
		lines = append(lines,
			fmt.Sprintf("Goal: %s", state.Goal),
			fmt.Sprintf("Progress: %d/%d", stats.CompletedDays(state.Reports), model.ProgramDays),
			fmt.Sprintf("Reports: %d", len(state.Reports)),
		)
	}
	if state.FinalAnalysis != nil {
		lines = append(lines, fmt.Sprintf("Consistency score: %d/100", state.FinalAnalysis.ConsistencyScore))
	}
	if updated != nil {
		lines = append(lines, fmt.Sprintf("Last saved: %s", updated.Local().Format("2006-01-02 15:04")))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the final report",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	cmd.Flags().StringVar(&reportPDF, "pdf", "", "write the report as a PDF to this path")
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	state, _ := newOfflineManager(st).Inspect(cmd.Context())
	if state.FinalAnalysis == nil {
		return errors.New("no final report yet; generate one from the calendar first")
	}
	if reportPDF != "" {
		if err := stats.WritePDF(reportPDF, state); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		logErrf("Wrote %s\n", reportPDF)
		return nil
	}
	out := cmd.OutOrStdout()
	return stats.RenderReport(out, state, 0, stats.UseColor(out))
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the saved session as JSON",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	state, _ := newOfflineManager(st).Inspect(cmd.Context())
	raw, err := session.Encode(state)
	if err != nil {
		return err
	}
	if exportOut == "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), raw); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(exportOut), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(exportOut, []byte(raw+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	logErrf("Wrote %s\n", exportOut)
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the current challenge",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "confirm clearing all progress")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := newOfflineManager(st).Restart(cmd.Context(), resetYes); err != nil {
		if errors.Is(err, session.ErrNotConfirmed) {
			return errors.New("refusing to clear progress without --yes")
		}
		return err
	}
	logErrln("Progress cleared.")
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# consistency21 configuration
# Uncomment a value to enable it. CLI flags override config values.

[ai]
# base-url = %q
# plan-model = %q
# analysis-model = %q
# api-key-env = %q        # Environment variable holding the API key
# api-key-file = "~/.config/consistency21/api_key"

[storage]
# path = %q

[ui]
# theme = %q              # dark or light
`,
		genai.DefaultBaseURL,
		genai.DefaultPlanModel,
		genai.DefaultAnalysisModel,
		config.DefaultAPIKeyEnv,
		config.DefaultDBPath(),
		defaultTheme,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
