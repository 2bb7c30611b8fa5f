package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/sanad/internal/config"
	"github.com/muurk/sanad/internal/form"
	"github.com/muurk/sanad/internal/i18n"
	"github.com/muurk/sanad/internal/logging"
	"github.com/muurk/sanad/internal/storage"
	"github.com/muurk/sanad/internal/submit"
	"github.com/muurk/sanad/internal/suggest"
	"github.com/muurk/sanad/internal/wizard/tui"
)

// Command flags
var (
	flagLanguage  string
	flagModel     string
	flagSubmitURL string
	flagDataDir   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLanguage, "language", "", "Interface language (en or ar)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Suggestion model override")
	rootCmd.PersistentFlags().StringVar(&flagSubmitURL, "submit-url", "", "Application intake endpoint (default: simulated)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory for drafts and configuration")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadSettings loads the config file and applies flag overrides
func loadSettings() (*config.Settings, string) {
	path, err := config.GetConfigPath()
	if err != nil {
		path = ""
	}

	settings, err := config.LoadDefault()
	if err != nil {
		// A broken config file should not block the wizard
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: ignoring config file: %v\n", err)
		settings = config.NewSettings()
	}

	if flagLanguage != "" {
		settings.Language = strings.ToLower(flagLanguage)
		if settings.Language != i18n.LangArabic {
			settings.Language = i18n.LangEnglish
		}
	}
	if flagModel != "" {
		settings.Model = flagModel
	}
	if flagSubmitURL != "" {
		settings.SubmitURL = flagSubmitURL
	}

	return settings, path
}

// dataDir resolves where drafts are stored
func dataDir() (string, error) {
	if flagDataDir != "" {
		return flagDataDir, nil
	}
	return config.GetConfigDir()
}

// newSubmitter picks the intake transport from settings
func newSubmitter(settings *config.Settings) form.Submitter {
	if settings.SubmitURL != "" {
		return submit.NewHTTPSubmitter(settings.SubmitURL)
	}
	s := submit.NewSimulatedSubmitter()
	if settings.SimulatedDelay > 0 {
		s.Delay = settings.SimulatedDelay
	}
	return s
}

// wizardCmd launches the interactive application wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive application wizard",
	Long: `Launch the interactive TUI wizard for filling in an application.

The wizard resumes any saved draft, validates each step before advancing,
and offers AI-assisted writing on the free-text answers when an OpenAI
API key is set via OPENAI_API_KEY.`,
	Example: `  # Launch the wizard
  sanad
  # Or explicitly:
  sanad wizard

  # Arabic interface
  sanad wizard --language ar

  # Submit to a real intake endpoint instead of simulating
  sanad wizard --submit-url https://intake.example.org/applications`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	settings, configPath := loadSettings()

	dir, err := dataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	store := storage.NewFileStore(dir)

	session, err := form.NewSession(store, newSubmitter(settings))
	if err != nil {
		return fmt.Errorf("failed to open form session: %w", err)
	}
	defer session.Close()

	client, err := suggest.NewClient(suggest.Config{
		APIKey:  config.APIKey(),
		Model:   settings.Model,
		BaseURL: settings.SuggestBaseURL,
	})
	if err != nil {
		// The wizard still works; assisted writing will explain itself
		fmt.Fprintf(cmd.ErrOrStderr(),
			"Note: %s is not set, AI-assisted writing is disabled\n", config.APIKeyEnvVar)
	}
	controller := suggest.NewController(client, session, settings.Language)

	model := tui.NewAppModel(session, controller, settings)
	model.ConfigPath = configPath

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// statusCmd prints the saved draft state
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show saved draft progress",
	Long:  `Show which application fields have been filled in the saved draft.`,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	store := storage.NewFileStore(dir)

	blob, found, err := store.Load(storage.StorageKey)
	if err != nil {
		return fmt.Errorf("failed to read draft: %w", err)
	}
	if !found {
		fmt.Println("No saved draft.")
		return nil
	}

	record, err := form.ParseRecord(blob)
	if err != nil {
		return fmt.Errorf("saved draft is unreadable: %w", err)
	}

	filled := 0
	for step := form.FirstStep; step <= form.LastStep; step++ {
		fmt.Printf("Step %d: %s\n", int(step), step)
		for _, field := range step.Fields() {
			mark := " "
			if strings.TrimSpace(record[field]) != "" {
				mark = "✓"
				filled++
			}
			fmt.Printf("  [%s] %s\n", mark, field)
		}
	}
	fmt.Printf("\n%d of %d fields filled. Run 'sanad' to continue.\n", filled, len(form.AllFields()))
	return nil
}

// resetCmd discards the saved draft
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved draft",
	Long:  `Delete the locally saved application draft. The next run starts empty.`,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	store := storage.NewFileStore(dir)

	if err := store.Clear(storage.StorageKey); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	fmt.Println("Draft cleared.")
	return nil
}
