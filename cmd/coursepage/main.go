package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursepage/internal/eventbus"
	"coursepage/internal/ui"
)

var (
	// Global flags
	configPath  string
	contentPath string
	verbose     bool
	watch       bool
	noAutoplay  bool
	interval    time.Duration
)

// rootCmd runs the interactive page viewer
var rootCmd = &cobra.Command{
	Use:   "coursepage",
	Short: "Browse the course landing page in the terminal",
	Long: `coursepage renders a course landing page from a YAML content file.

Run without arguments to open the page in the terminal: the testimonial carousel
plays on its own, tab moves between the carousel and the accordions, and ? shows
every key. The serve and export commands render the same page as HTML.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Content file (default: built-in page)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "Reload the content file when it changes")
	rootCmd.Flags().BoolVar(&noAutoplay, "no-autoplay", false, "Do not advance the carousel on a timer")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "Autoplay interval (default from config, 5s)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runTUI starts the Bubble Tea program. Logs go to the configured file since the UI owns the terminal.
func runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	model, err := ui.NewModel(ui.Options{
		Bus:      a.bus,
		Config:   a.cfg,
		Page:     a.page,
		Markdown: a.md,
		Logger:   a.log,
		E2E:      os.Getenv("COURSEPAGE_E2E_TEST") == "1",
	})
	if err != nil {
		return err
	}
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Forward content events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	defer a.bus.Subscribe(eventbus.EventContentReloaded, forward)()
	defer a.bus.Subscribe(eventbus.EventContentInvalid, forward)()
	defer a.bus.Subscribe(eventbus.EventError, forward)()

	if err := a.startWatcher(ctx); err != nil {
		return err
	}

	a.log.Info("starting UI", zap.String("content", a.contentLabel()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run UI: %w", err)
	}
	a.log.Info("UI exited")
	return nil
}
