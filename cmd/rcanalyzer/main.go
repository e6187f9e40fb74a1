package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/ingest"
	"rcanalyzer/internal/lexicon/sqlite"
	"rcanalyzer/internal/render"
	"rcanalyzer/internal/tui"
)

const (
	exitError      = 1
	exitEmptyInput = 2
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(newRootCommand(), os.Stderr))
}

func run(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrEmptyInput):
		fmt.Fprintln(stderr, tui.EmptyInputWarning)
		return exitEmptyInput
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}

func newRootCommand() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:           "rcanalyzer",
		Short:         "Analyze reading-comprehension passages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./rcanalyzer.yaml or ~/.config/rcanalyzer/config.yaml if not provided)")
	cmd.AddCommand(newAnalyzeCommand(&cfgPath))
	cmd.AddCommand(newTUICommand(&cfgPath))
	cmd.AddCommand(newLexiconCommand(&cfgPath))
	return cmd
}

func newAnalyzeCommand(cfgPath *string) *cobra.Command {
	var (
		asJSON bool
		plain  bool
		withAI bool
		top    int
	)
	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Analyze a passage from a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ingest.StdinPath
			if len(args) == 1 {
				path = args[0]
			}
			a, err := newApp(cmd.Context(), *cfgPath, appOptions{withAI: withAI, top: top})
			if err != nil {
				return err
			}
			defer a.Close()

			loader := ingest.NewLoader()
			loader.Stdin = cmd.InOrStdin()
			passage, err := loader.Load(path)
			if err != nil {
				return err
			}
			rep, err := a.svc.Report(cmd.Context(), passage)
			if err != nil {
				return err
			}
			if asJSON {
				return render.JSON(cmd.OutOrStdout(), rep)
			}
			styles := render.DefaultStyles()
			if plain {
				styles = render.Plain()
			}
			return render.Text(cmd.OutOrStdout(), rep, styles)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the report as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styling in the text report")
	cmd.Flags().BoolVar(&withAI, "ai", false, "Append the delegated AI analysis")
	cmd.Flags().IntVar(&top, "top", 0, "Number of hard words to report (default from config)")
	return cmd
}

func newTUICommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Paste and analyze passages interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), *cfgPath, appOptions{withAI: true})
			if err != nil {
				return err
			}
			defer a.Close()

			var timeout time.Duration
			if a.svc.HasDelegate() {
				timeout = a.delegateTimeout()
			}
			_, err = tea.NewProgram(tui.New(a.svc, timeout), tea.WithAltScreen()).Run()
			return err
		},
	}
}

func newLexiconCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage the SQLite lexicon",
	}
	var (
		dbPath  string
		replace bool
	)
	importCmd := &cobra.Command{
		Use:   "import <glossary.tsv>",
		Short: "Import a word<TAB>gloss glossary into the SQLite lexicon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := lexiconPath(*cfgPath, dbPath)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := cmd.Context()
			store, err := sqlite.Create(ctx, path)
			if err != nil {
				return err
			}
			defer store.Close()
			if replace {
				if err := store.Clear(ctx); err != nil {
					return err
				}
			}
			n, err := store.Import(ctx, f)
			if err != nil {
				return err
			}
			words, err := store.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d senses into %s (%d words)\n", n, path, words)
			return nil
		},
	}
	importCmd.Flags().StringVar(&dbPath, "db", "", "SQLite lexicon path (default lexicon.sqlite.path from config)")
	importCmd.Flags().BoolVar(&replace, "replace", false, "Remove existing senses before importing")
	cmd.AddCommand(importCmd)
	return cmd
}

func lexiconPath(cfgPath, flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return "", err
	}
	if cfg.Lexicon.SQLite == nil || cfg.Lexicon.SQLite.Path == "" {
		return "", errors.New("no lexicon database: pass --db or set lexicon.sqlite.path")
	}
	return cfg.Lexicon.SQLite.Path, nil
}
