// Command hoplite generates Ancient Greek verb forms from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	hoplite "github.com/jeremymarch/hoplite-verbs-rs-sub000"
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/config"
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/paradigm"
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/store"
)

const (
	Version = "0.1.0"
	appName = "hoplite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries state shared by the subcommands.
type app struct {
	configPath string
	dataDir    string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Ancient Greek verb form generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.dataDir, "data", "", "Directory of verb files")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(a.formCmd(), a.paradigmCmd(), a.exportCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFromFile(a.configPath)
	} else {
		a.cfg, err = config.NewLoader(slog.Default()).Load()
	}
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		a.cfg.Data.Dir = a.dataDir
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	level, _ := config.ParseLevel(a.cfg.Log.Level)
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) lexicon() (*hoplite.Lexicon, error) {
	return hoplite.New(a.cfg.Data.Dir, hoplite.WithGlob(a.cfg.Data.Glob), hoplite.WithLogger(a.logger))
}

func (a *app) verb(lemma string) (*hoplite.Verb, error) {
	lex, err := a.lexicon()
	if err != nil {
		return nil, err
	}
	v := lex.Verb(lemma)
	if v == nil {
		return nil, fmt.Errorf("unknown verb %q", lemma)
	}
	return v, nil
}

func (a *app) formCmd() *cobra.Command {
	var (
		lemma, tense, voice, mood       string
		person, number, gender, gramCase string
		decompose, steps                 bool
	)
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Generate one verb form",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.verb(lemma)
			if err != nil {
				return err
			}
			r, err := parseRequest(v, tense, voice, mood, person, number, gender, gramCase)
			if err != nil {
				return err
			}
			out, err := r.Form(decompose)
			if err != nil {
				return fmt.Errorf("%s: %w", hoplite.Kind(err), err)
			}
			w := cmd.OutOrStdout()
			if !steps {
				fmt.Fprintln(w, out[len(out)-1].Form)
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			for _, s := range out {
				fmt.Fprintf(tw, "%s\t%s\n", s.Explanation, s.Form)
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&lemma, "verb", "", "First principal part")
	f.StringVar(&tense, "tense", "present", "Tense")
	f.StringVar(&voice, "voice", "active", "Voice")
	f.StringVar(&mood, "mood", "indicative", "Mood")
	f.StringVar(&person, "person", "", "Person (1, 2, 3)")
	f.StringVar(&number, "number", "", "Number (singular, dual, plural)")
	f.StringVar(&gender, "gender", "", "Participle gender")
	f.StringVar(&gramCase, "case", "", "Participle case")
	f.BoolVar(&decompose, "decompose", false, "Show morphemes instead of the accented form")
	f.BoolVar(&steps, "steps", false, "Show the derivation steps")
	_ = cmd.MarkFlagRequired("verb")
	return cmd
}

// parseRequest builds a request from textual categories. Empty optional
// categories stay unset.
func parseRequest(v *hoplite.Verb, tense, voice, mood, person, number, gender, gramCase string) (hoplite.FormRequest, error) {
	t, err := hoplite.ParseTense(tense)
	if err != nil {
		return hoplite.FormRequest{}, err
	}
	vo, err := hoplite.ParseVoice(voice)
	if err != nil {
		return hoplite.FormRequest{}, err
	}
	m, err := hoplite.ParseMood(mood)
	if err != nil {
		return hoplite.FormRequest{}, err
	}
	r := hoplite.NewFormRequest(v, t, vo, m)
	if person != "" {
		if r.Person, err = hoplite.ParsePerson(person); err != nil {
			return r, err
		}
	}
	if number != "" {
		if r.Number, err = hoplite.ParseNumber(number); err != nil {
			return r, err
		}
	}
	if gender != "" {
		if r.Gender, err = hoplite.ParseGender(gender); err != nil {
			return r, err
		}
	}
	if gramCase != "" {
		if r.Case, err = hoplite.ParseCase(gramCase); err != nil {
			return r, err
		}
	}
	return r, nil
}

func (a *app) paradigmCmd() *cobra.Command {
	var lemma string
	var decompose bool
	cmd := &cobra.Command{
		Use:   "paradigm",
		Short: "Print the full paradigm of a verb",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.verb(lemma)
			if err != nil {
				return err
			}
			b := paradigm.NewBuilder(paradigm.WithWorkers(a.cfg.Paradigm.Workers), paradigm.WithLogger(a.logger))
			t, err := b.Build(cmd.Context(), v)
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), t, decompose)
		},
	}
	cmd.Flags().StringVar(&lemma, "verb", "", "First principal part")
	cmd.Flags().BoolVar(&decompose, "decompose", false, "Show morphemes")
	_ = cmd.MarkFlagRequired("verb")
	return cmd
}

func printTable(w io.Writer, t paradigm.Table, decompose bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", t.Verb)
	for _, c := range t.Cells {
		form := c.Form
		if decompose {
			form = c.Decomposed
		}
		if !c.OK() {
			form = "(" + c.Kind + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\n", c.Label, form)
	}
	return tw.Flush()
}

func (a *app) exportCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the paradigms of every verb to SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = a.cfg.Store.Path
			}
			lex, err := a.lexicon()
			if err != nil {
				return err
			}
			st, err := store.Open(dbPath, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()
			b := paradigm.NewBuilder(paradigm.WithWorkers(a.cfg.Paradigm.Workers), paradigm.WithLogger(a.logger))
			for _, v := range lex.Verbs() {
				t, err := b.Build(cmd.Context(), v)
				if err != nil {
					return err
				}
				run, err := st.SaveTable(cmd.Context(), t)
				if err != nil {
					return err
				}
				a.logger.Info("exported", "verb", v.Lemma(), "run", run, "forms", len(t.Cells))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d verbs to %s\n", lex.Len(), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
