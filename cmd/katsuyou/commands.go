package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-japonais/katsuyou"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type options struct {
	dataDir string
	output  string
}

type row struct {
	Form  string  `json:"form" yaml:"form"`
	Kana  *string `json:"kana,omitempty" yaml:"kana,omitempty"`
	Kanji *string `json:"kanji,omitempty" yaml:"kanji,omitempty"`
	Verb  string  `json:"verb,omitempty" yaml:"verb,omitempty"`
	Error string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "katsuyou",
		Short:         "Conjugate Japanese verbs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.output {
			case outputText, outputJSON, outputYAML:
				return nil
			}
			return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.output)
		},
	}

	defaultData := os.Getenv("LEXICON_DATA_DIR")
	if defaultData == "" {
		defaultData = "data"
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data", defaultData, "path to the verb lexicon directory")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")

	root.AddCommand(
		conjugateCmd(opts),
		tableCmd(opts),
		identifyCmd(opts),
		verbsCmd(opts),
		formsCmd(opts),
	)
	return root
}

func conjugateCmd(opts *options) *cobra.Command {
	var (
		kana, kanji, class string
		forms              []string
	)

	cmd := &cobra.Command{
		Use:   "conjugate [verb]",
		Short: "Conjugate a verb into one or more forms",
		Long: `Conjugate a verb into one or more forms.

The verb is either a lexicon entry given as argument (kanji or kana), or an
arbitrary dictionary form given with --kana/--kanji and --class.

Forms are comma-separated tokens in any order, e.g. "te", "past,negative,polite",
"potential,continuous,present,negative,polite,short". See "katsuyou forms".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := resolveVerb(opts, args, kana, kanji, class)
			if err != nil {
				return err
			}

			parsed := make([]katsuyou.Form, 0, len(forms))
			for _, key := range forms {
				f, err := katsuyou.ParseForm(key)
				if err != nil {
					return err
				}
				parsed = append(parsed, f)
			}

			outcomes, err := katsuyou.ConjugateVerbs(raw, parsed)
			if err != nil {
				return err
			}
			rows := make([]row, 0, len(outcomes))
			for _, o := range outcomes {
				r := row{Form: o.Form.Key(), Kana: o.Result.Kana, Kanji: o.Result.Kanji}
				if o.Err != nil {
					r.Error = o.Err.Error()
				}
				rows = append(rows, r)
			}
			return render(cmd.OutOrStdout(), opts.output, rows)
		},
	}

	cmd.Flags().StringVar(&kana, "kana", "", "dictionary form in kana")
	cmd.Flags().StringVar(&kanji, "kanji", "", "dictionary form in kanji")
	cmd.Flags().StringVar(&class, "class", "", "conjugation class (ichidan, godan, suru, kuru, ...)")
	cmd.Flags().StringArrayVarP(&forms, "form", "f", nil, "form to produce (repeatable)")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

// resolveVerb builds the engine input from a lexicon key or from flags.
func resolveVerb(opts *options, args []string, kana, kanji, class string) (katsuyou.RawVerb, error) {
	if class != "" || kana != "" || kanji != "" {
		if len(args) > 0 {
			return katsuyou.RawVerb{}, errors.New("give either a lexicon verb or --kana/--kanji/--class, not both")
		}
		c, err := katsuyou.ParseVerbClass(class)
		if err != nil {
			return katsuyou.RawVerb{}, err
		}
		return katsuyou.RawVerb{Kana: katsuyou.NormalizeKey(kana), Kanji: kanji, Class: c}, nil
	}
	if len(args) == 0 {
		return katsuyou.RawVerb{}, errors.New("a lexicon verb or --kana/--kanji/--class is required")
	}

	conj, err := katsuyou.New(opts.dataDir)
	if err != nil {
		return katsuyou.RawVerb{}, err
	}
	e := conj.Verb(args[0])
	if e == nil {
		return katsuyou.RawVerb{}, fmt.Errorf("%w: %q", katsuyou.ErrUnknownVerb, args[0])
	}
	return e.Raw(), nil
}

func tableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table <verb>",
		Short: "Print the full paradigm of a lexicon verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conj, err := katsuyou.New(opts.dataDir)
			if err != nil {
				return err
			}
			t, err := conj.Table(args[0])
			if err != nil {
				return err
			}
			rows := make([]row, 0, len(t.Cells))
			for _, c := range t.Cells {
				rows = append(rows, row{Form: c.Form.Key(), Kana: c.Result.Kana, Kanji: c.Result.Kanji})
			}
			return render(cmd.OutOrStdout(), opts.output, rows)
		},
	}
}

func identifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <form>",
		Short: "Find the lexicon verbs and forms an inflected verb comes from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conj, err := katsuyou.New(opts.dataDir)
			if err != nil {
				return err
			}
			analyses := conj.Identify(args[0])
			if len(analyses) == 0 {
				return fmt.Errorf("%q: no analysis found", args[0])
			}
			rows := make([]row, 0, len(analyses))
			for _, a := range analyses {
				rows = append(rows, row{
					Verb:  a.Entry.String(),
					Form:  a.Form.Key(),
					Kana:  a.Result.Kana,
					Kanji: a.Result.Kanji,
				})
			}
			return render(cmd.OutOrStdout(), opts.output, rows)
		},
	}
}

func verbsCmd(opts *options) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "List the lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conj, err := katsuyou.New(opts.dataDir)
			if err != nil {
				return err
			}
			type verbRow struct {
				Key   string `json:"key" yaml:"key"`
				Kana  string `json:"kana,omitempty" yaml:"kana,omitempty"`
				Class string `json:"class" yaml:"class"`
				Gloss string `json:"gloss,omitempty" yaml:"gloss,omitempty"`
			}
			var rows []verbRow
			for _, e := range conj.Verbs() {
				rows = append(rows, verbRow{Key: e.Key, Kana: e.Kana, Class: e.Class.String(), Gloss: e.Gloss(lang)})
			}
			switch opts.output {
			case outputJSON:
				return writeJSON(cmd.OutOrStdout(), rows)
			case outputYAML:
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(rows)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Key, r.Kana, r.Class, r.Gloss)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "gloss language code")
	return cmd
}

func formsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the form tokens accepted by --form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := map[string][]string{
				"base":       nil,
				"auxiliary":  nil,
				"additional": nil,
				"flags":      {"negative", "polite", "short"},
			}
			for _, b := range katsuyou.BaseForms() {
				cat["base"] = append(cat["base"], b.String())
			}
			for _, a := range katsuyou.AuxiliaryForms() {
				cat["auxiliary"] = append(cat["auxiliary"], a.String())
			}
			for _, a := range katsuyou.AdditionalForms() {
				cat["additional"] = append(cat["additional"], a.String())
			}
			switch opts.output {
			case outputJSON:
				return writeJSON(cmd.OutOrStdout(), cat)
			case outputYAML:
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(cat)
			}
			for _, layer := range []string{"base", "auxiliary", "additional", "flags"} {
				fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", layer+":", strings.Join(cat[layer], ", "))
			}
			return nil
		},
	}
}

// render writes rows in the requested format. Text output is one
// aligned line per row: form, kanji, kana, error.
func render(w io.Writer, format string, rows []row) error {
	switch format {
	case outputJSON:
		return writeJSON(w, rows)
	case outputYAML:
		return yaml.NewEncoder(w).Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		var cols []string
		if r.Verb != "" {
			cols = append(cols, r.Verb)
		}
		cols = append(cols, r.Form)
		if r.Error != "" {
			cols = append(cols, "error: "+r.Error)
		} else {
			cols = append(cols, katsuyou.Result{Kana: r.Kana, Kanji: r.Kanji}.String())
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
