package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"videoprompt/internal/domain"
	"videoprompt/internal/promptgen"
	"videoprompt/internal/seed"
)

type options struct {
	configFile string
	category   string
	style      string
	duration   string
	complexity string
	format     string
	all        bool
	seed       uint64
	count      int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "promptgen",
		Short:        "Assemble text-to-video prompts from structured options",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML or JSON PromptConfig file ('-' for stdin)")
	root.PersistentFlags().StringVar(&opts.category, "category", promptgen.DefaultCategory, "content category")
	root.PersistentFlags().StringVar(&opts.style, "style", promptgen.DefaultStyle, "visual style")
	root.PersistentFlags().StringVar(&opts.duration, "duration", promptgen.Duration5to10, "clip duration label")
	root.PersistentFlags().StringVar(&opts.complexity, "complexity", promptgen.ComplexityMedium, "Simple, Medium or Complex")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", promptgen.FormatText, "output format: text or json")
	root.PersistentFlags().BoolVar(&opts.all, "all", false, "enable every section and element")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output (0 = random)")

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Print one prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.promptConfig(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts.assembler().Assemble(cfg))
		},
	}

	variations := &cobra.Command{
		Use:   "variations",
		Short: "Print prompts with a re-rolled complexity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			cfg, err := opts.promptConfig(cmd)
			if err != nil {
				return err
			}
			for i, res := range opts.assembler().Variations(cfg, opts.count) {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := printResult(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			}
			return nil
		},
	}
	variations.Flags().IntVarP(&opts.count, "count", "n", 3, "number of variations")

	optionsCmd := &cobra.Command{
		Use:   "options",
		Short: "List the known option labels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printOptions(cmd.OutOrStdout(), promptgen.KnownOptions())
			return nil
		},
	}

	templates := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in template library",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := seed.Templates()
			if err != nil {
				return err
			}
			for _, tpl := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-26s %s\n", tpl.Name, tpl.Category, tpl.Description)
			}
			return nil
		},
	}

	root.AddCommand(generate, variations, optionsCmd, templates)
	return root
}

func (o *options) assembler() *promptgen.Assembler {
	if o.seed == 0 {
		return promptgen.New(promptgen.NewSelector(nil))
	}
	return promptgen.New(promptgen.NewSelector(rand.NewPCG(o.seed, o.seed)))
}

// promptConfig reads --config when given, then applies label flags the user
// set explicitly.
func (o *options) promptConfig(cmd *cobra.Command) (domain.PromptConfig, error) {
	var cfg domain.PromptConfig
	if o.configFile != "" {
		data, err := readInput(cmd.InOrStdin(), o.configFile)
		if err != nil {
			return cfg, err
		}
		if cfg, err = seed.ParseConfig(data); err != nil {
			return cfg, err
		}
	} else {
		cfg = domain.PromptConfig{Category: o.category, Style: o.style, Duration: o.duration, Complexity: o.complexity}
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"category":   &cfg.Category,
		"style":      &cfg.Style,
		"duration":   &cfg.Duration,
		"complexity": &cfg.Complexity,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = v
		}
	}
	if flags.Changed("format") || cfg.Format == "" {
		cfg.Format = o.format
	}
	if o.all {
		enableAll(&cfg)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return data, nil
}

func enableAll(cfg *domain.PromptConfig) {
	cfg.Elements = domain.Elements{WeatherEffects: true, DynamicLighting: true, CameraMovement: true}
	cfg.EnableShotDetails, cfg.EnableSceneDetails, cfg.EnableAdvancedDetails = true, true, true
	cfg.Shot = domain.ShotOptions{Composition: true, CameraMotion: true, FrameRate: true, FilmGrain: true}
	cfg.Subject = domain.SubjectOptions{IncludeDescription: true, IncludeWardrobe: true}
	cfg.Scene = domain.SceneOptions{Location: true, TimeOfDay: true, Environment: true}
	cfg.VisualDetails = domain.VisualDetailOptions{Action: true, Props: true}
	cfg.Cinematography = domain.CinematographyOption{Lighting: true, Tone: true}
	cfg.Audio = domain.AudioOptions{Ambient: true, Dialogue: true}
	cfg.ColorPalette = true
}

func printResult(w io.Writer, res promptgen.Result) error {
	if res.Format != promptgen.FormatJSON {
		_, err := fmt.Fprintln(w, res.Text)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func printOptions(w io.Writer, opts promptgen.Options) {
	title := cases.Title(language.English)
	groups := []struct {
		name   string
		values []string
	}{
		{"categories", opts.Categories},
		{"styles", opts.Styles},
		{"durations", opts.Durations},
		{"complexities", opts.Complexities},
		{"formats", opts.Formats},
	}
	for _, g := range groups {
		fmt.Fprintf(w, "%s:\n  %s\n", title.String(g.name), strings.Join(g.values, "\n  "))
	}
}
