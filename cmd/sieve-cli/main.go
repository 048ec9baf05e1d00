package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yashubustudio/sieve/internal/logging"
	"yashubustudio/sieve/sieve"
)

type rootOptions struct {
	configPath      string
	knowledgePath   string
	logLevel        string
	symptomColumn   string
	categoryColumn  string
	diagnosisColumn string
	header          string
}

type showOptions struct {
	symptoms     []string
	symptomsFile string
	outputPath   string
	outputDir    string
	stdout       bool
	color        string
	width        int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "sieve-cli",
		Short:        "Print surgical sieve checklists for selected symptoms",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	root.PersistentFlags().StringVar(&opts.knowledgePath, "knowledge", "", "Knowledge base file (.json/.yaml/.toml/.csv/.tsv); overrides the config")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error); overrides the config")
	root.PersistentFlags().StringVar(&opts.symptomColumn, "symptom-column", "", "CSV/TSV symptom column (header name or #n)")
	root.PersistentFlags().StringVar(&opts.categoryColumn, "category-column", "", "CSV/TSV category column (header name or #n)")
	root.PersistentFlags().StringVar(&opts.diagnosisColumn, "diagnosis-column", "", "CSV/TSV diagnosis column (header name or #n)")
	root.PersistentFlags().StringVar(&opts.header, "header", "", "CSV/TSV header row (auto|present|absent)")

	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newSymptomsCmd(opts))
	root.AddCommand(newKnowledgeCmd(opts))
	return root
}

// setup loads config and knowledge and builds a service logging to stderr.
func setup(cmd *cobra.Command, opts *rootOptions) (*sieve.Service, *zap.Logger, error) {
	cfg, err := sieve.LoadConfig(strings.TrimSpace(opts.configPath))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if p := strings.TrimSpace(opts.knowledgePath); p != "" {
		cfg.KnowledgePath = p
	}
	if l := strings.TrimSpace(opts.logLevel); l != "" {
		cfg.LogLevel = l
	}
	if err := applyColumnFlags(&cfg.KnowledgeColumns, opts); err != nil {
		return nil, nil, err
	}
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	kb, fromFile, err := sieve.LoadKnowledge(cfg)
	if err != nil {
		return nil, nil, err
	}
	if fromFile {
		logger.Debug("knowledge loaded", zap.String("path", cfg.KnowledgePath), zap.Int("symptoms", len(kb.Symptoms())))
	} else {
		logger.Debug("using built-in knowledge base")
	}
	svc, err := sieve.NewService(kb, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init service: %w", err)
	}
	return svc, logger, nil
}

// applyColumnFlags overrides the configured CSV/TSV column mapping with any
// flags that were set.
func applyColumnFlags(dst *sieve.KnowledgeParseOptions, opts *rootOptions) error {
	if v := strings.TrimSpace(opts.symptomColumn); v != "" {
		dst.SymptomColumn = v
	}
	if v := strings.TrimSpace(opts.categoryColumn); v != "" {
		dst.CategoryColumn = v
	}
	if v := strings.TrimSpace(opts.diagnosisColumn); v != "" {
		dst.DiagnosisColumn = v
	}
	switch v := strings.ToLower(strings.TrimSpace(opts.header)); v {
	case "":
	case "auto":
		dst.Header = sieve.HeaderAuto
	case string(sieve.HeaderPresent), string(sieve.HeaderAbsent):
		dst.Header = sieve.HeaderMode(v)
	default:
		return fmt.Errorf("invalid --header %q (auto|present|absent)", opts.header)
	}
	return nil
}

func newShowCmd(root *rootOptions) *cobra.Command {
	opts := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the combined and per-symptom sieves for the given symptoms",
		Example: `  sieve-cli show --symptoms Fever,Cough
  sieve-cli show --symptoms-file symptoms.txt --output result.csv --stdout=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, root, opts)
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&opts.symptoms, "symptoms", "s", nil, "Symptoms to place on the canvas (comma separated or repeated)")
	f.StringVar(&opts.symptomsFile, "symptoms-file", "", "File listing symptoms, one per line or comma separated")
	f.StringVar(&opts.outputPath, "output", "", "CSV file to write the views to")
	f.StringVar(&opts.outputDir, "output-dir", "", "Directory for a timestamped result CSV when --output is omitted")
	f.BoolVar(&opts.stdout, "stdout", true, "Print the views to STDOUT")
	f.StringVar(&opts.color, "color", "auto", "Colorize output (auto|on|off)")
	f.IntVar(&opts.width, "width", 0, "Truncate printed lines to this many columns (0: terminal width or unlimited)")
	return cmd
}

func runShow(cmd *cobra.Command, root *rootOptions, opts *showOptions) error {
	labels := sieve.ParseSymptomList(strings.Join(opts.symptoms, "\n"))
	if opts.symptomsFile != "" {
		fromFile, err := sieve.ParseSymptomFile(opts.symptomsFile)
		if err != nil {
			return err
		}
		labels = append(labels, fromFile...)
	}
	if len(labels) == 0 {
		return fmt.Errorf("no symptoms given; use --symptoms or --symptoms-file")
	}

	svc, logger, err := setup(cmd, root)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	for _, label := range labels {
		if _, _, err := svc.AddSymptom(label); err != nil {
			return fmt.Errorf("%w (known: %s)", err, joinSymptoms(svc.Knowledge().Symptoms()))
		}
	}
	views := svc.Views()

	if opts.outputPath != "" || opts.outputDir != "" {
		path, err := resolveOutputPath(opts.outputPath, opts.outputDir)
		if err != nil {
			return err
		}
		if err := writeResultCSV(path, views); err != nil {
			return err
		}
		logger.Info("views exported", zap.String("path", path), zap.Int("views", len(views)))
		fmt.Fprintf(cmd.OutOrStdout(), "Saved sieve to %s\n", path)
	}
	if opts.stdout {
		r, err := newReporter(cmd.OutOrStdout(), opts.color, opts.width)
		if err != nil {
			return err
		}
		r.printViews(views)
	}
	return nil
}

func newSymptomsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms",
		Short: "List the symptoms and categories of the knowledge base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			out := cmd.OutOrStdout()
			for _, sym := range svc.Knowledge().Symptoms() {
				fmt.Fprintln(out, sym)
			}
			cats := make([]string, 0, 6)
			for _, c := range sieve.Categories() {
				cats = append(cats, string(c))
			}
			fmt.Fprintf(out, "\nCategories: %s\n", strings.Join(cats, ", "))
			return nil
		},
	}
}

func newKnowledgeCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Inspect or convert the knowledge base",
	}
	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded knowledge base as JSON, YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if err := sieve.SaveKnowledgeFile(out, svc.Knowledge()); err != nil {
				return fmt.Errorf("export knowledge: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d symptoms to %s\n", len(svc.Knowledge().Symptoms()), out)
			return nil
		},
	}
	export.Flags().StringVar(&out, "out", "", "Destination file (.json, .yaml, .yml or .toml)")
	_ = export.MarkFlagRequired("out")
	cmd.AddCommand(export)
	return cmd
}

func resolveOutputPath(path, dir string) (string, error) {
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return absPath, nil
	}
	if dir == "" {
		dir = "csv"
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	filename := fmt.Sprintf("sieve_%s.csv", time.Now().Format("20060102150405"))
	return filepath.Join(absDir, filename), nil
}

func writeResultCSV(path string, views []sieve.View) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()
	if err := sieve.WriteViewsCSV(f, views); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return f.Close()
}

func joinSymptoms(symptoms []sieve.Symptom) string {
	names := make([]string, len(symptoms))
	for i, s := range symptoms {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
