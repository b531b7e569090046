// Package main provides the radial CLI: render a radial chart to SVG, or
// check a data document and print its diagnostic report.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/radial/config"
	"github.com/katalvlaran/radial/radar"
	"github.com/katalvlaran/radial/render"
	"github.com/katalvlaran/radial/source"
	"github.com/katalvlaran/radial/validate"
)

// Environment variables, loadable from a .env file.
const (
	envConfig   = "RADIAL_CONFIG"
	envLogLevel = "RADIAL_LOG_LEVEL"
)

var (
	log = logrus.New()

	configPath string
	dataPath   string
	sheet      string
	progress   float64
	outputPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radial",
		Short: "Render radial (spider) charts from JSON or XLSX data",
		Long: `radial turns a name/value dataset into a radial chart: validated,
normalized, laid out on equally spaced spokes and drawn as a smooth
closed curve.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file (default: $"+envConfig+" or built-in defaults)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dataset to an SVG document",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&dataPath, "data", "", "data file, .json or .xlsx (required)")
	renderCmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for XLSX input (default: first sheet)")
	renderCmd.Flags().Float64Var(&progress, "progress", 1, "animation progress to render, 0..1")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	_ = renderCmd.MarkFlagRequired("data")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the dataset and print the diagnostic report",
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVar(&dataPath, "data", "", "data file, .json or .xlsx (required)")
	checkCmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for XLSX input (default: first sheet)")
	_ = checkCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(renderCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads .env if present and configures logging. The library packages
// never log; the CLI boundary is the only place diagnostics reach a human.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("parse %s: %w", envLogLevel, err)
		}
		log.SetLevel(parsed)
	}

	if configPath == "" {
		configPath = os.Getenv(envConfig)
	}

	return nil
}

// loadConfig reads the configuration file, or falls back to defaults when
// no file was named.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		log.Debug("no configuration file, using defaults")
		return config.Default(), nil
	}

	log.WithField("path", configPath).Debug("loading configuration")

	return config.Load(configPath)
}

// openSource picks the data-source adapter by file extension.
func openSource(path string) (source.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return source.NewJSONSource(data, true), nil
	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		// XLSXSource reads the stream once, inside Records.
		return source.NewXLSXSource(f, source.XLSXOptions{Sheet: sheet, SkipHeader: true}), nil
	default:
		return nil, fmt.Errorf("unsupported data format %q: want .json or .xlsx", filepath.Ext(path))
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := openSource(dataPath)
	if err != nil {
		return err
	}

	chart, err := radar.FromSource(cfg, src)
	if err != nil {
		return err
	}
	reportWarnings(chart.Validation())
	if !chart.Valid() {
		reportErrors(chart.Validation())
		return render.ErrInvalidChart
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outputPath, err)
		}
		defer f.Close()
		out = f
	}

	if err := render.NewSVG().Render(out, chart, progress); err != nil {
		return err
	}
	if outputPath != "" {
		log.WithField("path", outputPath).Info("chart written")
	}

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := openSource(dataPath)
	if err != nil {
		return err
	}

	records, err := src.Records()
	if err != nil {
		return err
	}

	result := validate.Validate(records, cfg.ValidateOptions())
	reportWarnings(result)
	if !result.Valid {
		reportErrors(result)
		return fmt.Errorf("%d blocking issue(s) found", len(result.Errors))
	}

	fmt.Printf("ok: %d point(s), %d warning(s)\n", len(result.Points), len(result.Warnings))

	return nil
}

// reportWarnings logs every advisory issue.
func reportWarnings(r validate.Result) {
	for _, issue := range r.Warnings {
		issueLogger(issue).Warn(issue.Message)
	}
}

// reportErrors logs every blocking issue.
func reportErrors(r validate.Result) {
	for _, issue := range r.Errors {
		issueLogger(issue).Error(issue.Message)
	}
}

// issueLogger attaches the taxonomy fields of one issue.
func issueLogger(issue validate.Issue) *logrus.Entry {
	entry := log.WithField("code", issue.Code)
	if issue.Index != validate.DatasetIndex {
		entry = entry.WithField("index", issue.Index)
	}
	if issue.Field != "" {
		entry = entry.WithField("field", issue.Field)
	}

	return entry
}
