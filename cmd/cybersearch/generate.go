package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/enotkrutoy/CyberSearch/internal/browser"
	"github.com/enotkrutoy/CyberSearch/internal/domain/diagnostic"
	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
	logpkg "github.com/enotkrutoy/CyberSearch/internal/logger"
	"github.com/enotkrutoy/CyberSearch/internal/usecase/generate"
)

var (
	genTerm    string
	genVectors int
	genDensity int
	genPage    int
	genProfile string
	genOpen    bool
	genJSON    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [phrase]",
	Short: "Build search vectors for a phrase and print them",
	Long: `Builds the vector batch for one search phrase and prints it to stdout,
one URL per line (primary vector first). Diagnostics go to stderr.

Parameters come from the selected profile; individual flags override
profile values. Out-of-range values are clamped.

Example:
  cybersearch generate "admin login" --vectors 5 --open`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genTerm, "term", "", "Search phrase (alternative to the positional argument)")
	generateCmd.Flags().IntVar(&genVectors, "vectors", 0, "Number of vectors to build (1-20)")
	generateCmd.Flags().IntVar(&genDensity, "density", 0, "Iteration density of the primary vector (128-1024)")
	generateCmd.Flags().IntVar(&genPage, "page", 0, "Result page offset (0-9)")
	generateCmd.Flags().StringVar(&genProfile, "profile", "", "Parameter profile from the config file")
	generateCmd.Flags().BoolVar(&genOpen, "open", false, "Open the primary vector in the browser")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print the full result as JSON")
}

// JSON output shapes for --json mode.
type vectorJSON struct {
	Index      int    `json:"index"`
	URL        string `json:"url"`
	Iterations int    `json:"iterations"`
}

type diagnosticJSON struct {
	Kind string    `json:"kind"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type resultJSON struct {
	ID          string           `json:"id"`
	Term        string           `json:"term"`
	Vectors     []vectorJSON     `json:"vectors"`
	Diagnostics []diagnosticJSON `json:"diagnostics,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := logpkg.NewLogger(cfg.Logging.Format, cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	term := genTerm
	if len(args) > 0 {
		term = strings.Join(args, " ")
	}

	params, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	svc := generate.NewInstrumented(generate.New(), logger)
	result, err := svc.Generate(cmd.Context(), term, params)
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		logger.Warn("Diagnostic",
			zap.String("kind", string(d.Kind())),
			zap.String("text", d.Text()),
		)
	}

	if genJSON {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		for _, v := range result.Vectors {
			fmt.Println(v.URL())
		}
	}

	if genOpen {
		launcher := browser.New(cfg.Browser.Command, cfg.Browser.Disabled)
		if err := launcher.Open(result.Vectors[0].URL()); err != nil {
			// The batch stays valid; the launch failure is advisory.
			logger.Warn("Diagnostic",
				zap.String("kind", string(diagnostic.PopupBlocked)),
				zap.String("text", err.Error()),
			)
		}
	}

	return nil
}

// resolveParams merges the profile defaults with explicit flag overrides.
func resolveParams(cmd *cobra.Command) (vector.Params, error) {
	name := genProfile
	if name == "" {
		name = cfg.Frontends.CLI
	}
	prof, err := cfg.Profile(name)
	if err != nil {
		return vector.Params{}, err
	}

	vectors, density, page := prof.Vectors, prof.Density, prof.Page
	if cmd.Flags().Changed("vectors") {
		vectors = genVectors
	}
	if cmd.Flags().Changed("density") {
		density = genDensity
	}
	if cmd.Flags().Changed("page") {
		page = genPage
	}

	return vector.NewParams(vectors, density, page), nil
}

func printJSON(result generate.Result) error {
	out := resultJSON{
		ID:      result.ID,
		Term:    result.Term,
		Vectors: make([]vectorJSON, 0, len(result.Vectors)),
	}
	for _, v := range result.Vectors {
		out.Vectors = append(out.Vectors, vectorJSON{
			Index:      v.Index(),
			URL:        v.URL(),
			Iterations: v.Iterations(),
		})
	}
	for _, d := range result.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON{
			Kind: string(d.Kind()),
			Text: d.Text(),
			At:   d.At(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
