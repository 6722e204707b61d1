// Package cli — generate.go implements the "mazegen generate" command.
//
// Orchestration steps:
//  1. Resolve configuration (defaults, config file, environment, flags)
//  2. Validate glyphs
//  3. Build the generator (dimension normalization and checks)
//  4. Carve the maze and place the entrances
//  5. Output results (text or JSON)
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/mazegen/internal/config"
	"github.com/shinji-kodama/mazegen/internal/maze"
	"github.com/shinji-kodama/mazegen/internal/model"
	"github.com/shinji-kodama/mazegen/internal/render"
)

// generateFlags holds the flag values for the generate command.
// A flag only overrides the configuration when it was set explicitly.
type generateFlags struct {
	width  int               // --width
	height int               // --height
	seed   int64             // --seed
	wall   string            // --wall
	path   string            // --path
	marked string            // --marked
	glyphs map[string]string // --glyph name=glyph
}

// NewGenerateCommand creates the "generate" cobra command.
func NewGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a perfect maze",
		Long: `Generate a perfect maze and print it.

Even dimensions are bumped to the next odd value so the maze is walled
all around. Both dimensions must be between 3 and 4001 after that.

Examples:
  mazegen generate
  mazegen generate --width 41 --height 21 --seed 7
  mazegen generate -W 11 -H 11 --wall '█'
  mazegen generate --glyph wall=@,path=.
  mazegen generate --json`,

		Args: cobra.NoArgs,
		RunE: generateRunE(flags),
	}

	bindGenerateFlags(cmd, flags)

	return cmd
}

// generateRunE returns the action shared by the generate command and the
// bare root command.
func generateRunE(flags *generateFlags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, flags)
		if err != nil {
			return err
		}
		return runGenerate(cmd.OutOrStdout(), cfg)
	}
}

// bindGenerateFlags registers the generation flags as local flags of cmd.
func bindGenerateFlags(cmd *cobra.Command, flags *generateFlags) {
	cmd.Flags().IntVarP(&flags.width, "width", "W", config.DefaultWidth, "Maze width in cells")
	cmd.Flags().IntVarP(&flags.height, "height", "H", config.DefaultHeight, "Maze height in cells")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed (0: derive from the clock)")
	cmd.Flags().StringVar(&flags.wall, "wall", "#", "Glyph for wall cells")
	cmd.Flags().StringVar(&flags.path, "path", " ", "Glyph for path cells")
	cmd.Flags().StringVar(&flags.marked, "marked", ".", "Glyph for marked cells")
	cmd.Flags().StringToStringVar(&flags.glyphs, "glyph", nil, "Glyphs by cell name, e.g. wall=@,path=. (--wall/--path/--marked win)")
}

// resolveConfig layers defaults, the config file, the environment and the
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, flags *generateFlags) (*config.Config, error) {
	cfg := config.Default()

	path := configPath
	if path == "" {
		path = config.FindConfigFile(".")
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		VerboseLog("Loaded config file %s", path)
	}

	if err := config.ApplyEnv(cfg, envFile); err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("glyph") {
		names := make([]string, 0, len(flags.glyphs))
		for name := range flags.glyphs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := cfg.Charset.Set(name, flags.glyphs[name]); err != nil {
				return nil, model.WrapCLIError(model.ExitConfigError, "invalid --glyph", err)
			}
		}
	}
	if fs.Changed("width") {
		cfg.Width = flags.width
	}
	if fs.Changed("height") {
		cfg.Height = flags.height
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if fs.Changed("wall") {
		cfg.Charset.Wall = flags.wall
	}
	if fs.Changed("path") {
		cfg.Charset.Path = flags.path
	}
	if fs.Changed("marked") {
		cfg.Charset.Marked = flags.marked
	}

	return cfg, nil
}

// runGenerate builds the maze described by cfg and writes it to out.
func runGenerate(out io.Writer, cfg *config.Config) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		return model.NewCLIError(model.ExitConfigError,
			"invalid configuration: "+config.JoinValidationErrors(errs))
	}

	gen, err := maze.New(cfg.Width, cfg.Height, maze.WithSeed(cfg.Seed))
	if err != nil {
		if errors.Is(err, maze.ErrDimensionTooSmall) || errors.Is(err, maze.ErrDimensionTooLarge) {
			return model.WrapCLIError(model.ExitInvalidDimensions,
				fmt.Sprintf("cannot build a %dx%d maze", cfg.Width, cfg.Height), err)
		}
		return model.WrapCLIError(model.ExitGeneralError, "failed to create generator", err)
	}
	VerboseLog("Generating %dx%d maze (requested %dx%d) with seed %d",
		gen.Width(), gen.Height(), cfg.Width, cfg.Height, gen.Seed())

	result, err := gen.GenerateMaze()
	if err != nil {
		if errors.Is(err, maze.ErrNoAdmissibleOpening) {
			return model.WrapCLIError(model.ExitInternalError, "maze invariant violated", err)
		}
		return model.WrapCLIError(model.ExitGeneralError, "failed to generate maze", err)
	}
	VerboseLog("Carved %d cells, %d branch points, max stack depth %d",
		result.Stats.CellsCarved, result.Stats.BranchPoints, result.Stats.MaxStackDepth)
	VerboseLog("Maze has %d path cells of %d",
		result.Grid.Count(model.Path), result.Grid.Width()*result.Grid.Height())
	for _, e := range result.Entrances {
		VerboseLog("Entrance on %s edge at %s", e.Edge, e.Point)
	}

	charset := cfg.RenderCharset()
	if IsJSONOutput() {
		return printGenerateResultJSON(out, result, charset)
	}
	return render.Write(out, result.Grid.Rows(), charset)
}

// generateResultJSON is the JSON output structure of the generate command.
type generateResultJSON struct {
	ID        string            `json:"id"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Seed      int64             `json:"seed"`
	Entrances []entranceJSON    `json:"entrances"`
	Stats     maze.CarveStats   `json:"stats"`
	Rows      []string          `json:"rows"`
	Legend    map[string]string `json:"legend"`
}

// entranceJSON is one opening in the JSON output.
type entranceJSON struct {
	Edge string `json:"edge"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// printGenerateResultJSON writes the maze as a JSON document. The id is a
// fresh UUID so separate runs can be told apart in logs.
func printGenerateResultJSON(out io.Writer, result *maze.Result, charset render.Charset) error {
	doc := generateResultJSON{
		ID:        uuid.New().String(),
		Width:     result.Grid.Width(),
		Height:    result.Grid.Height(),
		Seed:      result.Seed,
		Entrances: make([]entranceJSON, 0, len(result.Entrances)),
		Stats:     result.Stats,
		Rows:      render.Lines(result.Grid.Rows(), charset),
		Legend: map[string]string{
			model.Wall.String():   string(charset.Wall),
			model.Path.String():   string(charset.Path),
			model.Marked.String(): string(charset.Marked),
		},
	}
	for _, e := range result.Entrances {
		doc.Entrances = append(doc.Entrances, entranceJSON{
			Edge: e.Edge.String(),
			X:    e.Point.X,
			Y:    e.Point.Y,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode maze: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
