package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
	"github.com/thangdevalone/meeting-layout-grid/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string   // output file (single format) or base path (multiple)
	formats      []string // output formats: "svg", "json"
	background   string   // canvas background color
	tileFill     string   // tile fill color
	tileStroke   string   // tile border color
	noLabels     bool     // hide tile index labels
	contentBoxes bool     // draw fitted content boxes inside tiles
	noCache      bool     // disable the cache
	refresh      bool     // bypass cache reads
}

// renderCommand creates the render command for generating artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [frame.json]",
		Short: "Render a layout frame to SVG or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().StringVar(&opts.background, "background", "", "canvas background color")
	cmd.Flags().StringVar(&opts.tileFill, "tile-fill", "", "tile fill color")
	cmd.Flags().StringVar(&opts.tileStroke, "tile-stroke", "", "tile border color")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "hide tile index labels")
	cmd.Flags().BoolVar(&opts.contentBoxes, "content-boxes", false, "draw fitted content boxes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached artifacts")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, framePath string, opts *renderOpts) error {
	f, err := frame.ReadFile(framePath)
	if err != nil {
		return fmt.Errorf("read frame: %w", err)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}
	defer runner.Close()

	popts := pipeline.Options{
		Formats:      opts.formats,
		Background:   opts.background,
		TileFill:     opts.tileFill,
		TileStroke:   opts.tileStroke,
		NoLabels:     opts.noLabels,
		ContentBoxes: opts.contentBoxes,
		Refresh:      opts.refresh,
	}

	sp := newSpinner(cmd.Context(), "Rendering...")
	sp.start()
	p := newProgress(c.Logger)
	artifacts, cached, err := runner.RenderWithCacheInfo(cmd.Context(), f, popts)
	if err != nil {
		sp.stop()
		return err
	}
	p.done(fmt.Sprintf("Rendered %d output(s)", len(artifacts)))
	sp.stopWithSuccess("Rendered " + strings.Join(opts.formats, ", "))
	for _, format := range opts.formats {
		path := outputPath(framePath, opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(len(f.Tiles), f.HiddenCount, cached)
	return nil
}

// outputPath derives the artifact path from the frame path, the --output
// flag, and the format extension.
func outputPath(framePath, output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(framePath, filepath.Ext(framePath))
	}
	return base + "." + format
}
