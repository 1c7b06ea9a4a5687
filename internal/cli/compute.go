package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pinned"
	"github.com/thangdevalone/meeting-layout-grid/pkg/pipeline"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	count       int     // number of participant tiles
	width       float64 // container width in pixels
	height      float64 // container height in pixels
	gap         float64 // spacing between tiles
	ratio       string  // default tile aspect ratio (e.g., "16:9", "fill")
	mode        string  // layout mode: "gallery" or "spotlight"
	pin         int     // pinned tile index (-1 for none)
	others      string  // thumbnail strip side for pinned layouts
	pageSize    int     // tiles per page (pagination)
	page        int     // current page
	maxVisible  int     // visible tile cap (overflow folding)
	visiblePage int     // current visibility window page
	itemRatios  string  // per-tile aspect ratios, comma-separated
	output      string  // output path ("-" for stdout)
	noCache     bool    // disable the cache
	refresh     bool    // bypass cache reads
}

// computeCommand creates the compute command.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		pin:    -1,
		output: "frame.json",
	}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a layout frame",
		Long: `Compute positions and dimensions for participant tiles and write the
resulting frame as JSON. The frame can be rendered with "meetgrid render"
or inspected directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of participant tiles")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "container width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "container height")
	cmd.Flags().Float64Var(&opts.gap, "gap", 0, "spacing between tiles (default from config)")
	cmd.Flags().StringVar(&opts.ratio, "ratio", "", "tile aspect ratio: 16:9, 4:3, 1:1, fill")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "layout mode: gallery (default), spotlight")
	cmd.Flags().IntVar(&opts.pin, "pin", -1, "pin the tile at this index")
	cmd.Flags().StringVar(&opts.others, "others", "", "thumbnail side when pinned: left, right, top, bottom")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "tiles per page")
	cmd.Flags().IntVar(&opts.page, "page", 0, "current page")
	cmd.Flags().IntVar(&opts.maxVisible, "max-visible", 0, "cap on simultaneously visible tiles")
	cmd.Flags().IntVar(&opts.visiblePage, "visible-page", 0, "current visibility window page")
	cmd.Flags().StringVar(&opts.itemRatios, "item-ratios", "", "per-tile ratios, comma-separated")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (- for stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")

	return cmd
}

func (c *CLI) runCompute(cmd *cobra.Command, opts *computeOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}
	defer runner.Close()

	popts := opts.pipelineOptions()
	if popts.Layout.AspectRatio == "" {
		popts.Layout.AspectRatio = cfg.Layout.AspectRatio
	}
	if popts.Layout.Gap == 0 && cfg.Layout.Gap > 0 {
		popts.Layout.Gap = cfg.Layout.Gap
	}
	popts.Layout.FloatBreakpoints = cfg.Layout.Breakpoints

	sp := newSpinner(cmd.Context(), "Computing layout...")
	sp.start()
	p := newProgress(c.Logger)
	f, cached, err := runner.ComputeWithCacheInfo(cmd.Context(), popts)
	sp.stop()
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Computed %d tiles", len(f.Tiles)))

	if opts.output == "-" {
		data, err := frame.Marshal(f)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := frame.WriteFile(f, opts.output); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	printSuccess("Frame written")
	printFile(opts.output)
	printStats(len(f.Tiles), f.HiddenCount, cached)
	return nil
}

// pipelineOptions converts flag values into pipeline options.
func (o *computeOpts) pipelineOptions() pipeline.Options {
	var opts pipeline.Options
	opts.Layout.Count = o.count
	opts.Layout.Dimensions.Width = o.width
	opts.Layout.Dimensions.Height = o.height
	opts.Layout.Gap = o.gap
	opts.Layout.AspectRatio = o.ratio
	opts.Layout.Mode = layout.Mode(o.mode)
	opts.Layout.OthersPosition = pinned.Side(o.others)
	opts.Layout.MaxItemsPerPage = o.pageSize
	opts.Layout.CurrentPage = o.page
	opts.Layout.MaxVisible = o.maxVisible
	opts.Layout.CurrentVisiblePage = o.visiblePage
	opts.Refresh = o.refresh

	if o.pin >= 0 {
		pin := o.pin
		opts.Layout.PinnedIndex = &pin
	}
	if o.itemRatios != "" {
		opts.Layout.ItemAspectRatios = strings.Split(o.itemRatios, ",")
	}
	return opts
}
