// Package pkg provides the core libraries for meetgrid layout computation.
//
// # Overview
//
// Meetgrid positions participant tiles for video conferencing clients. The
// pkg directory is organized into five main areas:
//
//  1. [geometry] - Primitives (dimensions, positions, aspect-ratio fitting)
//  2. [layout] - The layout engine and its strategies (grid, pinned,
//     justified, float, spotlight, pagination)
//  3. [frame] - The serialized layout snapshot exchanged between stages
//  4. [render] - Output generation (SVG, JSON)
//  5. [pipeline] - Orchestration with caching (compute → render)
//
// Supporting packages: [cache] (file, redis, and null backends), [preset]
// (named option sets in memory or mongo), [observability] (instrumentation
// hooks), and [buildinfo] (version stamping).
//
// # Architecture
//
// The typical data flow through meetgrid:
//
//	layout.Options (count, container, mode, pins, pagination)
//	         ↓
//	    [layout] package (strategy dispatch + search)
//	         ↓
//	    [frame] package (positions, dimensions, visibility)
//	         ↓
//	    [render/sink] package
//	         ↓
//	    SVG/JSON output
//
// # Quick Start
//
// Compute a layout and render it:
//
//	import (
//	    "github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
//	    "github.com/thangdevalone/meeting-layout-grid/pkg/layout"
//	    "github.com/thangdevalone/meeting-layout-grid/pkg/render/sink"
//	)
//
//	opts := layout.DefaultOptions()
//	opts.Dimensions = geometry.Dimensions{Width: 1280, Height: 720}
//	opts.Count = 9
//
//	res, err := layout.Compute(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, err := res.Export()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := sink.RenderSVG(f)
//
// Or use the cached pipeline, which both the CLI and the HTTP API share:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipelineOpts)
//
// [geometry]: github.com/thangdevalone/meeting-layout-grid/pkg/geometry
// [layout]: github.com/thangdevalone/meeting-layout-grid/pkg/layout
// [frame]: github.com/thangdevalone/meeting-layout-grid/pkg/frame
// [render]: github.com/thangdevalone/meeting-layout-grid/pkg/render
// [pipeline]: github.com/thangdevalone/meeting-layout-grid/pkg/pipeline
// [cache]: github.com/thangdevalone/meeting-layout-grid/pkg/cache
// [preset]: github.com/thangdevalone/meeting-layout-grid/pkg/preset
// [observability]: github.com/thangdevalone/meeting-layout-grid/pkg/observability
// [buildinfo]: github.com/thangdevalone/meeting-layout-grid/pkg/buildinfo
package pkg
