package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/aurora-render/aurora/pkg/renderer"
	"github.com/aurora-render/aurora/pkg/scene"
)

// RenderFrame renders a still frame to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	var sc *scene.Scene
	var err error
	if ctx.NArg() == 0 {
		logger.Notice("no scene file given, rendering the built-in demo scene")
		sc = scene.Default()
	} else {
		sc, err = scene.Load(ctx.Args().First())
		if err != nil {
			return err
		}
	}

	opts := renderer.Options{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		TileSize:        ctx.Int("tile-size"),
		NumWorkers:      ctx.Int("workers"),
		MaxDepth:        ctx.Int("max-depth"),
	}

	start := time.Now()
	img, stats := renderer.NewRenderer(sc, opts).Render()

	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := renderer.WritePNG(f, img); err != nil {
		return fmt.Errorf("encode output image: %w", err)
	}

	logger.Noticef("wrote %s", out)
	displayRenderStats(stats, time.Since(start))
	return nil
}

func displayRenderStats(stats renderer.RenderStats, elapsed time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Avg spp", "Min spp", "Max spp", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%d", stats.MinSamples),
		fmt.Sprintf("%d", stats.MaxSamplesUsed),
		elapsed.Round(time.Millisecond).String(),
	})
	table.Render()
	fmt.Print(buf.String())
}
