package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/aurora-render/aurora/cmd"
	"github.com/aurora-render/aurora/log"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "aurora"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG image",
			Description: `
Render a YAML scene description with the progressive path tracer. When no
scene file is given, a built-in demo scene is rendered instead.`,
			ArgsUsage: "[scene.yaml]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 288,
					Usage: "frame height in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "max samples per pixel",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile edge length in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = all CPUs)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 8,
					Usage: "max path length",
				},
				cli.StringFlag{
					Name:  "out",
					Value: "frame.png",
					Usage: "output image path",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-models",
			Usage:  "list registered scattering models and their parameters",
			Action: cmd.ListModels,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("aurora").Error(err)
		os.Exit(1)
	}
}
