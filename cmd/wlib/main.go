package main

import (
	"os"

	"github.com/g-m-twostay/wlib"
	"github.com/g-m-twostay/wlib/internal/config"
	"github.com/g-m-twostay/wlib/internal/scenario"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}

	report := func(r scenario.Result, err error) error {
		if err != nil {
			return err
		}
		log.Info().Str("scenario", r.Name).Int("checks", r.Checks).Msg("passed")
		return nil
	}

	app := &cli.App{
		Name:  "wlib",
		Usage: "exercise the wlib containers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel, Usage: "zerolog level"},
			&cli.BoolFlag{Name: "pretty", Value: cfg.Pretty, Usage: "human readable console output"},
		},
		Before: func(c *cli.Context) error {
			return setupLogging(c.String("log-level"), c.Bool("pretty"))
		},
		Commands: []*cli.Command{
			{
				Name:  "array",
				Usage: "store and read back a value in a fixed array",
				Flags: []cli.Flag{&cli.IntFlag{Name: "size", Value: cfg.ArraySize}},
				Action: func(c *cli.Context) error {
					return report(scenario.Array(log.Logger, c.Int("size")))
				},
			},
			{
				Name:  "ndarray",
				Usage: "store and read back values in a multi-dimensional array",
				Flags: []cli.Flag{&cli.IntSliceFlag{Name: "shape", Value: cli.NewIntSlice(cfg.NDShape...)}},
				Action: func(c *cli.Context) error {
					return report(scenario.NDArray(log.Logger, c.IntSlice("shape")))
				},
			},
			{
				Name:  "list",
				Usage: "grow a list past its initial capacity",
				Flags: []cli.Flag{&cli.IntFlag{Name: "capacity", Value: cfg.ListCapacity}},
				Action: func(c *cli.Context) error {
					return report(scenario.List(log.Logger, c.Int("capacity")))
				},
			},
			{
				Name:  "map",
				Usage: "fill a chained hash map across its resize threshold",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "buckets", Value: cfg.MapBuckets},
					&cli.IntFlag{Name: "entries", Value: cfg.MapEntries},
				},
				Action: func(c *cli.Context) error {
					return report(scenario.Map(log.Logger, c.Uint("buckets"), c.Int("entries")))
				},
			},
			{
				Name:  "all",
				Usage: "run every scenario with the configured parameters",
				Action: func(c *cli.Context) error {
					results, err := scenario.All(log.Logger, cfg)
					for _, r := range results {
						_ = report(r, nil)
					}
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Stack().Err(err).Msg("scenario failed")
	}
}

func setupLogging(level string, pretty bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	wlib.SetLogger(log.Logger)
	return nil
}
