package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"pkg.jsn.cam/wordtally/pkg/tokenize"
)

func main() {
	app := &cli.App{
		Name:  "wordtally",
		Usage: "parallel word-frequency counting over text records",
		Commands: []*cli.Command{
			{
				Name:      "count",
				Usage:     "count word frequencies in the given files (stdin when none)",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of map workers (0 = available CPUs)",
					},
					&cli.StringFlag{
						Name:  "tokenizer",
						Value: "simple",
						Usage: fmt.Sprintf("tokenizer to use %v", tokenize.List()),
					},
					&cli.BoolFlag{
						Name:  "drop-empty",
						Usage: "drop tokens that normalize to the empty string",
					},
					&cli.BoolFlag{
						Name:  "stopwords",
						Usage: "filter common English stopwords",
					},
					&cli.StringSliceFlag{
						Name:  "stopword",
						Usage: "extra stopword to filter (repeatable, implies --stopwords)",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "print only the N most frequent words",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "emit the final counts as JSON",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "persist the run to this bbolt database",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file with defaults for the flags above",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "suppress progress and informational logging",
					},
				},
				Action: countAction,
			},
			{
				Name:  "runs",
				Usage: "list runs stored in a database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "bbolt database path",
						Required: true,
					},
				},
				Action: runsAction,
			},
			{
				Name:      "show",
				Usage:     "print the counts of a stored run",
				ArgsUsage: "RUN_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "bbolt database path",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "print only the N most frequent words",
					},
				},
				Action: showAction,
			},
			{
				Name:      "delete",
				Usage:     "delete a stored run",
				ArgsUsage: "RUN_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "bbolt database path",
						Required: true,
					},
				},
				Action: deleteAction,
			},
			{
				Name:   "tokenizers",
				Usage:  "list available tokenizers",
				Action: tokenizersAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
