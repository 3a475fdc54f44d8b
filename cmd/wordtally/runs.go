package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"pkg.jsn.cam/wordtally/internal/results"
	"pkg.jsn.cam/wordtally/pkg/storage"
	"pkg.jsn.cam/wordtally/pkg/tokenize"
)

func openStore(dbPath string) (*results.Store, func(), error) {
	backend, err := storage.NewBboltBackend(dbPath)
	if err != nil {
		return nil, nil, err
	}

	store, err := results.NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return store, func() { backend.Close() }, nil
}

func runsAction(c *cli.Context) error {
	store, closeStore, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer closeStore()

	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-36s %-20s %-10s %-8s %-10s %s\n",
		"RUN ID", "CREATED", "TOKENIZER", "WORKERS", "RECORDS", "WORDS")
	for _, run := range runs {
		fmt.Printf("%-36s %-20s %-10s %-8d %-10s %s\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Tokenizer,
			run.Workers,
			humanize.Comma(int64(run.Records)),
			humanize.Comma(int64(run.TotalWords)))
	}

	return nil
}

func showAction(c *cli.Context) error {
	runID := c.Args().First()
	if runID == "" {
		return fmt.Errorf("run ID argument is required")
	}

	store, closeStore, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer closeStore()

	meta, counts, err := store.Get(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s (%s, %d workers, %s tokenizer)\n",
		meta.ID,
		meta.CreatedAt.Format("2006-01-02 15:04:05"),
		meta.Workers,
		meta.Tokenizer)
	fmt.Printf("%s records, %s distinct words, %s total occurrences\n",
		humanize.Comma(int64(meta.Records)),
		humanize.Comma(int64(meta.DistinctWords)),
		humanize.Comma(int64(meta.TotalWords)))

	return printCounts(counts, c.Int("top"), false)
}

func deleteAction(c *cli.Context) error {
	runID := c.Args().First()
	if runID == "" {
		return fmt.Errorf("run ID argument is required")
	}

	store, closeStore, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Delete(runID); err != nil {
		return err
	}

	fmt.Printf("Deleted run %s\n", runID)
	return nil
}

func tokenizersAction(c *cli.Context) error {
	for _, name := range tokenize.List() {
		description, err := tokenize.GetDescription(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %s\n", name, description)
	}
	return nil
}
