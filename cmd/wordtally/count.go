package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"pkg.jsn.cam/wordtally/internal/input"
	"pkg.jsn.cam/wordtally/internal/results"
	"pkg.jsn.cam/wordtally/pkg/storage"
	"pkg.jsn.cam/wordtally/pkg/tokenize"
	"pkg.jsn.cam/wordtally/pkg/wordtally"
)

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func countAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	// Start from the config file, let explicitly set flags override.
	cfg := &fileConfig{Tokenizer: "simple"}
	if path := c.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return err
		}
		if loaded.Tokenizer == "" {
			loaded.Tokenizer = "simple"
		}
		cfg = loaded
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("tokenizer") {
		cfg.Tokenizer = c.String("tokenizer")
	}
	if c.IsSet("drop-empty") {
		cfg.DropEmpty = c.Bool("drop-empty")
	}
	if c.IsSet("stopwords") {
		cfg.Stopwords = c.Bool("stopwords")
	}
	if extra := c.StringSlice("stopword"); len(extra) > 0 {
		cfg.Stopwords = true
		cfg.Extra = append(cfg.Extra, extra...)
	}

	tokenizer, err := buildTokenizer(cfg)
	if err != nil {
		return fmt.Errorf("%w: %s (have %v)", err, cfg.Tokenizer, tokenize.List())
	}

	records, totalBytes, err := loadRecords(c.Args().Slice())
	if err != nil {
		return err
	}

	var progress func(int)
	if !c.Bool("quiet") {
		bar := progressbar.Default(int64(len(records)), "counting")
		progress = func(n int) { _ = bar.Add(n) }
	}

	engine := wordtally.New(wordtally.Options{
		Workers:   cfg.Workers,
		Tokenizer: tokenizer,
		Progress:  progress,
	})

	logger.Info("starting count",
		"records", len(records),
		"input_size", humanize.Bytes(uint64(totalBytes)),
		"workers", engine.Workers(),
		"tokenizer", cfg.Tokenizer)

	counts, err := engine.Count(context.Background(), records)
	if err != nil {
		return fmt.Errorf("count failed: %w", err)
	}

	totalWords := 0
	for _, count := range counts {
		totalWords += count
	}
	logger.Info("count complete",
		"distinct_words", len(counts),
		"total_words", humanize.Comma(int64(totalWords)))

	if dbPath := c.String("db"); dbPath != "" {
		meta, err := saveRun(dbPath, results.RunMeta{
			Records:   len(records),
			Workers:   engine.Workers(),
			Tokenizer: cfg.Tokenizer,
		}, counts)
		if err != nil {
			return err
		}
		logger.Info("run persisted", "run_id", meta.ID, "db", dbPath)
	}

	return printCounts(counts, c.Int("top"), c.Bool("json"))
}

func buildTokenizer(cfg *fileConfig) (tokenize.Tokenizer, error) {
	tokenizer, err := tokenize.Get(cfg.Tokenizer)
	if err != nil {
		return nil, err
	}

	if simple, ok := tokenizer.(tokenize.Simple); ok {
		simple.DropEmpty = cfg.DropEmpty
		tokenizer = simple
	}

	if cfg.Stopwords {
		tokenizer = tokenize.WithStopwords(tokenizer, cfg.Extra...)
	}

	return tokenizer, nil
}

func loadRecords(paths []string) ([]string, int, error) {
	var (
		records []string
		err     error
	)

	if len(paths) == 0 {
		records, err = input.Read(os.Stdin)
	} else {
		records, err = input.ReadFiles(paths...)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load records: %w", err)
	}

	totalBytes := 0
	for _, record := range records {
		totalBytes += len(record)
	}

	return records, totalBytes, nil
}

func saveRun(dbPath string, meta results.RunMeta, counts map[string]int) (results.RunMeta, error) {
	backend, err := storage.NewBboltBackend(dbPath)
	if err != nil {
		return results.RunMeta{}, err
	}
	defer backend.Close()

	store, err := results.NewStore(backend)
	if err != nil {
		return results.RunMeta{}, err
	}

	return store.Save(meta, counts)
}

// printCounts writes the final map to stdout: sorted by key for deterministic
// output, by descending count when top > 0, or as JSON.
func printCounts(counts map[string]int, top int, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(counts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if top > 0 {
		for i, wc := range topWords(counts, top) {
			fmt.Printf("%d. %s: %d\n", i+1, wc.word, wc.count)
		}
		return nil
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		fmt.Printf("%s: %d\n", word, counts[word])
	}

	return nil
}

type wordCount struct {
	word  string
	count int
}

// topWords returns the n most frequent words, ties broken lexicographically.
func topWords(counts map[string]int, n int) []wordCount {
	sorted := make([]wordCount, 0, len(counts))
	for word, count := range counts {
		sorted = append(sorted, wordCount{word: word, count: count})
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].word < sorted[j].word
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}
