package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

/*generates synthetic text lines for stress-testing the counting engine*/

var (
	LineCount    = flag.Int("line_count", 1e4, "Number of lines to generate")
	WordsPerLine = flag.Int("words_per_line", 8, "Words per line")
	OutputPath   = flag.String("output", "var/testdata.txt", "Output file path")
)

// Words is a small pool so that many lines collapse onto the same handful of
// keys, which is exactly the lost-update stress shape.
var Words = []string{
	"alpha", "beta", "gamma", "delta", "epsilon",
	"red", "green", "blue",
	"sentence", "ends", "with",
	"Hello,", "world!", "don't", "...",
}

func generateLine() string {
	words := make([]string, *WordsPerLine)
	for i := range words {
		words[i] = Words[rand.IntN(len(Words))]
	}
	return strings.Join(words, " ") + "\n"
}

func main() {
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*OutputPath), 0755); err != nil {
		panic(err)
	}
	file, err := os.Create(*OutputPath)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	for i := 0; i < *LineCount; i++ {
		_, err := file.WriteString(generateLine())
		if err != nil {
			panic(err)
		}
	}
}
