// Package tokenize provides the record-to-token transforms consumed by the
// counting engine. Tokenizers are pure and total: any input string, including
// the empty string, yields a (possibly empty) slice of tokens, so they are
// safe to call concurrently from independent workers.
package tokenize

import (
	"strings"
	"unicode"
)

// Tokenizer turns one text record into a sequence of normalized tokens.
type Tokenizer interface {
	Tokenize(record string) []string
	Description() string
}

// Simple splits a record on whitespace, removes every punctuation and symbol
// rune and lowercases what remains. Symbols are stripped alongside punctuation
// because C ispunct covers both classes: "1+1" and "1.1" normalize the same
// way. A token made entirely of punctuation normalizes to the empty string and
// is still emitted: the empty string is a valid key, and counting it keeps the
// total token count equal to the whitespace field count. Set DropEmpty to
// discard such tokens instead.
type Simple struct {
	DropEmpty bool
}

func (s Simple) Tokenize(record string) []string {
	fields := strings.Fields(record)
	tokens := make([]string, 0, len(fields))

	for _, field := range fields {
		token := strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return -1
			}
			return unicode.ToLower(r)
		}, field)

		if token == "" && s.DropEmpty {
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens
}

func (s Simple) Description() string {
	return "whitespace-split words, lowercased with punctuation removed"
}

// Letters splits on every rune that is neither a letter nor a digit. A run of
// punctuation is a separator, not a token, so Letters never emits the empty
// string.
type Letters struct{}

func (Letters) Tokenize(record string) []string {
	return strings.FieldsFunc(strings.ToLower(record), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (Letters) Description() string {
	return "runs of letters and digits, lowercased"
}

// WithStopwords wraps a tokenizer and drops common English stopwords plus any
// extra words supplied by the caller. Extra words are matched case-insensitively.
func WithStopwords(inner Tokenizer, extra ...string) Tokenizer {
	set := make(map[string]struct{}, len(extra))
	for _, word := range extra {
		set[strings.ToLower(word)] = struct{}{}
	}

	return &stopwordFilter{inner: inner, extra: set}
}

type stopwordFilter struct {
	inner Tokenizer
	extra map[string]struct{}
}

func (f *stopwordFilter) Tokenize(record string) []string {
	tokens := f.inner.Tokenize(record)
	kept := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if IsStopword(token) {
			continue
		}
		if _, skip := f.extra[token]; skip {
			continue
		}

		kept = append(kept, token)
	}

	return kept
}

func (f *stopwordFilter) Description() string {
	return f.inner.Description() + ", stopwords removed"
}
