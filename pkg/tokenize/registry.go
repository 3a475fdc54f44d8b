package tokenize

import (
	"errors"
	"sort"
)

var ErrUnknownTokenizer = errors.New("unknown tokenizer")

// Tokenizers maps the names accepted on the command line to implementations.
var Tokenizers = map[string]Tokenizer{
	"simple":  Simple{},
	"letters": Letters{},
}

func IsValid(name string) bool {
	_, exists := Tokenizers[name]
	return exists
}

func Get(name string) (Tokenizer, error) {
	tokenizer, exists := Tokenizers[name]
	if !exists {
		return nil, ErrUnknownTokenizer
	}
	return tokenizer, nil
}

func List() []string {
	var names []string
	for name := range Tokenizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetDescription(name string) (string, error) {
	if tokenizer, exists := Tokenizers[name]; exists {
		return tokenizer.Description(), nil
	}
	return "", ErrUnknownTokenizer
}
