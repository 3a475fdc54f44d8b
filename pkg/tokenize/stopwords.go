package tokenize

import "strings"

// commonWords is the set of frequently occurring English words ignored by the
// stopword filter. The list can be extended as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "also": {},
	"am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "even": {}, "ever": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},

	"just": {},

	"like": {},

	"may": {}, "me": {}, "might": {}, "more": {}, "most": {}, "much": {},
	"must": {}, "my": {},

	"no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "own": {},

	"same": {}, "she": {}, "should": {}, "since": {}, "so": {}, "some": {},
	"such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {},
}

// IsStopword reports whether a word is a common stopword that the filter
// should drop.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}
