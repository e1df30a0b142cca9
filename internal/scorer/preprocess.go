package scorer

import (
	"strings"
	"unicode"
)

// stopwords is a compact English stopword list. Enough to strip filler from
// short interest statements; exhaustive coverage is not the goal.
var stopwords = map[string]bool{
	"a": true, "about": true, "after": true, "all": true, "also": true,
	"am": true, "an": true, "and": true, "any": true, "are": true,
	"as": true, "at": true, "be": true, "because": true, "been": true,
	"being": true, "but": true, "by": true, "can": true, "could": true,
	"did": true, "do": true, "does": true, "doing": true, "for": true,
	"from": true, "had": true, "has": true, "have": true, "he": true,
	"her": true, "here": true, "him": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "just": true, "like": true, "me": true,
	"more": true, "most": true, "my": true, "no": true, "not": true,
	"of": true, "on": true, "one": true, "only": true, "or": true,
	"other": true, "our": true, "out": true, "over": true, "own": true,
	"really": true, "she": true, "so": true, "some": true, "such": true,
	"than": true, "that": true, "the": true, "their": true, "them": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "to": true, "too": true, "under": true,
	"up": true, "very": true, "want": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"who": true, "will": true, "with": true, "would": true, "you": true,
	"your": true,
}

// preprocess normalizes raw text for the vector model: lowercase, strip
// punctuation and digits, drop stopwords, trim plural suffixes. The suffix
// trim is a cheap stand-in for lemmatization that keeps "robots"/"robot" and
// "engines"/"engine" on the same term.
func preprocess(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if stopwords[tok] {
			continue
		}
		out = append(out, singularize(tok))
	}
	return strings.Join(out, " ")
}

// singularize trims common plural endings from tokens of four or more
// letters. Irregular plurals pass through unchanged.
func singularize(tok string) string {
	switch {
	case len(tok) > 4 && strings.HasSuffix(tok, "ies"):
		return tok[:len(tok)-3] + "y"
	case len(tok) > 4 && strings.HasSuffix(tok, "sses"):
		return tok[:len(tok)-2]
	case len(tok) >= 4 && strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") && !strings.HasSuffix(tok, "us"):
		return tok[:len(tok)-1]
	}
	return tok
}
