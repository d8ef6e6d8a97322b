package language

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/spanish"
)

// Analyzer normalizes raw text into ranking tokens for one language:
// lower-case, unicode word extraction, stopword removal, snowball stem.
type Analyzer struct {
	name         string
	stopwords    map[string]struct{}
	stem         func(string, bool) string
	tokenPattern *regexp.Regexp
}

// wordPattern matches unicode words, keeping inner apostrophes ("don't").
var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// New returns the analyzer for the given language name.
// Supported: "english", "spanish".
func New(name string) (*Analyzer, error) {
	switch name {
	case "english", "":
		return &Analyzer{name: "english", stopwords: englishStopwords, stem: english.Stem, tokenPattern: wordPattern}, nil
	case "spanish":
		return &Analyzer{name: "spanish", stopwords: spanishStopwords, stem: spanish.Stem, tokenPattern: wordPattern}, nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", name)
	}
}

// Supported reports whether a language name has an analyzer.
func Supported(name string) bool {
	switch name {
	case "english", "spanish", "":
		return true
	}
	return false
}

// Name returns the language this analyzer handles.
func (a *Analyzer) Name() string { return a.name }

// IsStop reports whether the lower-cased word is a stopword.
func (a *Analyzer) IsStop(word string) bool {
	_, ok := a.stopwords[word]
	return ok
}

// Tokenize extracts the normalized tokens of a sentence. Stopwords and
// words shorter than three runes are dropped; surviving words are
// stemmed. The result may be empty.
func (a *Analyzer) Tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := a.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if _, isStop := a.stopwords[w]; isStop {
			continue
		}
		if utf8.RuneCountInString(w) < 3 {
			continue
		}
		out = append(out, a.stem(w, true))
	}
	return out
}
