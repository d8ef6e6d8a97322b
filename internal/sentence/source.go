package sentence

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"docsum/internal/domain"
	"docsum/internal/language"
)

// DefaultMinLength is the minimum rune length of a usable sentence.
const DefaultMinLength = 10

const readChunkSize = 64 * 1024

// boundaryPattern locates sentence boundaries: terminal punctuation,
// optionally followed by a closing quote or bracket, then whitespace.
var boundaryPattern = regexp.MustCompile(`[.!?]+["')\]]?\s+`)

// Source streams sentences out of an io.Reader one boundary at a time.
// It is forward-only: the reader is consumed as sentences are pulled and
// only the unterminated tail is buffered, so an arbitrarily large
// document never needs to be held in memory. Positions are assigned in
// acceptance order starting at zero.
type Source struct {
	r        *bufio.Reader
	analyzer *language.Analyzer
	minLen   int

	buf     strings.Builder
	pending []domain.Sentence
	next    int
	drained bool
}

// New creates a streaming source over r. minLen <= 0 selects
// DefaultMinLength.
func New(r io.Reader, analyzer *language.Analyzer, minLen int) *Source {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	return &Source{
		r:        bufio.NewReaderSize(r, readChunkSize),
		analyzer: analyzer,
		minLen:   minLen,
	}
}

// FromString creates a streaming source over in-memory text.
func FromString(text string, analyzer *language.Analyzer, minLen int) *Source {
	return New(strings.NewReader(text), analyzer, minLen)
}

// Next returns the next usable sentence, or io.EOF once the input is
// exhausted. Sentences that fail the validity filter are skipped without
// consuming a position.
func (s *Source) Next() (domain.Sentence, error) {
	for {
		if len(s.pending) > 0 {
			out := s.pending[0]
			s.pending = s.pending[1:]
			return out, nil
		}
		if s.drained {
			return domain.Sentence{}, io.EOF
		}
		if err := s.fill(); err != nil {
			return domain.Sentence{}, err
		}
	}
}

// fill reads one chunk from the reader and splits off every completed
// sentence, keeping the unterminated tail buffered for the next round.
func (s *Source) fill() error {
	chunk := make([]byte, readChunkSize)
	n, err := s.r.Read(chunk)
	if n > 0 {
		s.buf.Write(chunk[:n])
		s.split(false)
	}
	if err == io.EOF {
		s.drained = true
		s.split(true)
		return nil
	}
	return err
}

// split cuts the buffer at each sentence boundary. With flush set the
// remaining tail is emitted as the final sentence.
func (s *Source) split(flush bool) {
	text := s.buf.String()
	last := 0
	for _, loc := range boundaryPattern.FindAllStringIndex(text, -1) {
		s.accept(text[last:loc[1]])
		last = loc[1]
	}
	s.buf.Reset()
	tail := text[last:]
	if flush {
		s.accept(tail)
		return
	}
	s.buf.WriteString(tail)
}

func (s *Source) accept(raw string) {
	cleaned := strings.Join(strings.Fields(raw), " ")
	if !s.valid(cleaned) {
		return
	}
	s.pending = append(s.pending, domain.Sentence{
		Position: s.next,
		Text:     cleaned,
		Tokens:   s.analyzer.Tokenize(cleaned),
	})
	s.next++
}

// valid drops fragments too short to be a sentence and fragments with no
// letters at all (page numbers, separators, bare punctuation).
func (s *Source) valid(cleaned string) bool {
	if cleaned == "" || utf8.RuneCountInString(cleaned) < s.minLen {
		return false
	}
	for _, r := range cleaned {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
