package language

import (
	"reflect"
	"testing"
)

func TestTokenizeEnglish(t *testing.T) {
	a, err := New("english")
	if err != nil {
		t.Fatal(err)
	}
	got := a.Tokenize("The cats are running quickly through the garden.")
	want := []string{"cat", "run", "quick", "garden"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeDropsStopwordsAndShortWords(t *testing.T) {
	a, _ := New("english")
	if got := a.Tokenize("It is an ox."); len(got) != 0 {
		t.Errorf("expected no tokens for stopwords and short words, got %v", got)
	}
}

func TestTokenizeSpanish(t *testing.T) {
	a, err := New("spanish")
	if err != nil {
		t.Fatal(err)
	}
	got := a.Tokenize("Los gatos corren por el jardín.")
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %v", got)
	}
	for _, tok := range got {
		if tok == "los" || tok == "el" || tok == "por" {
			t.Errorf("stopword %q survived tokenization", tok)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	a, _ := New("english")
	if got := a.Tokenize(""); got != nil {
		t.Errorf("expected nil tokens for empty text, got %v", got)
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	if _, err := New("klingon"); err == nil {
		t.Error("expected error for unsupported language")
	}
	if Supported("klingon") {
		t.Error("klingon reported as supported")
	}
	if !Supported("english") || !Supported("spanish") {
		t.Error("built-in languages reported as unsupported")
	}
}

func TestDefaultLanguageIsEnglish(t *testing.T) {
	a, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name() != "english" {
		t.Errorf("default language = %s, want english", a.Name())
	}
}

func TestIsStop(t *testing.T) {
	a, _ := New("english")
	if !a.IsStop("the") {
		t.Error(`"the" should be a stopword`)
	}
	if a.IsStop("corpus") {
		t.Error(`"corpus" should not be a stopword`)
	}
}
