package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"docsum/internal/backend/local"
	"docsum/internal/config"
	"docsum/internal/fileproc"
	"docsum/internal/language"
	"docsum/internal/pipeline"
	"docsum/internal/sentence"
	"docsum/internal/stats"
	"docsum/internal/tui"
)

// localSummarizer re-runs the pipeline over the loaded text with the
// local backend; every run is independent.
type localSummarizer struct {
	text     string
	analyzer *language.Analyzer
	cfg      *config.AppConfig
	factor   float64
}

func (s *localSummarizer) Summarize(numSentences int) (*pipeline.Result, error) {
	src := sentence.FromString(s.text, s.analyzer, s.cfg.Pipeline.MinSentenceLength)
	return pipeline.Run(context.Background(), src, local.NewPool(s.cfg.Backend.LocalWorkers), pipeline.Options{
		NumSentences:           numSentences,
		EarlyTerminationFactor: s.factor,
		MinBatch:               s.cfg.Pipeline.MinBatch,
	})
}

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		lang    string
		n       int
		factor  float64
	)
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.StringVar(&lang, "lang", "", "Document language (english, spanish)")
	flag.IntVar(&n, "n", 0, "Number of summary sentences")
	flag.Float64Var(&factor, "factor", 0, "Early termination factor (>= 1)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: docsum-tui [--config=config.yaml] [--n=5] [--lang=english] file.txt [file2.md ...]")
		os.Exit(1)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if lang == "" {
		lang = cfg.Language.Default
	}
	if n == 0 {
		n = cfg.Pipeline.DefaultNumSentences
	}
	if factor == 0 {
		factor = cfg.Pipeline.DefaultFactor
	}

	analyzer, err := language.New(lang)
	if err != nil {
		log.Fatal(err)
	}

	var parts []string
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("reading %s: %v", path, err)
		}
		text, err := fileproc.Extract(path, data)
		if err != nil {
			log.Fatalf("decoding %s: %v", path, err)
		}
		parts = append(parts, text)
	}

	svc := &localSummarizer{
		text:     strings.Join(parts, " "),
		analyzer: analyzer,
		cfg:      cfg,
		factor:   factor,
	}

	result, err := svc.Summarize(n)
	if err != nil {
		log.Fatalf("summarization failed: %v", err)
	}
	st, err := stats.Collect(sentence.FromString(svc.text, analyzer, cfg.Pipeline.MinSentenceLength))
	if err != nil {
		log.Fatalf("statistics failed: %v", err)
	}

	m := tui.New(svc, result, st)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
