package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docsum/internal/pipeline"
	"docsum/internal/stats"
)

// SummarizerPort is the TUI-facing subset of the summarization core:
// re-run the pipeline with a new summary length.
type SummarizerPort interface {
	Summarize(numSentences int) (*pipeline.Result, error)
}

// Model is the Bubble Tea model for the summary viewer.
type Model struct {
	service  SummarizerPort
	input    textinput.Model
	viewport viewport.Model
	result   *pipeline.Result
	stats    *stats.Statistics
	cursor   int
	status   string
	ready    bool
}

// New creates a viewer over an already computed result. st may be nil
// when statistics were not requested.
func New(service SummarizerPort, result *pipeline.Result, st *stats.Statistics) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Sentence count, press Enter to re-summarize"
	ti.Focus()
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		result:   result,
		stats:    st,
		status:   fmt.Sprintf("Summarized with %q backend. Up/down to browse.", result.Method),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := summaryBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 3 + ih // header, stats line, status
		vh := msg.Height - reserved - fh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderSummary())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw != "" {
				n, err := strconv.Atoi(raw)
				if err != nil || n <= 0 {
					m.status = "Sentence count must be a positive integer."
					return m, nil
				}
				res, err := m.service.Summarize(n)
				if err != nil {
					m.status = "Error: " + err.Error()
				} else {
					m.result = res
					m.cursor = 0
					m.status = fmt.Sprintf("Re-summarized to %d sentences (%d processed).",
						len(res.Summary), res.SentencesProcessed)
					m.viewport.SetContent(m.renderSummary())
				}
				return m, nil
			}
		case "down":
			if len(m.result.Summary) > 0 {
				m.cursor = (m.cursor + 1) % len(m.result.Summary)
				m.viewport.SetContent(m.renderSummary())
				return m, nil
			}
		case "up":
			if len(m.result.Summary) > 0 {
				m.cursor = (m.cursor - 1 + len(m.result.Summary)) % len(m.result.Summary)
				m.viewport.SetContent(m.renderSummary())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the summary browser layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("docsum: extractive summary")
	statsLine := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.renderStats())
	body := summaryBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + statsLine + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderSummary() string {
	if len(m.result.Summary) == 0 {
		return "No summary."
	}
	lines := make([]string, len(m.result.Summary))
	for i, sent := range m.result.Summary {
		prefix := fmt.Sprintf("%2d. ", i+1)
		if i == m.cursor {
			lines[i] = highlightStyle.Render(prefix + sent)
		} else {
			lines[i] = prefix + sent
		}
	}
	return strings.Join(lines, "\n\n")
}

func (m Model) renderStats() string {
	parts := []string{
		fmt.Sprintf("%d sentences processed", m.result.SentencesProcessed),
		fmt.Sprintf("backend=%s", m.result.Method),
		fmt.Sprintf("total=%.3fs", m.result.Timings.Total.Seconds()),
	}
	if m.stats != nil {
		parts = append(parts,
			fmt.Sprintf("vocab=%d", m.stats.VocabularySize),
			fmt.Sprintf("words=%d", m.stats.WordCount))
	}
	return strings.Join(parts, "  ·  ")
}

var (
	summaryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
