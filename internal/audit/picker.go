package audit

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/bankradar/internal/model"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(1, 0, 1, 2)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 0, 0, 2)

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

// SourceCount is one entry of the source picker.
type SourceCount struct {
	Source string // empty means every source
	Count  int
}

// CountBySource returns an "all sources" entry followed by one entry per
// source, most postings first.
func CountBySource(postings []model.EnrichedPosting) []SourceCount {
	counts := make(map[string]int)
	for _, p := range postings {
		counts[p.Source]++
	}
	out := make([]SourceCount, 0, len(counts)+1)
	for src, n := range counts {
		out = append(out, SourceCount{Source: src, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Source < out[j].Source
	})
	return append([]SourceCount{{Count: len(postings)}}, out...)
}

// OfSource returns the postings of source, or all of them when source is empty.
func OfSource(postings []model.EnrichedPosting, source string) []model.EnrichedPosting {
	if source == "" {
		return postings
	}
	var out []model.EnrichedPosting
	for _, p := range postings {
		if p.Source == source {
			out = append(out, p)
		}
	}
	return out
}

type pickerModel struct {
	sources []SourceCount
	cursor  int
	chosen  int // -1 = no choice yet, -2 = quit
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.chosen = -2
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.sources)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("Posting Audit: select a source")
	s += "\n"

	for i, c := range m.sources {
		name := c.Source
		if name == "" {
			name = "All sources"
		}
		label := fmt.Sprintf("%s (%d)", name, c.Count)
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+label) + "\n"
		} else {
			s += pickerItemStyle.Render(label) + "\n"
		}
	}

	s += pickerHintStyle.Render("↑/↓/j/k navigate  enter select  q quit")
	return s
}

// RunSourcePicker shows an interactive source selector.
// Returns the index of the chosen entry, or a negative value if the user quit.
func RunSourcePicker(sources []SourceCount) (int, error) {
	m := pickerModel{
		sources: sources,
		chosen:  -1,
	}

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return -1, err
	}

	final := result.(pickerModel)
	return final.chosen, nil
}
