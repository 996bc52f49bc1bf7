package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	selectedOptionMarkerConstant   = "▸ "
	unselectedOptionMarkerConstant = "  "
	disabledOptionSuffixConstant   = " (current)"
	selectHelpLineConstant         = "↑/↓ move · enter select · esc cancel"
)

var (
	selectTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	selectedOptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	disabledOptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	optionHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpLineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type selectKeyMap struct {
	MoveUp   key.Binding
	MoveDown key.Binding
	Accept   key.Binding
	Abort    key.Binding
}

func newSelectKeyMap() selectKeyMap {
	return selectKeyMap{
		MoveUp:   key.NewBinding(key.WithKeys("up", "k")),
		MoveDown: key.NewBinding(key.WithKeys("down", "j")),
		Accept:   key.NewBinding(key.WithKeys("enter")),
		Abort:    key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

type selectModel struct {
	title   string
	options []BranchOption
	keys    selectKeyMap
	cursor  int
	aborted bool
}

func newSelectModel(title string, options []BranchOption) (selectModel, error) {
	initialCursor := -1
	for optionIndex, option := range options {
		if !option.Disabled {
			initialCursor = optionIndex
			break
		}
	}
	if initialCursor == -1 {
		return selectModel{}, ErrNoSelectableOption
	}

	return selectModel{
		title:   title,
		options: options,
		keys:    newSelectKeyMap(),
		cursor:  initialCursor,
	}, nil
}

// Init implements tea.Model.
func (model selectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model by moving the cursor across enabled options.
func (model selectModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, isKeyMessage := message.(tea.KeyMsg)
	if !isKeyMessage {
		return model, nil
	}

	switch {
	case key.Matches(keyMessage, model.keys.MoveUp):
		model.cursor = model.nextEnabledIndex(-1)
	case key.Matches(keyMessage, model.keys.MoveDown):
		model.cursor = model.nextEnabledIndex(1)
	case key.Matches(keyMessage, model.keys.Accept):
		return model, tea.Quit
	case key.Matches(keyMessage, model.keys.Abort):
		model.aborted = true
		return model, tea.Quit
	}

	return model, nil
}

// View implements tea.Model by rendering the option list and the highlighted hint.
func (model selectModel) View() string {
	var rendered strings.Builder
	rendered.WriteString(selectTitleStyle.Render(model.title))
	rendered.WriteString("\n\n")

	for optionIndex, option := range model.options {
		optionMarker := unselectedOptionMarkerConstant
		optionLabel := option.Label

		switch {
		case option.Disabled:
			optionLabel = disabledOptionStyle.Render(optionLabel + disabledOptionSuffixConstant)
		case optionIndex == model.cursor:
			optionMarker = selectedOptionMarkerConstant
			optionLabel = selectedOptionStyle.Render(optionLabel)
		}

		rendered.WriteString(optionMarker + optionLabel + "\n")
	}

	rendered.WriteString("\n")
	highlightedHint := model.options[model.cursor].Hint
	if len(highlightedHint) > 0 {
		rendered.WriteString(optionHintStyle.Render(highlightedHint))
		rendered.WriteString("\n")
	}
	rendered.WriteString(helpLineStyle.Render(selectHelpLineConstant))
	rendered.WriteString("\n")

	return rendered.String()
}

// nextEnabledIndex walks in the given direction until it finds an enabled
// option, keeping the cursor in place when none exists on that side.
func (model selectModel) nextEnabledIndex(direction int) int {
	candidateIndex := model.cursor + direction
	for candidateIndex >= 0 && candidateIndex < len(model.options) {
		if !model.options[candidateIndex].Disabled {
			return candidateIndex
		}
		candidateIndex += direction
	}
	return model.cursor
}
