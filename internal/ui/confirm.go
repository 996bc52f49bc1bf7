package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultYesSuffixConstant = " [Y/n] "
	defaultNoSuffixConstant  = " [y/N] "
)

type confirmKeyMap struct {
	Affirm  key.Binding
	Decline key.Binding
	Default key.Binding
	Abort   key.Binding
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Affirm:  key.NewBinding(key.WithKeys("y", "Y")),
		Decline: key.NewBinding(key.WithKeys("n", "N")),
		Default: key.NewBinding(key.WithKeys("enter")),
		Abort:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

type confirmModel struct {
	question   string
	keys       confirmKeyMap
	defaultYes bool
	answer     bool
	aborted    bool
}

func newConfirmModel(question string, defaultYes bool) confirmModel {
	return confirmModel{question: question, keys: newConfirmKeyMap(), defaultYes: defaultYes}
}

// Init implements tea.Model.
func (model confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model by recording the answer or the abort state.
func (model confirmModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, isKeyMessage := message.(tea.KeyMsg)
	if !isKeyMessage {
		return model, nil
	}

	switch {
	case key.Matches(keyMessage, model.keys.Affirm):
		model.answer = true
		return model, tea.Quit
	case key.Matches(keyMessage, model.keys.Decline):
		model.answer = false
		return model, tea.Quit
	case key.Matches(keyMessage, model.keys.Default):
		model.answer = model.defaultYes
		return model, tea.Quit
	case key.Matches(keyMessage, model.keys.Abort):
		model.aborted = true
		return model, tea.Quit
	}

	return model, nil
}

// View implements tea.Model by rendering the question with its default marker.
func (model confirmModel) View() string {
	answerSuffix := defaultNoSuffixConstant
	if model.defaultYes {
		answerSuffix = defaultYesSuffixConstant
	}
	return selectTitleStyle.Render(model.question) + answerSuffix
}
