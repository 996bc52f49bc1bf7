package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestConfirmModelAnswers(testInstance *testing.T) {
	testCases := []struct {
		name           string
		defaultYes     bool
		message        tea.KeyMsg
		expectedAnswer bool
		expectedAbort  bool
	}{
		{name: "affirmative", defaultYes: false, message: runeKeyMessage('y'), expectedAnswer: true},
		{name: "negative", defaultYes: true, message: runeKeyMessage('n'), expectedAnswer: false},
		{name: "enter_uses_default_yes", defaultYes: true, message: keyMessage(tea.KeyEnter), expectedAnswer: true},
		{name: "enter_uses_default_no", defaultYes: false, message: keyMessage(tea.KeyEnter), expectedAnswer: false},
		{name: "escape_aborts", defaultYes: true, message: keyMessage(tea.KeyEsc), expectedAbort: true},
		{name: "interrupt_aborts", defaultYes: false, message: keyMessage(tea.KeyCtrlC), expectedAbort: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			model := newConfirmModel("Proceed?", testCase.defaultYes)

			updatedModel, command := model.Update(testCase.message)
			require.NotNil(testInstance, command)

			confirmState := updatedModel.(confirmModel)
			require.Equal(testInstance, testCase.expectedAbort, confirmState.aborted)
			if !testCase.expectedAbort {
				require.Equal(testInstance, testCase.expectedAnswer, confirmState.answer)
			}
		})
	}
}

func TestConfirmModelViewShowsDefaultMarker(testInstance *testing.T) {
	require.Contains(testInstance, newConfirmModel("Proceed?", true).View(), "[Y/n]")
	require.Contains(testInstance, newConfirmModel("Proceed?", false).View(), "[y/N]")
}
