package ui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	promptAbortedMessageConstant      = "prompt aborted"
	noSelectableOptionMessageConstant = "no selectable option available"
)

// ErrPromptAborted signals the user dismissed a prompt via escape or an interrupt.
var ErrPromptAborted = errors.New(promptAbortedMessageConstant)

// ErrNoSelectableOption signals every presented option was disabled.
var ErrNoSelectableOption = errors.New(noSelectableOptionMessageConstant)

// BranchOption describes one entry of the branch selection prompt.
type BranchOption struct {
	Label    string
	Hint     string
	Disabled bool
}

// InteractionPrompter drives bubbletea prompts on the attached terminal.
type InteractionPrompter struct {
	input  io.Reader
	output io.Writer
}

// NewInteractionPrompter constructs a prompter bound to the provided streams.
//
// Nil streams fall back to the terminal defaults chosen by bubbletea.
func NewInteractionPrompter(input io.Reader, output io.Writer) *InteractionPrompter {
	return &InteractionPrompter{input: input, output: output}
}

// SelectBranch presents a single-select list and returns the chosen option index.
//
// Disabled options are rendered but cannot be chosen. An abort via escape,
// Ctrl-C, or context cancellation yields ErrPromptAborted.
func (prompter *InteractionPrompter) SelectBranch(executionContext context.Context, title string, options []BranchOption) (int, error) {
	initialModel, modelError := newSelectModel(title, options)
	if modelError != nil {
		return 0, modelError
	}

	finalModel, runError := prompter.runProgram(executionContext, initialModel)
	if runError != nil {
		return 0, runError
	}

	selectState := finalModel.(selectModel)
	if selectState.aborted {
		return 0, ErrPromptAborted
	}
	return selectState.cursor, nil
}

// Confirm presents a yes/no question with the supplied default answer.
func (prompter *InteractionPrompter) Confirm(executionContext context.Context, question string, defaultYes bool) (bool, error) {
	finalModel, runError := prompter.runProgram(executionContext, newConfirmModel(question, defaultYes))
	if runError != nil {
		return false, runError
	}

	confirmState := finalModel.(confirmModel)
	if confirmState.aborted {
		return false, ErrPromptAborted
	}
	return confirmState.answer, nil
}

func (prompter *InteractionPrompter) runProgram(executionContext context.Context, initialModel tea.Model) (tea.Model, error) {
	programOptions := []tea.ProgramOption{tea.WithContext(executionContext)}
	if prompter.input != nil {
		programOptions = append(programOptions, tea.WithInput(prompter.input))
	}
	if prompter.output != nil {
		programOptions = append(programOptions, tea.WithOutput(prompter.output))
	}

	finalModel, runError := tea.NewProgram(initialModel, programOptions...).Run()
	if runError != nil {
		if errors.Is(runError, tea.ErrProgramKilled) || errors.Is(runError, tea.ErrInterrupted) || executionContext.Err() != nil {
			return nil, ErrPromptAborted
		}
		return nil, runError
	}
	return finalModel, nil
}
