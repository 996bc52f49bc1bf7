package integrate_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kestrov/brim/internal/integrate"
	"github.com/kestrov/brim/internal/ui"
)

type capturingReporter struct {
	plainMessages   []string
	successMessages []string
	errorMessages   []string
}

func (reporter *capturingReporter) Plainf(format string, formatArguments ...any) {
	reporter.plainMessages = append(reporter.plainMessages, fmt.Sprintf(format, formatArguments...))
}

func (reporter *capturingReporter) Successf(format string, formatArguments ...any) {
	reporter.successMessages = append(reporter.successMessages, fmt.Sprintf(format, formatArguments...))
}

func (reporter *capturingReporter) Warningf(string, ...any) {}

func (reporter *capturingReporter) Errorf(format string, formatArguments ...any) {
	reporter.errorMessages = append(reporter.errorMessages, fmt.Sprintf(format, formatArguments...))
}

func buildTestCommand(testInstance *testing.T, repository *stubRepository, prompter *stubPrompter, reporter *capturingReporter, configuration integrate.CommandConfiguration) *cobra.Command {
	builder := &integrate.CommandBuilder{
		ConfigurationProvider: func() integrate.CommandConfiguration { return configuration },
		Repository:            repository,
		Prompter:              prompter,
		Reporter:              reporter,
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetOut(io.Discard)
	command.SetErr(io.Discard)
	return command
}

func TestCommandBuilderBuildMetadata(testInstance *testing.T) {
	command := buildTestCommand(testInstance, newIntegrableRepository(), &stubPrompter{}, &capturingReporter{}, integrate.CommandConfiguration{})

	require.Equal(testInstance, "integrate", command.Use)
	require.NotNil(testInstance, command.Flags().Lookup("remote"))
	require.NotNil(testInstance, command.Flags().Lookup("yes"))
}

func TestCommandRejectsPositionalArguments(testInstance *testing.T) {
	command := buildTestCommand(testInstance, newIntegrableRepository(), &stubPrompter{}, &capturingReporter{}, integrate.CommandConfiguration{})
	command.SetArgs([]string{"feature-x"})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "positional arguments")
}

func TestCommandOutcomeMessages(testInstance *testing.T) {
	testCases := []struct {
		name            string
		prompter        *stubPrompter
		expectedSuccess string
		expectedPlain   string
	}{
		{
			name:            "declined_merge",
			prompter:        &stubPrompter{selectionIndex: 1, confirmAnswers: []bool{false}},
			expectedSuccess: "No merge today. Your branches remain blissfully untouched.\n",
		},
		{
			name:          "aborted_selection",
			prompter:      &stubPrompter{selectionError: ui.ErrPromptAborted},
			expectedPlain: "Stopping here, nothing was changed. Goodbye!\n",
		},
		{
			name:            "completed_integration",
			prompter:        &stubPrompter{selectionIndex: 1, confirmAnswers: []bool{true, false, false, false}},
			expectedSuccess: "Integration of feature-x into main complete.\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			reporter := &capturingReporter{}
			command := buildTestCommand(testInstance, newIntegrableRepository(), testCase.prompter, reporter, integrate.CommandConfiguration{})

			require.NoError(testInstance, command.Execute())
			if len(testCase.expectedSuccess) > 0 {
				require.Contains(testInstance, reporter.successMessages, testCase.expectedSuccess)
			}
			if len(testCase.expectedPlain) > 0 {
				require.Contains(testInstance, reporter.plainMessages, testCase.expectedPlain)
			}
		})
	}
}

func TestCommandRemoteResolution(testInstance *testing.T) {
	testCases := []struct {
		name             string
		configuredRemote string
		commandArguments []string
		expectedFetch    string
	}{
		{
			name:          "default_remote",
			expectedFetch: "fetch origin",
		},
		{
			name:             "configured_remote",
			configuredRemote: "upstream",
			expectedFetch:    "fetch upstream",
		},
		{
			name:             "flag_overrides_configuration",
			configuredRemote: "upstream",
			commandArguments: []string{"--remote", "fork"},
			expectedFetch:    "fetch fork",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			repository := newIntegrableRepository()
			prompter := &stubPrompter{selectionIndex: 1, confirmAnswers: []bool{false}}
			configuration := integrate.CommandConfiguration{RemoteName: testCase.configuredRemote}
			command := buildTestCommand(testInstance, repository, prompter, &capturingReporter{}, configuration)
			command.SetArgs(testCase.commandArguments)

			require.NoError(testInstance, command.Execute())
			require.Contains(testInstance, repository.recordedCalls, testCase.expectedFetch)
		})
	}
}

func TestCommandAssumeYesFlagSkipsPrompts(testInstance *testing.T) {
	repository := newIntegrableRepository()
	prompter := &stubPrompter{selectionIndex: 1}
	command := buildTestCommand(testInstance, repository, prompter, &capturingReporter{}, integrate.CommandConfiguration{})
	command.SetArgs([]string{"--yes"})

	require.NoError(testInstance, command.Execute())
	require.Empty(testInstance, prompter.recordedQuestions)
	require.Contains(testInstance, repository.recordedCalls, "push origin main")
}

func TestCommandTranslatesServiceFailure(testInstance *testing.T) {
	repository := newIntegrableRepository()
	repository.cleanWorktree = false
	reporter := &capturingReporter{}
	command := buildTestCommand(testInstance, repository, &stubPrompter{}, reporter, integrate.CommandConfiguration{})

	executionError := command.Execute()
	require.ErrorIs(testInstance, executionError, integrate.ErrIntegrationFailed)
	require.Len(testInstance, reporter.errorMessages, 1)
	require.Contains(testInstance, reporter.errorMessages[0], "uncommitted changes")
}
