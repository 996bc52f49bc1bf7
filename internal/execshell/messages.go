package execshell

import (
	"fmt"
	"strings"
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	flagArgumentPrefixConstant              = "-"
	emptyMessageValueConstant               = ""
)

const (
	gitStatusSubcommandConstant    = "status"
	gitFetchSubcommandConstant     = "fetch"
	gitBranchSubcommandConstant    = "branch"
	gitMergeSubcommandConstant     = "merge"
	gitMergeBaseSubcommandConstant = "merge-base"
	gitRevParseSubcommandConstant  = "rev-parse"
	gitLSRemoteSubcommandConstant  = "ls-remote"
	gitTagSubcommandConstant       = "tag"
	gitPushSubcommandConstant      = "push"
)

var gitSubcommandDescriptionMapping = map[string]string{
	gitStatusSubcommandConstant:    "Inspecting working tree status",
	gitFetchSubcommandConstant:     "Fetching from remote",
	gitBranchSubcommandConstant:    "Enumerating branches",
	gitMergeSubcommandConstant:     "Merging branch",
	gitMergeBaseSubcommandConstant: "Computing merge base",
	gitRevParseSubcommandConstant:  "Resolving revision",
	gitLSRemoteSubcommandConstant:  "Querying remote references",
	gitTagSubcommandConstant:       "Creating tag",
	gitPushSubcommandConstant:      "Pushing to remote",
}

// CommandMessageFormatter builds human-readable descriptions of command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage describes a command that is about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return fmt.Sprintf(genericStartTemplateConstant, formatter.describeCommand(command))
}

// BuildSuccessMessage describes a command that completed with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return fmt.Sprintf(genericSuccessTemplateConstant, formatter.describeCommand(command))
}

// BuildFailureMessage describes a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return fmt.Sprintf(genericFailureTemplateConstant, formatter.describeCommand(command), result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
}

// BuildExecutionFailureMessage describes a command that could not be executed.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(genericExecutionFailureTemplateConstant, formatter.describeCommand(command), failureMessage)
}

func (formatter CommandMessageFormatter) describeCommand(command ShellCommand) string {
	commandLabel := formatCommandLabel(command)
	if command.Name != CommandGit {
		return commandLabel
	}

	subcommandName := formatter.firstNonFlagArgument(command.Details.Arguments)
	subcommandDescription, descriptionExists := gitSubcommandDescriptionMapping[subcommandName]
	if !descriptionExists {
		return commandLabel
	}
	return fmt.Sprintf("%s (%s)", subcommandDescription, commandLabel)
}

func (formatter CommandMessageFormatter) firstNonFlagArgument(arguments []string) string {
	for _, argumentValue := range arguments {
		if !strings.HasPrefix(argumentValue, flagArgumentPrefixConstant) {
			return argumentValue
		}
	}
	return emptyMessageValueConstant
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyMessageValueConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}
