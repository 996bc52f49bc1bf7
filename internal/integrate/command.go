package integrate

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kestrov/brim/internal/execshell"
	"github.com/kestrov/brim/internal/gitrepo"
	"github.com/kestrov/brim/internal/ui"
	"github.com/kestrov/brim/internal/utils"
)

const (
	commandUseConstant              = "integrate"
	commandShortDescriptionConstant = "Merge a feature branch into the current branch with safety checks"
	commandLongDescriptionConstant  = "integrate validates that a feature branch is safe to merge, performs a " +
		"no-fast-forward merge into the current branch, and optionally tags the integration point, deletes the " +
		"merged branch, and pushes the result."
	unexpectedArgumentsMessageConstant = "integrate does not accept positional arguments"
	flagRemoteNameConstant             = "remote"
	flagRemoteDescriptionConstant      = "Name of the remote the branches are synchronized with"
	flagAssumeYesNameConstant          = "yes"
	flagAssumeYesDescriptionConstant   = "Assume yes for every confirmation prompt"

	configurationSourceLogMessageConstant = "configuration resolved"
	logFieldConfigurationFileConstant     = "config_file"

	declinedMessageConstant    = "No merge today. Your branches remain blissfully untouched.\n"
	abortedMessageConstant     = "Stopping here, nothing was changed. Goodbye!\n"
	completionTemplateConstant = "Integration of %s into %s complete.\n"
	failureTemplateConstant    = "%v\n"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for the integration workflow.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	Repository                   RepositoryService
	Prompter                     WorkflowPrompter
	Reporter                     WorkflowReporter
	WorkingDirectory             string
}

// Build constructs the integrate command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagRemoteNameConstant, "", flagRemoteDescriptionConstant)
	command.Flags().Bool(flagAssumeYesNameConstant, false, flagAssumeYesDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	options := builder.parseOptions(command)
	logger := builder.resolveLogger()
	reporter := builder.resolveReporter()

	if configurationFilePath, pathAvailable := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); pathAvailable {
		logger.Debug(configurationSourceLogMessageConstant, zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}

	repository, repositoryError := builder.resolveRepository(logger)
	if repositoryError != nil {
		return repositoryError
	}

	service, serviceError := NewService(Dependencies{
		Logger:      logger,
		Repository:  repository,
		Prompter:    builder.resolvePrompter(),
		Reporter:    reporter,
		ErrorStream: command.ErrOrStderr(),
	})
	if serviceError != nil {
		return serviceError
	}

	runResult, runError := service.Run(command.Context(), options)
	if runError != nil {
		reporter.Errorf(failureTemplateConstant, runError)
		return ErrIntegrationFailed
	}

	switch runResult.Outcome {
	case OutcomeDeclined:
		reporter.Successf(declinedMessageConstant)
	case OutcomeAborted:
		reporter.Plainf(abortedMessageConstant)
	default:
		reporter.Successf(completionTemplateConstant, runResult.SourceBranch, runResult.TargetBranch)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) Options {
	configuration := CommandConfiguration{}
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	remoteName := configuration.EffectiveRemoteName()
	if flagRemoteValue, _ := command.Flags().GetString(flagRemoteNameConstant); len(strings.TrimSpace(flagRemoteValue)) > 0 {
		remoteName = strings.TrimSpace(flagRemoteValue)
	}

	assumeYes := configuration.AssumeYes
	if command.Flags().Changed(flagAssumeYesNameConstant) {
		assumeYes, _ = command.Flags().GetBool(flagAssumeYesNameConstant)
	}

	return Options{
		RemoteName:       remoteName,
		WorkingDirectory: builder.WorkingDirectory,
		AssumeYes:        assumeYes,
	}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := builder.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

func (builder *CommandBuilder) resolveReporter() WorkflowReporter {
	if builder.Reporter != nil {
		return builder.Reporter
	}
	return ui.NewStatusReporter(os.Stdout)
}

func (builder *CommandBuilder) resolvePrompter() WorkflowPrompter {
	if builder.Prompter != nil {
		return builder.Prompter
	}
	return ui.NewInteractionPrompter(nil, nil)
}

func (builder *CommandBuilder) resolveRepository(logger *zap.Logger) (RepositoryService, error) {
	if builder.Repository != nil {
		return builder.Repository, nil
	}

	shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
	if executorError != nil {
		return nil, executorError
	}
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(shellExecutor)
	if managerError != nil {
		return nil, managerError
	}
	return repositoryManager, nil
}
