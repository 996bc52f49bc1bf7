package integrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kestrov/brim/internal/execshell"
	"github.com/kestrov/brim/internal/gitrepo"
	"github.com/kestrov/brim/internal/ui"
)

const (
	integrationTagPrefixConstant          = "integrated/"
	remoteReferenceSeparatorConstant      = "/"
	wrappedFailureTemplateConstant        = "%w: %v"
	selectBranchTitleConstant             = "Select the branch to integrate"
	mergeConfirmationTemplateConstant     = "Merge %s into %s?"
	tagConfirmationTemplateConstant       = "Tag the integration point as %s?"
	deletionConfirmationTemplateConstant  = "Delete branch %s locally and on %s?"
	pushConfirmationTemplateConstant      = "Push %s to %s?"
	logFieldSourceBranchConstant          = "source_branch"
	logFieldTargetBranchConstant          = "target_branch"
	logFieldRemoteNameConstant            = "remote_name"
	logFieldIntegrationTagConstant        = "integration_tag"
	sourceSelectedLogMessageConstant      = "integration source selected"
	integrationCompleteLogMessageConstant = "integration complete"
)

// Outcome classifies how a workflow run ended.
type Outcome int

// Workflow outcomes.
const (
	// OutcomeCompleted means the merge happened and all confirmed follow-ups succeeded.
	OutcomeCompleted Outcome = iota
	// OutcomeDeclined means the user answered no at the merge confirmation checkpoint.
	OutcomeDeclined
	// OutcomeAborted means the user dismissed a prompt or interrupted the run.
	OutcomeAborted
)

// RepositoryService enumerates the git operations the workflow relies on.
type RepositoryService interface {
	IsInsideWorkTree(executionContext context.Context, repositoryPath string) (bool, error)
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	FetchRemoteWithTags(executionContext context.Context, repositoryPath string, remoteName string) error
	ListBranchesByCommitDate(executionContext context.Context, repositoryPath string) ([]gitrepo.Branch, error)
	RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error)
	ResolveCommit(executionContext context.Context, repositoryPath string, referenceName string) (string, error)
	MergeBase(executionContext context.Context, repositoryPath string, firstReference string, secondReference string) (string, error)
	MergeNoFastForward(executionContext context.Context, repositoryPath string, branchName string) (execshell.ExecutionResult, error)
	CreateAnnotatedTag(executionContext context.Context, repositoryPath string, tagName string, targetReference string) (execshell.ExecutionResult, error)
	PushReference(executionContext context.Context, repositoryPath string, remoteName string, referenceName string) (execshell.ExecutionResult, error)
	DeleteLocalBranch(executionContext context.Context, repositoryPath string, branchName string) (execshell.ExecutionResult, error)
	DeleteRemoteBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (execshell.ExecutionResult, error)
}

// WorkflowPrompter collects interactive decisions from the user.
type WorkflowPrompter interface {
	SelectBranch(executionContext context.Context, title string, options []ui.BranchOption) (int, error)
	Confirm(executionContext context.Context, question string, defaultYes bool) (bool, error)
}

// WorkflowReporter emits user-facing workflow messages.
type WorkflowReporter interface {
	Plainf(format string, formatArguments ...any)
	Successf(format string, formatArguments ...any)
	Warningf(format string, formatArguments ...any)
	Errorf(format string, formatArguments ...any)
}

// Dependencies enumerates the collaborators required by the Service.
type Dependencies struct {
	Logger      *zap.Logger
	Repository  RepositoryService
	Prompter    WorkflowPrompter
	Reporter    WorkflowReporter
	ErrorStream io.Writer
}

// Options configures a single workflow run.
type Options struct {
	RemoteName       string
	WorkingDirectory string
	AssumeYes        bool
}

// Result captures the observable outcomes of a workflow run.
type Result struct {
	Outcome        Outcome
	SourceBranch   string
	TargetBranch   string
	IntegrationTag string
	TagCreated     bool
	BranchDeleted  bool
	TargetPushed   bool
}

// workflowContext accumulates the derived names of one run; fields are never
// mutated once set.
type workflowContext struct {
	remoteName     string
	sourceBranch   string
	targetBranch   string
	remoteSource   string
	remoteTarget   string
	integrationTag string
}

// Service orchestrates the integration workflow pipeline.
type Service struct {
	logger      *zap.Logger
	repository  RepositoryService
	prompter    WorkflowPrompter
	reporter    WorkflowReporter
	errorStream io.Writer
}

// NewService validates dependencies and constructs a Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Repository == nil || dependencies.Prompter == nil || dependencies.Reporter == nil {
		return nil, ErrDependenciesIncomplete
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	errorStream := dependencies.ErrorStream
	if errorStream == nil {
		errorStream = io.Discard
	}

	return &Service{
		logger:      logger,
		repository:  dependencies.Repository,
		prompter:    dependencies.Prompter,
		reporter:    dependencies.Reporter,
		errorStream: errorStream,
	}, nil
}

// Run executes the workflow pipeline from repository validation through the
// optional follow-up mutations.
//
// Validation and tool failures are returned as errors wrapping the package
// sentinels; a declined confirmation or an aborted prompt is a valid terminal
// outcome, not an error.
func (service *Service) Run(executionContext context.Context, options Options) (Result, error) {
	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = defaultRemoteNameConstant
	}

	if validationError := service.validateRepositoryState(executionContext, options.WorkingDirectory, remoteName); validationError != nil {
		return service.resultForError(executionContext, validationError)
	}

	localBranches, listingError := service.repository.ListBranchesByCommitDate(executionContext, options.WorkingDirectory)
	if listingError != nil {
		return service.resultForError(executionContext, listingError)
	}
	if len(localBranches) < 2 {
		return Result{}, ErrNoBranchesToIntegrate
	}

	targetBranch, targetError := currentBranchOf(localBranches)
	if targetError != nil {
		return Result{}, targetError
	}

	sourceBranch, selectionError := service.selectSourceBranch(executionContext, localBranches)
	if selectionError != nil {
		return service.resultForError(executionContext, selectionError)
	}

	mergeConfirmed, confirmationError := service.confirm(executionContext, options.AssumeYes, fmt.Sprintf(mergeConfirmationTemplateConstant, sourceBranch, targetBranch), false)
	if confirmationError != nil {
		return service.resultForError(executionContext, confirmationError)
	}
	if !mergeConfirmed {
		return Result{Outcome: OutcomeDeclined, SourceBranch: sourceBranch, TargetBranch: targetBranch}, nil
	}

	if sourceBranch == targetBranch {
		return Result{}, ErrSourceEqualsTarget
	}

	run := workflowContext{
		remoteName:     remoteName,
		sourceBranch:   sourceBranch,
		targetBranch:   targetBranch,
		remoteSource:   remoteName + remoteReferenceSeparatorConstant + sourceBranch,
		remoteTarget:   remoteName + remoteReferenceSeparatorConstant + targetBranch,
		integrationTag: integrationTagPrefixConstant + sourceBranch,
	}
	service.logger.Debug(
		sourceSelectedLogMessageConstant,
		zap.String(logFieldSourceBranchConstant, run.sourceBranch),
		zap.String(logFieldTargetBranchConstant, run.targetBranch),
		zap.String(logFieldRemoteNameConstant, run.remoteName),
	)

	if synchronizationError := service.validateSynchronization(executionContext, options.WorkingDirectory, run); synchronizationError != nil {
		return service.resultForError(executionContext, synchronizationError)
	}

	mergeResult, mergeError := service.repository.MergeNoFastForward(executionContext, options.WorkingDirectory, run.sourceBranch)
	if mergeError != nil {
		return service.resultForError(executionContext, fmt.Errorf(wrappedFailureTemplateConstant, ErrMergeFailed, mergeError))
	}
	service.echoToolOutput(mergeResult)

	runResult := Result{
		Outcome:        OutcomeCompleted,
		SourceBranch:   run.sourceBranch,
		TargetBranch:   run.targetBranch,
		IntegrationTag: run.integrationTag,
	}

	if followUpError := service.runFollowUps(executionContext, options, run, &runResult); followUpError != nil {
		return service.resultForError(executionContext, followUpError)
	}
	if runResult.Outcome == OutcomeAborted {
		return runResult, nil
	}

	service.logger.Debug(
		integrationCompleteLogMessageConstant,
		zap.String(logFieldSourceBranchConstant, run.sourceBranch),
		zap.String(logFieldIntegrationTagConstant, run.integrationTag),
	)
	return runResult, nil
}

// validateRepositoryState covers the repository, cleanliness, and remote sync gates.
func (service *Service) validateRepositoryState(executionContext context.Context, workingDirectory string, remoteName string) error {
	insideWorkTree, probeError := service.repository.IsInsideWorkTree(executionContext, workingDirectory)
	if probeError != nil {
		return probeError
	}
	if !insideWorkTree {
		return ErrNotARepository
	}

	cleanWorktree, statusError := service.repository.CheckCleanWorktree(executionContext, workingDirectory)
	if statusError != nil {
		return statusError
	}
	if !cleanWorktree {
		return ErrDirtyWorkingCopy
	}

	if fetchError := service.repository.FetchRemoteWithTags(executionContext, workingDirectory, remoteName); fetchError != nil {
		return fmt.Errorf(wrappedFailureTemplateConstant, ErrFetchFailed, fetchError)
	}

	return nil
}

// validateSynchronization covers the remote presence, up-to-date, and divergence gates.
//
// The target branch is compared against its remote counterpart before the
// source references are resolved so that a stale target fails fast.
func (service *Service) validateSynchronization(executionContext context.Context, workingDirectory string, run workflowContext) error {
	remoteBranchPresent, lookupError := service.repository.RemoteBranchExists(executionContext, workingDirectory, run.remoteName, run.sourceBranch)
	if lookupError != nil {
		return lookupError
	}
	if !remoteBranchPresent {
		return ErrBranchNotPushed
	}

	localTargetReference, localTargetError := service.repository.ResolveCommit(executionContext, workingDirectory, run.targetBranch)
	if localTargetError != nil {
		return localTargetError
	}
	remoteTargetReference, remoteTargetError := service.repository.ResolveCommit(executionContext, workingDirectory, run.remoteTarget)
	if remoteTargetError != nil {
		return remoteTargetError
	}
	if localTargetReference != remoteTargetReference {
		return ErrTargetNotUpToDate
	}

	localSourceReference, localSourceError := service.repository.ResolveCommit(executionContext, workingDirectory, run.sourceBranch)
	if localSourceError != nil {
		return localSourceError
	}
	remoteSourceReference, remoteSourceError := service.repository.ResolveCommit(executionContext, workingDirectory, run.remoteSource)
	if remoteSourceError != nil {
		return remoteSourceError
	}
	if localSourceReference != remoteSourceReference {
		return ErrSourceNotUpToDate
	}

	if localSourceReference == localTargetReference {
		return ErrNoCommitsToIntegrate
	}

	mergeBaseReference, mergeBaseError := service.repository.MergeBase(executionContext, workingDirectory, run.targetBranch, run.sourceBranch)
	if mergeBaseError != nil {
		return mergeBaseError
	}
	if mergeBaseReference != localTargetReference {
		return ErrHistoryNotLinear
	}

	return nil
}

// runFollowUps executes the optional tag, deletion, and push checkpoints.
//
// An aborted confirmation marks the result aborted and stops further
// checkpoints; the merge that already happened is never rolled back.
func (service *Service) runFollowUps(executionContext context.Context, options Options, run workflowContext, runResult *Result) error {
	tagConfirmed, tagPromptError := service.confirm(executionContext, options.AssumeYes, fmt.Sprintf(tagConfirmationTemplateConstant, run.integrationTag), true)
	if tagPromptError != nil {
		return service.markAborted(tagPromptError, runResult)
	}
	if tagConfirmed {
		tagResult, tagError := service.repository.CreateAnnotatedTag(executionContext, options.WorkingDirectory, run.integrationTag, run.sourceBranch)
		if tagError != nil {
			return fmt.Errorf(wrappedFailureTemplateConstant, ErrTagCreationFailed, tagError)
		}
		service.echoToolOutput(tagResult)

		tagPushResult, tagPushError := service.repository.PushReference(executionContext, options.WorkingDirectory, run.remoteName, run.integrationTag)
		if tagPushError != nil {
			return fmt.Errorf(wrappedFailureTemplateConstant, ErrTagPushFailed, tagPushError)
		}
		service.echoToolOutput(tagPushResult)
		runResult.TagCreated = true
	}

	deletionConfirmed, deletionPromptError := service.confirm(executionContext, options.AssumeYes, fmt.Sprintf(deletionConfirmationTemplateConstant, run.sourceBranch, run.remoteName), true)
	if deletionPromptError != nil {
		return service.markAborted(deletionPromptError, runResult)
	}
	if deletionConfirmed {
		localDeletionResult, localDeletionError := service.repository.DeleteLocalBranch(executionContext, options.WorkingDirectory, run.sourceBranch)
		if localDeletionError != nil {
			return fmt.Errorf(wrappedFailureTemplateConstant, ErrLocalDeleteFailed, localDeletionError)
		}
		service.echoToolOutput(localDeletionResult)

		remoteDeletionResult, remoteDeletionError := service.repository.DeleteRemoteBranch(executionContext, options.WorkingDirectory, run.remoteName, run.sourceBranch)
		if remoteDeletionError != nil {
			return fmt.Errorf(wrappedFailureTemplateConstant, ErrRemoteDeleteFailed, remoteDeletionError)
		}
		service.echoToolOutput(remoteDeletionResult)
		runResult.BranchDeleted = true
	}

	pushConfirmed, pushPromptError := service.confirm(executionContext, options.AssumeYes, fmt.Sprintf(pushConfirmationTemplateConstant, run.targetBranch, run.remoteName), true)
	if pushPromptError != nil {
		return service.markAborted(pushPromptError, runResult)
	}
	if pushConfirmed {
		pushResult, pushError := service.repository.PushReference(executionContext, options.WorkingDirectory, run.remoteName, run.targetBranch)
		if pushError != nil {
			return fmt.Errorf(wrappedFailureTemplateConstant, ErrTargetPushFailed, pushError)
		}
		service.echoToolOutput(pushResult)
		runResult.TargetPushed = true
	}

	return nil
}

func (service *Service) selectSourceBranch(executionContext context.Context, localBranches []gitrepo.Branch) (string, error) {
	selectionOptions := make([]ui.BranchOption, 0, len(localBranches))
	for _, localBranch := range localBranches {
		selectionOptions = append(selectionOptions, ui.BranchOption{
			Label:    localBranch.Name,
			Hint:     localBranch.CommitHint,
			Disabled: localBranch.IsCurrent,
		})
	}

	selectedIndex, selectionError := service.prompter.SelectBranch(executionContext, selectBranchTitleConstant, selectionOptions)
	if selectionError != nil {
		return "", selectionError
	}
	return localBranches[selectedIndex].Name, nil
}

func (service *Service) confirm(executionContext context.Context, assumeYes bool, question string, defaultYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	return service.prompter.Confirm(executionContext, question, defaultYes)
}

// echoToolOutput relays the tool's captured streams verbatim.
func (service *Service) echoToolOutput(executionResult execshell.ExecutionResult) {
	if len(executionResult.StandardOutput) > 0 {
		service.reporter.Plainf("%s", executionResult.StandardOutput)
	}
	if len(executionResult.StandardError) > 0 {
		fmt.Fprint(service.errorStream, executionResult.StandardError)
	}
}

// resultForError converts prompt aborts and cancellations into the aborted
// outcome and passes every other failure through unchanged.
func (service *Service) resultForError(executionContext context.Context, failure error) (Result, error) {
	if errors.Is(failure, ui.ErrPromptAborted) || errors.Is(failure, context.Canceled) || executionContext.Err() != nil {
		return Result{Outcome: OutcomeAborted}, nil
	}
	return Result{}, failure
}

func (service *Service) markAborted(failure error, runResult *Result) error {
	if errors.Is(failure, ui.ErrPromptAborted) {
		runResult.Outcome = OutcomeAborted
		return nil
	}
	return failure
}

func currentBranchOf(localBranches []gitrepo.Branch) (string, error) {
	currentBranchName := ""
	currentBranchCount := 0
	for _, localBranch := range localBranches {
		if localBranch.IsCurrent {
			currentBranchName = localBranch.Name
			currentBranchCount++
		}
	}
	if currentBranchCount != 1 {
		return "", ErrCurrentBranchUnknown
	}
	return currentBranchName, nil
}
