package integrate

import "errors"

const (
	notARepositoryMessageConstant       = "the current directory is not inside a git working tree"
	dirtyWorkingCopyMessageConstant     = "the working copy has uncommitted changes"
	fetchFailedMessageConstant          = "fetching from the remote failed"
	noBranchesMessageConstant           = "at least two local branches are required to integrate"
	currentBranchUnknownMessageConstant = "unable to determine the current branch"
	sourceEqualsTargetMessageConstant   = "source and target branches are identical"
	branchNotPushedMessageConstant      = "the selected branch has not been pushed to the remote"
	targetNotUpToDateMessageConstant    = "the target branch is not up to date with its remote counterpart"
	sourceNotUpToDateMessageConstant    = "the selected branch is not up to date with its remote counterpart"
	noCommitsToIntegrateMessageConstant = "the selected branch has no commits to integrate"
	historyNotLinearMessageConstant     = "the selected branch does not descend from the target branch tip"
	mergeFailedMessageConstant          = "merging the selected branch failed"
	tagCreationFailedMessageConstant    = "creating the integration tag failed"
	tagPushFailedMessageConstant        = "pushing the integration tag failed"
	localDeleteFailedMessageConstant    = "deleting the local branch failed"
	remoteDeleteFailedMessageConstant   = "deleting the remote branch failed"
	targetPushFailedMessageConstant     = "pushing the target branch failed"
	integrationFailedMessageConstant    = "integration failed"

	dependenciesIncompleteMessageConstant = "integration service dependencies incomplete"
)

// Precondition failures.
var (
	ErrNotARepository        = errors.New(notARepositoryMessageConstant)
	ErrDirtyWorkingCopy      = errors.New(dirtyWorkingCopyMessageConstant)
	ErrNoBranchesToIntegrate = errors.New(noBranchesMessageConstant)
	ErrCurrentBranchUnknown  = errors.New(currentBranchUnknownMessageConstant)
)

// Synchronization failures.
var (
	ErrBranchNotPushed      = errors.New(branchNotPushedMessageConstant)
	ErrTargetNotUpToDate    = errors.New(targetNotUpToDateMessageConstant)
	ErrSourceNotUpToDate    = errors.New(sourceNotUpToDateMessageConstant)
	ErrNoCommitsToIntegrate = errors.New(noCommitsToIntegrateMessageConstant)
	ErrHistoryNotLinear     = errors.New(historyNotLinearMessageConstant)
)

// Consistency failures.
var ErrSourceEqualsTarget = errors.New(sourceEqualsTargetMessageConstant)

// External-tool failures.
var (
	ErrFetchFailed        = errors.New(fetchFailedMessageConstant)
	ErrMergeFailed        = errors.New(mergeFailedMessageConstant)
	ErrTagCreationFailed  = errors.New(tagCreationFailedMessageConstant)
	ErrTagPushFailed      = errors.New(tagPushFailedMessageConstant)
	ErrLocalDeleteFailed  = errors.New(localDeleteFailedMessageConstant)
	ErrRemoteDeleteFailed = errors.New(remoteDeleteFailedMessageConstant)
	ErrTargetPushFailed   = errors.New(targetPushFailedMessageConstant)
)

// ErrIntegrationFailed is the terse error surfaced to the process entrypoint
// after the detailed failure has already been reported to the user.
var ErrIntegrationFailed = errors.New(integrationFailedMessageConstant)

// ErrDependenciesIncomplete indicates the service was built without a required collaborator.
var ErrDependenciesIncomplete = errors.New(dependenciesIncompleteMessageConstant)
