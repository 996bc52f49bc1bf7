package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/kestrov/brim/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant = "git executor not configured"

	gitRevParseSubcommandConstant  = "rev-parse"
	gitWorkTreeProbeFlagConstant   = "--is-inside-work-tree"
	gitVerifyFlagConstant          = "--verify"
	gitStatusSubcommandConstant    = "status"
	gitStatusPorcelainFlagConstant = "--porcelain"
	gitFetchSubcommandConstant     = "fetch"
	gitFetchTagsFlagConstant       = "--tags"
	gitBranchSubcommandConstant    = "branch"
	gitBranchVerboseFlagConstant   = "-v"
	gitBranchSortFlagConstant      = "--sort=-committerdate"
	gitBranchForceDeleteFlag       = "-D"
	gitLSRemoteSubcommandConstant  = "ls-remote"
	gitLSRemoteHeadsFlagConstant   = "--heads"
	gitMergeBaseSubcommandConstant = "merge-base"
	gitMergeSubcommandConstant     = "merge"
	gitMergeNoFastForwardFlag      = "--no-ff"
	gitMergeNoEditFlagConstant     = "--no-edit"
	gitTagSubcommandConstant       = "tag"
	gitTagAnnotateFlagConstant     = "-a"
	gitTagMessageFlagConstant      = "-m"
	gitPushSubcommandConstant      = "push"
	gitDeletionRefspecPrefix       = ":refs/heads/"

	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
)

// ErrGitExecutorNotConfigured indicates the manager was built without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor exposes the subset of shell execution used by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs git operations against a single working copy.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager validates dependencies and constructs a RepositoryManager.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// IsInsideWorkTree reports whether the directory belongs to a git working tree.
func (manager *RepositoryManager) IsInsideWorkTree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitWorkTreeProbeFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		commandFailure := execshell.CommandFailedError{}
		if errors.As(executionError, &commandFailure) {
			return false, nil
		}
		return false, executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput) == "true", nil
}

// CheckCleanWorktree reports whether the working copy has no pending changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// FetchRemoteWithTags updates all branches and tags from the named remote.
func (manager *RepositoryManager) FetchRemoteWithTags(executionContext context.Context, repositoryPath string, remoteName string) error {
	_, executionError := manager.executeNetworkGit(executionContext, repositoryPath, []string{gitFetchSubcommandConstant, remoteName, gitFetchTagsFlagConstant})
	return executionError
}

// ListBranchesByCommitDate returns local branches ordered by most recent commit first.
func (manager *RepositoryManager) ListBranchesByCommitDate(executionContext context.Context, repositoryPath string) ([]Branch, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchVerboseFlagConstant, gitBranchSortFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}
	return ParseBranchListing(executionResult.StandardOutput), nil
}

// RemoteBranchExists reports whether the remote advertises a head for the branch.
func (manager *RepositoryManager) RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error) {
	executionResult, executionError := manager.executeNetworkGit(executionContext, repositoryPath, []string{gitLSRemoteSubcommandConstant, gitLSRemoteHeadsFlagConstant, remoteName, branchName})
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) > 0, nil
}

// ResolveCommit resolves a reference name to a commit identifier.
func (manager *RepositoryManager) ResolveCommit(executionContext context.Context, repositoryPath string, referenceName string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitVerifyFlagConstant, referenceName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// MergeBase computes the most recent common ancestor of two references.
func (manager *RepositoryManager) MergeBase(executionContext context.Context, repositoryPath string, firstReference string, secondReference string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitMergeBaseSubcommandConstant, firstReference, secondReference},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// MergeNoFastForward merges the branch into the current branch, always creating a merge commit.
func (manager *RepositoryManager) MergeNoFastForward(executionContext context.Context, repositoryPath string, branchName string) (execshell.ExecutionResult, error) {
	return manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitMergeSubcommandConstant, gitMergeNoFastForwardFlag, gitMergeNoEditFlagConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
}

// CreateAnnotatedTag creates an annotated tag with an empty message pointing at the target reference.
func (manager *RepositoryManager) CreateAnnotatedTag(executionContext context.Context, repositoryPath string, tagName string, targetReference string) (execshell.ExecutionResult, error) {
	return manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitTagSubcommandConstant, gitTagAnnotateFlagConstant, gitTagMessageFlagConstant, "", tagName, targetReference},
		WorkingDirectory: repositoryPath,
	})
}

// PushReference pushes a branch or tag reference to the named remote.
func (manager *RepositoryManager) PushReference(executionContext context.Context, repositoryPath string, remoteName string, referenceName string) (execshell.ExecutionResult, error) {
	return manager.executeNetworkGit(executionContext, repositoryPath, []string{gitPushSubcommandConstant, remoteName, referenceName})
}

// DeleteLocalBranch force-deletes the local branch.
func (manager *RepositoryManager) DeleteLocalBranch(executionContext context.Context, repositoryPath string, branchName string) (execshell.ExecutionResult, error) {
	return manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchForceDeleteFlag, branchName},
		WorkingDirectory: repositoryPath,
	})
}

// DeleteRemoteBranch removes the branch head from the named remote by pushing an empty source.
func (manager *RepositoryManager) DeleteRemoteBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (execshell.ExecutionResult, error) {
	return manager.executeNetworkGit(executionContext, repositoryPath, []string{gitPushSubcommandConstant, remoteName, gitDeletionRefspecPrefix + branchName})
}

func (manager *RepositoryManager) executeNetworkGit(executionContext context.Context, repositoryPath string, arguments []string) (execshell.ExecutionResult, error) {
	return manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
		EnvironmentVariables: map[string]string{
			gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant,
		},
	})
}
