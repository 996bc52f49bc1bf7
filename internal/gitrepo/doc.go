// Package gitrepo exposes repository-level git operations for the
// integration workflow.
//
// RepositoryManager translates workflow intents (probe the worktree, list
// branches, resolve revisions, merge, tag, push, delete) into git
// invocations executed through execshell, and Branch models one line of the
// branch listing.
package gitrepo
