package gitrepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrov/brim/internal/gitrepo"
)

func TestParseBranchListing(testInstance *testing.T) {
	testCases := []struct {
		name             string
		listingOutput    string
		expectedBranches []gitrepo.Branch
	}{
		{
			name:          "current_and_feature_branches",
			listingOutput: "* main       abc1234 Release the thing\n  feature-x  def5678 Add the thing\n",
			expectedBranches: []gitrepo.Branch{
				{Name: "main", IsCurrent: true, CommitHint: "abc1234 Release the thing"},
				{Name: "feature-x", IsCurrent: false, CommitHint: "def5678 Add the thing"},
			},
		},
		{
			name:          "worktree_flag_is_not_current",
			listingOutput: "+ linked     0a1b2c3 Checked out elsewhere\n* main       abc1234 Tip\n",
			expectedBranches: []gitrepo.Branch{
				{Name: "linked", IsCurrent: false, CommitHint: "0a1b2c3 Checked out elsewhere"},
				{Name: "main", IsCurrent: true, CommitHint: "abc1234 Tip"},
			},
		},
		{
			name:          "detached_head_line_skipped",
			listingOutput: "* (HEAD detached at abc1234) abc1234 Somewhere\n  main       def5678 Tip\n",
			expectedBranches: []gitrepo.Branch{
				{Name: "main", IsCurrent: false, CommitHint: "def5678 Tip"},
			},
		},
		{
			name:             "empty_output",
			listingOutput:    "\n",
			expectedBranches: []gitrepo.Branch{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsedBranches := gitrepo.ParseBranchListing(testCase.listingOutput)
			require.Equal(testInstance, testCase.expectedBranches, parsedBranches)
		})
	}
}
