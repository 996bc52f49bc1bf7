package gitrepo

import (
	"regexp"
	"strings"
)

const (
	currentBranchFlagConstant        = "*"
	detachedHeadMarkerPrefixConstant = "("
)

// branchListingPattern splits one listing line into status flag, branch name, and commit hint.
var branchListingPattern = regexp.MustCompile(`^([*+ ])\s+(\S+)\s+(.*)$`)

// Branch describes one local branch parsed from the git branch listing.
type Branch struct {
	Name       string
	IsCurrent  bool
	CommitHint string
}

// ParseBranchListing converts git branch -v output into Branch descriptors.
//
// Lines that do not match the three-field listing pattern, including the
// detached HEAD placeholder, are skipped.
func ParseBranchListing(listingOutput string) []Branch {
	listingLines := strings.Split(listingOutput, "\n")
	parsedBranches := make([]Branch, 0, len(listingLines))

	for _, listingLine := range listingLines {
		if len(strings.TrimSpace(listingLine)) == 0 {
			continue
		}

		patternMatches := branchListingPattern.FindStringSubmatch(listingLine)
		if patternMatches == nil {
			continue
		}

		branchName := patternMatches[2]
		if strings.HasPrefix(branchName, detachedHeadMarkerPrefixConstant) {
			continue
		}

		parsedBranches = append(parsedBranches, Branch{
			Name:       branchName,
			IsCurrent:  patternMatches[1] == currentBranchFlagConstant,
			CommitHint: strings.TrimSpace(patternMatches[3]),
		})
	}

	return parsedBranches
}
