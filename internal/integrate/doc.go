// Package integrate implements the branch-integration workflow: a strict
// top-to-bottom pipeline of validation gates, an interactive branch
// selection, and a handful of user-confirmed mutations (merge, tag, branch
// deletion, push) executed against a single git working copy.
package integrate
