// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner
// for default process execution, and defines the command and result types the
// integration workflow uses to run git in a testable manner.
package execshell
