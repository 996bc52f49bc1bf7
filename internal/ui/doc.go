// Package ui implements the terminal-facing surfaces of the integration
// workflow: the interactive branch selector and confirmation prompts built on
// bubbletea, colored status reporting, and the console logger that mirrors
// shell command lifecycle events.
package ui
