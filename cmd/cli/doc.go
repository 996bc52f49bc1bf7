// Package cli assembles the brim command-line application: the Cobra root
// command, the Viper-backed configuration loader, structured logging, and
// signal-aware execution of the integrate workflow.
package cli
