// Package utils houses the shared infrastructure the brim commands build on:
// a Viper-backed configuration loader, a zap logger factory, and small
// context and writer helpers.
package utils
