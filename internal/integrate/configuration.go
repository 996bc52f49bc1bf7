package integrate

import "strings"

const (
	defaultRemoteNameConstant = "origin"

	remoteConfigurationKeySuffixConstant    = ".remote"
	assumeYesConfigurationKeySuffixConstant = ".assume_yes"
)

// CommandConfiguration stores persisted settings for the integrate command.
type CommandConfiguration struct {
	RemoteName string `mapstructure:"remote"`
	AssumeYes  bool   `mapstructure:"assume_yes"`
}

// DefaultConfigurationValues lists viper defaults under the provided key prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + remoteConfigurationKeySuffixConstant:    defaultRemoteNameConstant,
		configurationKeyPrefix + assumeYesConfigurationKeySuffixConstant: false,
	}
}

// EffectiveRemoteName resolves the configured remote, falling back to the default.
func (configuration CommandConfiguration) EffectiveRemoteName() string {
	trimmedRemoteName := strings.TrimSpace(configuration.RemoteName)
	if len(trimmedRemoteName) == 0 {
		return defaultRemoteNameConstant
	}
	return trimmedRemoteName
}
