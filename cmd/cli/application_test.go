package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kestrov/brim/cmd/cli"
)

const (
	testIntegrateCommandNameConstant = "integrate"
	testConfigurationTypeConstant    = "yaml"
)

type embeddedConfigurationFixture struct {
	Common struct {
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"common"`
	Integrate struct {
		Remote    string `yaml:"remote"`
		AssumeYes bool   `yaml:"assume_yes"`
	} `yaml:"integrate"`
}

func TestNewApplicationRegistersIntegrateCommand(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()
	require.NotNil(testInstance, rootCommand)

	commandNames := make([]string, 0, len(rootCommand.Commands()))
	for _, registeredCommand := range rootCommand.Commands() {
		commandNames = append(commandNames, registeredCommand.Name())
	}
	require.Contains(testInstance, commandNames, testIntegrateCommandNameConstant)
}

func TestNewApplicationExposesPersistentFlags(testInstance *testing.T) {
	application := cli.NewApplication()
	persistentFlags := application.RootCommand().PersistentFlags()

	require.NotNil(testInstance, persistentFlags.Lookup("config"))
	require.NotNil(testInstance, persistentFlags.Lookup("log-level"))
	require.NotNil(testInstance, persistentFlags.Lookup("log-format"))
}

func TestEmbeddedDefaultConfiguration(testInstance *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, testConfigurationTypeConstant, configurationType)
	require.NotEmpty(testInstance, configurationData)

	parsedConfiguration := embeddedConfigurationFixture{}
	require.NoError(testInstance, yaml.Unmarshal(configurationData, &parsedConfiguration))

	require.Equal(testInstance, "info", parsedConfiguration.Common.LogLevel)
	require.Equal(testInstance, "console", parsedConfiguration.Common.LogFormat)
	require.Equal(testInstance, "origin", parsedConfiguration.Integrate.Remote)
	require.False(testInstance, parsedConfiguration.Integrate.AssumeYes)
}
