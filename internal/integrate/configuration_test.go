package integrate_test

import (
	"strings"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"

	"github.com/kestrov/brim/internal/integrate"
)

const testConfigurationKeyPrefixConstant = "integrate"

func TestDefaultConfigurationValuesDecode(testInstance *testing.T) {
	defaultValues := integrate.DefaultConfigurationValues(testConfigurationKeyPrefixConstant)

	flattenedValues := map[string]any{}
	for configurationKey, configurationValue := range defaultValues {
		strippedKey := strings.TrimPrefix(configurationKey, testConfigurationKeyPrefixConstant+".")
		require.NotEqual(testInstance, configurationKey, strippedKey)
		flattenedValues[strippedKey] = configurationValue
	}

	decodedConfiguration := integrate.CommandConfiguration{}
	require.NoError(testInstance, mapstructure.Decode(flattenedValues, &decodedConfiguration))
	require.Equal(testInstance, "origin", decodedConfiguration.RemoteName)
	require.False(testInstance, decodedConfiguration.AssumeYes)
}

func TestEffectiveRemoteName(testInstance *testing.T) {
	testCases := []struct {
		name               string
		configuredRemote   string
		expectedRemoteName string
	}{
		{name: "empty_falls_back_to_default", configuredRemote: "", expectedRemoteName: "origin"},
		{name: "whitespace_falls_back_to_default", configuredRemote: "   ", expectedRemoteName: "origin"},
		{name: "configured_remote_wins", configuredRemote: "upstream", expectedRemoteName: "upstream"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			configuration := integrate.CommandConfiguration{RemoteName: testCase.configuredRemote}
			require.Equal(testInstance, testCase.expectedRemoteName, configuration.EffectiveRemoteName())
		})
	}
}
