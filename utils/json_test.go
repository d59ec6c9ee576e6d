package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternmq/lanternmq/utils"
)

func TestConvertJSONFileToConfig(t *testing.T) {
	config, err := utils.ConvertJSONFileToConfig("testdata/config.json")
	require.NoError(t, err)
	require.NotNil(t, config.PoolConfig)

	assert.Equal(t, "lanternmq-utils-test", config.PoolConfig.ApplicationName)
	assert.Equal(t, "lantern://broker-0:4450", config.PoolConfig.URL)
	assert.Equal(t, []string{"broker-1:4450", "broker-2:4450"}, config.PoolConfig.Servers)
	assert.True(t, config.PoolConfig.NoRandomize)
	assert.Equal(t, 5, config.PoolConfig.MaxReconnects)
}

func TestConvertJSONFileToConfigWithMissingFile(t *testing.T) {
	config, err := utils.ConvertJSONFileToConfig("testdata/does-not-exist.json")
	assert.Nil(t, config)
	assert.Error(t, err)
}

func TestConvertJSONBytesToConfig(t *testing.T) {
	config, err := utils.ConvertJSONBytesToConfig([]byte(`{"PoolConfig":{"MaxReconnects":-1}}`))
	require.NoError(t, err)
	require.NotNil(t, config.PoolConfig)

	assert.Equal(t, -1, config.PoolConfig.MaxReconnects)
	assert.Empty(t, config.PoolConfig.Servers)
}

func TestConvertJSONBytesToConfigWithBadJSON(t *testing.T) {
	_, err := utils.ConvertJSONBytesToConfig([]byte(`{"PoolConfig":`))
	assert.Error(t, err)
}
