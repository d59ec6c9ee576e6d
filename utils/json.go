package utils

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/lanternmq/lanternmq/models"
)

// ConvertJSONFileToConfig opens a file.json and converts to ClientConfig.
func ConvertJSONFileToConfig(fileNamePath string) (*models.ClientConfig, error) {

	byteValue, err := os.ReadFile(fileNamePath)
	if err != nil {
		return nil, err
	}

	return ConvertJSONBytesToConfig(byteValue)
}

// ConvertJSONBytesToConfig converts raw JSON bytes to ClientConfig.
func ConvertJSONBytesToConfig(byteValue []byte) (*models.ClientConfig, error) {

	config := &models.ClientConfig{}
	var json = jsoniter.ConfigFastest
	err := json.Unmarshal(byteValue, config)

	return config, err
}
