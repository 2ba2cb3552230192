package linelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	config := NewConfigBuilder().Build()

	assert.Equal(t, DefaultConfig(), config)
}

func TestConfigBuilder_Chaining(t *testing.T) {
	config := NewConfigBuilder().
		WithName("File Output").
		WithOutput("stderr").
		WithColorMode(ColorModeNever).
		Build()

	assert.Equal(t, "File Output", config.Name)
	assert.Equal(t, "stderr", config.Output)
	assert.Equal(t, ColorModeNever, config.Color)
}

func TestConfigBuilder_EmptyValuesKeepDefaults(t *testing.T) {
	config := NewConfigBuilder().
		WithName("").
		WithOutput("").
		Build()

	assert.Equal(t, "main", config.Name)
	assert.Equal(t, "stdout", config.Output)
}
