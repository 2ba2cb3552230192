package linelog

import "github.com/hyp3rd/linelog/internal/constants"

// ConfigBuilder provides a fluent API for constructing logger configurations.
// It allows for more readable and chainable configuration setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder with sensible defaults.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			Name:   constants.DefaultName,
			Output: constants.DefaultOutput,
			Color:  ColorModeAuto,
		},
	}
}

// WithName sets the logger display name.
// Example: builder.WithName("File Output").
func (b *ConfigBuilder) WithName(name string) *ConfigBuilder {
	if name != "" {
		b.config.Name = name
	}

	return b
}

// WithOutput sets the output selector: "stdout", "stderr", or a file path.
func (b *ConfigBuilder) WithOutput(output string) *ConfigBuilder {
	if output != "" {
		b.config.Output = output
	}

	return b
}

// WithColorMode sets the level-tag color policy.
func (b *ConfigBuilder) WithColorMode(mode ColorMode) *ConfigBuilder {
	b.config.Color = mode

	return b
}

// Build returns the assembled configuration.
func (b *ConfigBuilder) Build() Config {
	return b.config
}
