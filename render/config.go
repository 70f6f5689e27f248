package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config controls the tag names and placeholder texts the renderer emits.
type Config struct {
	ParagraphTag    string `yaml:"paragraph_tag"`
	SubParagraphTag string `yaml:"subparagraph_tag"`
	RunTag          string `yaml:"run_tag"`
	ImageTag        string `yaml:"image_tag"`
	LinkTag         string `yaml:"link_tag"`

	// FailedImageText replaces pictures that could not be rendered.
	FailedImageText string `yaml:"failed_image_text"`
	// UnsupportedImageText replaces pictures with no data and no type.
	UnsupportedImageText string `yaml:"unsupported_image_text"`
}

// DefaultConfig returns the HTML-oriented defaults.
func DefaultConfig() Config {
	return Config{
		ParagraphTag:         "div",
		SubParagraphTag:      "div",
		RunTag:               "span",
		ImageTag:             "img",
		LinkTag:              "a",
		FailedImageText:      "[failed to render image]",
		UnsupportedImageText: "[image type not supported]",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every tag name is set.
func (c Config) Validate() error {
	tags := []struct {
		key, val string
	}{
		{"paragraph_tag", c.ParagraphTag},
		{"subparagraph_tag", c.SubParagraphTag},
		{"run_tag", c.RunTag},
		{"image_tag", c.ImageTag},
		{"link_tag", c.LinkTag},
	}
	for _, t := range tags {
		if t.val == "" {
			return fmt.Errorf("render config: %s must not be empty", t.key)
		}
	}
	return nil
}
