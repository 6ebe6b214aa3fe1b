// Package openai transcribes catalog sheet images with an OpenAI
// vision model and parses the structured reply.
package openai

import "time"

type Config struct {
	APIKey      string
	BaseURL     string // e.g. https://api.openai.com/v1
	Model       string // e.g. gpt-4o
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.BaseURL == "" {
		out.BaseURL = "https://api.openai.com/v1"
	}
	if out.Model == "" {
		out.Model = "gpt-4o"
	}
	if out.MaxTokens == 0 {
		out.MaxTokens = 4096
	}
	if out.Timeout == 0 {
		out.Timeout = 90 * time.Second
	}
	return out
}
