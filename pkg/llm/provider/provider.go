package provider

import (
	"fmt"

	"github.com/artem13815/pcbuild/pkg/config"
	"github.com/artem13815/pcbuild/pkg/llm"
	"github.com/artem13815/pcbuild/pkg/llm/aigateway"
	"github.com/artem13815/pcbuild/pkg/llm/openaisdk"
)

const (
	Gateway = "gateway"
	OpenAI  = "openai"
)

// New builds the configured chat model. It returns llm.ErrNotConfigured
// when no credential is set so the caller can decide how to degrade.
func New(cfg config.LLMConfig) (llm.ChatModel, error) {
	if cfg.APIKey == "" {
		return nil, llm.ErrNotConfigured
	}
	switch cfg.Provider {
	case "", Gateway:
		return aigateway.New(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout()), nil
	case OpenAI:
		return openaisdk.New(openaisdk.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout(),
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
