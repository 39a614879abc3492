// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/launchplan-ai/launchplan/llm"
)

const (
	DefaultProvider      = "ollama"
	DefaultModel         = "llama3.2"
	DefaultOllamaBaseURL = "http://host.docker.internal:11434"
	DefaultListenAddr    = ":8000"

	EvalModeFast = "fast"
	EvalModeFull = "full"
)

type LLMConfig struct {
	Provider           string `json:"provider"`
	Model              string `json:"model"`
	OllamaBaseURL      string `json:"ollamaBaseURL"`
	OllamaModel        string `json:"ollamaModel"`
	GroqAPIKey         string `json:"groqAPIKey"`
	OpenAIAPIKey       string `json:"openAIAPIKey"`
	OpenAIBaseURL      string `json:"openAIBaseURL"`
	AnthropicAPIKey    string `json:"anthropicAPIKey"`
	AWSRegion          string `json:"awsRegion"`
	AWSAccessKeyID     string `json:"awsAccessKeyID"`
	AWSSecretAccessKey string `json:"awsSecretAccessKey"`
	EvalMode           string `json:"evalMode"`
}

type HTTPConfig struct {
	ListenAddr string `json:"listenAddr"`
	APIKey     string `json:"apiKey"`
}

type StoreConfig struct {
	DatabaseURL string `json:"databaseURL"`
}

type Config struct {
	LLM   LLMConfig   `json:"llm"`
	HTTP  HTTPConfig  `json:"http"`
	Store StoreConfig `json:"store"`
}

// FromEnv builds the configuration from environment variables, applying
// defaults for anything unset.
func FromEnv() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:           strings.ToLower(getEnv("LLM_PROVIDER", DefaultProvider)),
			Model:              getEnv("LLM_MODEL", DefaultModel),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", DefaultOllamaBaseURL),
			OllamaModel:        getEnv("OLLAMA_MODEL", DefaultModel),
			GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
			OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
			AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			AWSRegion:          os.Getenv("AWS_REGION"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			EvalMode:           strings.ToLower(getEnv("EVAL_MODE", EvalModeFast)),
		},
		HTTP: HTTPConfig{
			ListenAddr: getEnv("LISTEN_ADDR", DefaultListenAddr),
			APIKey:     os.Getenv("API_KEY"),
		},
		Store: StoreConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// ServiceConfigs resolves the provider name into the primary service
// configuration plus the Ollama fallback. The fallback always points at the
// local Ollama endpoint with its dedicated model, while an Ollama primary
// uses the general model setting.
func (c LLMConfig) ServiceConfigs() (llm.ServiceConfig, llm.ServiceConfig, error) {
	fallback := llm.ServiceConfig{
		Name:         "ollama",
		Type:         llm.ServiceTypeOllama,
		APIURL:       c.OllamaBaseURL,
		DefaultModel: c.OllamaModel,
	}

	primary := llm.ServiceConfig{
		Name:         c.Provider,
		DefaultModel: c.Model,
	}

	switch c.Provider {
	case "", "ollama":
		primary.Name = "ollama"
		primary.Type = llm.ServiceTypeOllama
		primary.APIURL = c.OllamaBaseURL
	case "groq":
		primary.Type = llm.ServiceTypeGroq
		primary.APIKey = c.GroqAPIKey
	case "openai":
		primary.Type = llm.ServiceTypeOpenAI
		primary.APIKey = c.OpenAIAPIKey
		if c.OpenAIBaseURL != "" {
			primary.Type = llm.ServiceTypeOpenAICompatible
			primary.APIURL = c.OpenAIBaseURL
		}
	case "openaicompatible":
		primary.Type = llm.ServiceTypeOpenAICompatible
		primary.APIKey = c.OpenAIAPIKey
		primary.APIURL = c.OpenAIBaseURL
	case "azure":
		primary.Type = llm.ServiceTypeAzure
		primary.APIKey = c.OpenAIAPIKey
		primary.APIURL = c.OpenAIBaseURL
	case "anthropic":
		primary.Type = llm.ServiceTypeAnthropic
		primary.APIKey = c.AnthropicAPIKey
	case "bedrock":
		primary.Type = llm.ServiceTypeBedrock
		primary.Region = c.AWSRegion
		primary.AWSAccessKeyID = c.AWSAccessKeyID
		primary.AWSSecretAccessKey = c.AWSSecretAccessKey
	default:
		return llm.ServiceConfig{}, llm.ServiceConfig{}, llm.NewConfigurationError("unknown LLM provider: %s", c.Provider)
	}

	return primary, fallback, nil
}

func (c *Config) Clone() *Config {
	clone, err := DeepCopyJSON(*c)
	if err != nil {
		panic(fmt.Sprintf("failed to clone configuration: %v", err))
	}

	return &clone
}

type UpdateListener func()

type Container struct {
	cfg       atomic.Pointer[Config]
	listeners []UpdateListener
}

func NewContainer(cfg *Config) *Container {
	c := &Container{}
	c.Update(cfg)
	return c
}

// Config returns the whole configuration readonly.
func (c *Container) Config() *Config {
	return c.cfg.Load()
}

func (c *Container) LLM() LLMConfig {
	cfg := c.cfg.Load()
	if cfg == nil {
		return LLMConfig{}
	}
	return cfg.LLM
}

func (c *Container) HTTP() HTTPConfig {
	cfg := c.cfg.Load()
	if cfg == nil {
		return HTTPConfig{}
	}
	return cfg.HTTP
}

func (c *Container) Store() StoreConfig {
	cfg := c.cfg.Load()
	if cfg == nil {
		return StoreConfig{}
	}
	return cfg.Store
}

func (c *Container) RegisterUpdateListener(listener UpdateListener) {
	c.listeners = append(c.listeners, listener)
}

// Update replaces the current configuration.
// The new configuration is deep-copied to ensure the new and old
// configurations are independent of each other.
func (c *Container) Update(newConfig *Config) {
	if newConfig == nil {
		c.cfg.Store(nil)
		return
	}

	clone, err := DeepCopyJSON(*newConfig)
	if err != nil {
		panic(fmt.Sprintf("failed to deep copy configuration: %v", err))
	}

	c.cfg.Store(&clone)

	for _, listener := range c.listeners {
		listener()
	}
}

// DeepCopyJSON creates a deep copy of JSON-serializable structs
func DeepCopyJSON[T any](src T) (T, error) {
	var dst T
	data, err := json.Marshal(src)
	if err != nil {
		return dst, err
	}
	err = json.Unmarshal(data, &dst)
	return dst, err
}
