// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package llm

const (
	ServiceTypeOpenAI           = "openai"
	ServiceTypeOpenAICompatible = "openaicompatible"
	ServiceTypeAzure            = "azure"
	ServiceTypeAnthropic        = "anthropic"
	ServiceTypeGroq             = "groq"
	ServiceTypeOllama           = "ollama"
	ServiceTypeBedrock          = "bedrock"
)

// ServiceConfig describes one configured language model backend.
type ServiceConfig struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	APIKey       string `json:"apiKey"`
	OrgID        string `json:"orgId"`
	APIURL       string `json:"apiURL"`
	DefaultModel string `json:"defaultModel"`

	// Region, AWSAccessKeyID and AWSSecretAccessKey apply to Bedrock
	// services only. When the key pair is empty the SDK falls back to its
	// default credential chain.
	Region             string `json:"region"`
	AWSAccessKeyID     string `json:"awsAccessKeyID"`
	AWSSecretAccessKey string `json:"awsSecretAccessKey"`

	InputTokenLimit int `json:"inputTokenLimit"`

	// Otherwise known as maxTokens
	OutputTokenLimit int `json:"outputTokenLimit"`

	RequestTimeoutSeconds int `json:"requestTimeoutSeconds"`
}

// ValidateService checks that a service carries the credentials its type
// requires. Failures surface as ConfigurationError so construction can stop
// before any request is attempted.
func ValidateService(service ServiceConfig) error {
	if service.Type == "" {
		return NewConfigurationError("service %q has no type", service.Name)
	}

	switch service.Type {
	case ServiceTypeOpenAI:
		if service.APIKey == "" {
			return NewConfigurationError("openai service requires an API key")
		}
	case ServiceTypeOpenAICompatible:
		if service.APIURL == "" {
			return NewConfigurationError("openai-compatible service requires an API URL")
		}
	case ServiceTypeAzure:
		if service.APIKey == "" || service.APIURL == "" {
			return NewConfigurationError("azure service requires an API key and URL")
		}
	case ServiceTypeAnthropic:
		if service.APIKey == "" {
			return NewConfigurationError("anthropic service requires an API key")
		}
	case ServiceTypeGroq:
		if service.APIKey == "" {
			return NewConfigurationError("GROQ_API_KEY not found in environment variables")
		}
	case ServiceTypeOllama:
		if service.APIURL == "" {
			return NewConfigurationError("ollama service requires a base URL")
		}
	case ServiceTypeBedrock:
		if service.Region == "" {
			return NewConfigurationError("bedrock service requires a region")
		}
	default:
		return NewConfigurationError("unsupported provider: %s", service.Type)
	}

	return nil
}
