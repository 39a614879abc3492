// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateService(t *testing.T) {
	tests := []struct {
		name    string
		service ServiceConfig
		wantErr bool
	}{
		{
			name: "Valid OpenAI service with all required fields",
			service: ServiceConfig{
				Name:   "primary",
				Type:   ServiceTypeOpenAI,
				APIKey: "sk-xyz",
			},
			wantErr: false,
		},
		{
			name: "OpenAI service missing API key",
			service: ServiceConfig{
				Name:   "primary",
				Type:   ServiceTypeOpenAI,
				APIKey: "", // bad
			},
			wantErr: true,
		},
		{
			name: "Valid OpenAI compatible service with API URL",
			service: ServiceConfig{
				Name:   "compat",
				Type:   ServiceTypeOpenAICompatible,
				APIURL: "http://localhost:8080",
			},
			wantErr: false,
		},
		{
			name: "OpenAI compatible service does not require API key",
			service: ServiceConfig{
				Name:   "compat",
				Type:   ServiceTypeOpenAICompatible,
				APIKey: "", // not required
				APIURL: "http://localhost:8080",
			},
			wantErr: false,
		},
		{
			name: "OpenAI compatible service missing API URL",
			service: ServiceConfig{
				Name:   "compat",
				Type:   ServiceTypeOpenAICompatible,
				APIURL: "", // bad
			},
			wantErr: true,
		},
		{
			name: "Valid Azure service with API key and URL",
			service: ServiceConfig{
				Name:   "azure",
				Type:   ServiceTypeAzure,
				APIKey: "azure-key",
				APIURL: "https://myservice.openai.azure.com",
			},
			wantErr: false,
		},
		{
			name: "Azure service missing API URL",
			service: ServiceConfig{
				Name:   "azure",
				Type:   ServiceTypeAzure,
				APIKey: "azure-key",
				APIURL: "", // bad
			},
			wantErr: true,
		},
		{
			name: "Valid Anthropic service with API key",
			service: ServiceConfig{
				Name:   "anthropic",
				Type:   ServiceTypeAnthropic,
				APIKey: "sk-ant-xyz",
			},
			wantErr: false,
		},
		{
			name: "Anthropic service missing API key",
			service: ServiceConfig{
				Name:   "anthropic",
				Type:   ServiceTypeAnthropic,
				APIKey: "", // bad
			},
			wantErr: true,
		},
		{
			name: "Groq service missing API key",
			service: ServiceConfig{
				Name:   "groq",
				Type:   ServiceTypeGroq,
				APIKey: "", // bad
			},
			wantErr: true,
		},
		{
			name: "Valid Groq service with API key",
			service: ServiceConfig{
				Name:   "groq",
				Type:   ServiceTypeGroq,
				APIKey: "gsk-xyz",
			},
			wantErr: false,
		},
		{
			name: "Valid Ollama service with base URL",
			service: ServiceConfig{
				Name:   "ollama",
				Type:   ServiceTypeOllama,
				APIURL: "http://host.docker.internal:11434",
			},
			wantErr: false,
		},
		{
			name: "Ollama service missing base URL",
			service: ServiceConfig{
				Name:   "ollama",
				Type:   ServiceTypeOllama,
				APIURL: "", // bad
			},
			wantErr: true,
		},
		{
			name: "Valid Bedrock service with region",
			service: ServiceConfig{
				Name:   "bedrock",
				Type:   ServiceTypeBedrock,
				Region: "us-east-1",
			},
			wantErr: false,
		},
		{
			name: "Bedrock service missing region",
			service: ServiceConfig{
				Name:   "bedrock",
				Type:   ServiceTypeBedrock,
				Region: "", // bad
			},
			wantErr: true,
		},
		{
			name: "Service with empty type",
			service: ServiceConfig{
				Name:   "unnamed",
				Type:   "", // bad
				APIKey: "sk-xyz",
			},
			wantErr: true,
		},
		{
			name: "Service with unsupported type",
			service: ServiceConfig{
				Name:   "other",
				Type:   "watson", // bad - unsupported
				APIKey: "sk-xyz",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateService(tt.service)
			if tt.wantErr {
				require.Error(t, err)
				var confErr *ConfigurationError
				assert.ErrorAs(t, err, &confErr, "validation failures must be configuration errors")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
