package service

import (
	"context"
	"errors"
	"testing"

	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Complete(t *testing.T) {
	p := new(testhelpers.MockProvider)
	p.Reply("Remplacez le beurre par de l'huile.")

	svc := New(p)
	req := &provider.Request{Messages: []provider.Message{provider.User("beurre")}, MaxTokens: 300, Temperature: 0.7}

	out, err := svc.Complete(context.Background(), "suggest_substitutions", req)
	require.NoError(t, err)
	assert.Equal(t, "Remplacez le beurre par de l'huile.", out)
	assert.Same(t, req, p.LastRequest())
	assert.Equal(t, "mock-model", svc.Model())
	p.AssertNumberOfCalls(t, "Generate", 1)
}

func TestService_Complete_WrapsFailure(t *testing.T) {
	cause := errors.New("connection refused")
	p := new(testhelpers.MockProvider)
	p.Fail(cause)

	_, err := New(p).Complete(context.Background(), "generate_recipes", &provider.Request{})
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "generate_recipes", upstream.Operation)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", err.Error())
	p.AssertNumberOfCalls(t, "Generate", 1)
}

func TestNewService_SelectsProvider(t *testing.T) {
	cfg := &config.Config{
		AI:         config.AIConfig{Provider: config.ProviderOpenRouter, Model: "openai/gpt-4.1-nano"},
		OpenRouter: config.OpenRouterConfig{APIKey: "k", BaseURL: "http://localhost"},
	}
	svc, err := NewService(cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4.1-nano", svc.Model())
	assert.NoError(t, svc.Close())

	cfg.AI.Provider = config.ProviderOpenAI
	cfg.OpenAI.APIKey = "sk-test"
	svc, err = NewService(cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4.1-nano", svc.Model())

	cfg.AI.Provider = "unknown"
	_, err = NewService(cfg)
	assert.Error(t, err)
}
