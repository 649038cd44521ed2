package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/pkg/common"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

// Config OpenAI 客戶端設定
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client 以官方 SDK 實作 provider.Provider
type Client struct {
	sdk   openaisdk.Client
	model string
}

// NewClient 創建 OpenAI 客戶端，SDK 內建重試關閉
func NewClient(cfg Config, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		sdk:   openaisdk.NewClient(append(base, opts...)...),
		model: cfg.Model,
	}
}

// Generate 呼叫 chat completions
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    toMessages(req.Messages),
		Temperature: openaisdk.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(req.MaxTokens))
	}
	if req.JSONObject {
		params.ResponseFormat = openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	common.LogDebug("Sending request to OpenAI",
		zap.String("model", c.model),
		zap.Int("messages", len(req.Messages)),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Bool("json_object", req.JSONObject),
	)

	completion, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openaisdk.Error
		if errors.As(err, &apiErr) {
			common.LogError("OpenAI returned error status",
				zap.Int("status_code", apiErr.StatusCode),
				zap.String("model", c.model),
			)
			return nil, fmt.Errorf("openai: status %d: %w", apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("openai: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response: %w", provider.ErrEmptyResponse)
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("openai: %w", provider.ErrEmptyResponse)
	}

	return &provider.Response{
		Content: content,
		Usage: provider.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}

// GetModel 獲取當前使用的模型名稱
func (c *Client) GetModel() string {
	return c.model
}

// Close SDK 無需釋放資源
func (c *Client) Close() error {
	return nil
}

func toMessages(msgs []provider.Message) []openaisdk.ChatCompletionMessageParamUnion {
	out := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case provider.RoleSystem:
			out = append(out, openaisdk.SystemMessage(m.Content))
		default:
			out = append(out, openaisdk.UserMessage(m.Content))
		}
	}
	return out
}
