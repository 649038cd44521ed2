package service

import (
	"context"
	"fmt"
	"time"

	"recipe-chatbot/internal/core/ai/openai"
	"recipe-chatbot/internal/core/ai/openrouter"
	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// UpstreamError 補全服務呼叫失敗
type UpstreamError struct {
	Operation string
	Err       error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Service AI 服務，建立後不再變動，可被多個請求共用
type Service struct {
	provider provider.Provider
}

// New 以指定提供者建立服務
func New(p provider.Provider) *Service {
	return &Service{provider: p}
}

// NewService 依設定建立提供者與服務
func NewService(cfg *config.Config) (*Service, error) {
	var p provider.Provider
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		var opts []option.RequestOption
		if cfg.AI.Timeout > 0 {
			opts = append(opts, option.WithRequestTimeout(cfg.AI.Timeout))
		}
		p = openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.AI.Model,
		}, opts...)
	case config.ProviderOpenRouter:
		p = openrouter.NewClient(openrouter.Config{
			APIKey:  cfg.OpenRouter.APIKey,
			BaseURL: cfg.OpenRouter.BaseURL,
			Model:   cfg.AI.Model,
			Timeout: cfg.AI.Timeout,
		})
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.AI.Provider)
	}

	common.LogInfo("AI 提供者已初始化",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", p.GetModel()),
		zap.Duration("timeout", cfg.AI.Timeout),
	)
	return New(p), nil
}

// Complete 送出一次補全請求並回傳文字，失敗時回傳 *UpstreamError
func (s *Service) Complete(ctx context.Context, operation string, req *provider.Request) (string, error) {
	start := time.Now()
	resp, err := s.provider.Generate(ctx, req)
	if err == nil && resp == nil {
		err = provider.ErrEmptyResponse
	}

	fields := []zap.Field{zap.String("model", s.provider.GetModel())}
	if resp != nil {
		fields = append(fields, zap.Int("total_tokens", resp.Usage.TotalTokens))
	}
	common.LogAICall(operation, time.Since(start), err, fields...)

	if err != nil {
		return "", &UpstreamError{Operation: operation, Err: err}
	}
	return resp.Content, nil
}

// Model 目前使用的模型
func (s *Service) Model() string {
	return s.provider.GetModel()
}

// Close 釋放提供者資源
func (s *Service) Close() error {
	return s.provider.Close()
}
