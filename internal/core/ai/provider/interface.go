package provider

import (
	"context"
	"errors"
)

// 對話角色
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ErrEmptyResponse 提供者回應中沒有任何內容
var ErrEmptyResponse = errors.New("empty content in AI response")

// Message 表示與 AI 模型的對話消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request 表示發送到 AI 提供者的請求
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
	// JSONObject 要求模型以 JSON 物件回應
	JSONObject bool
}

// Response 表示從 AI 提供者收到的響應
type Response struct {
	Content string
	Usage   Usage
}

// Usage token 使用量
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Provider 定義 AI 提供者介面
type Provider interface {
	// Generate 送出一次補全請求，不重試
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel 獲取當前使用的模型名稱
	GetModel() string

	// Close 關閉提供者連接
	Close() error
}

// System 建立系統訊息
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User 建立使用者訊息
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
