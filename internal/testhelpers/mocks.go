package testhelpers

import (
	"context"

	"recipe-chatbot/internal/core/ai/provider"

	"github.com/stretchr/testify/mock"
)

// MockProvider provider.Provider 的 mock 實作
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Response), args.Error(1)
}

func (m *MockProvider) GetModel() string {
	return "mock-model"
}

func (m *MockProvider) Close() error {
	return nil
}

// Reply 下一次 Generate 回傳指定內容
func (m *MockProvider) Reply(content string) *mock.Call {
	return m.On("Generate", mock.Anything, mock.Anything).Return(&provider.Response{Content: content}, nil).Once()
}

// Fail 下一次 Generate 回傳錯誤
func (m *MockProvider) Fail(err error) *mock.Call {
	return m.On("Generate", mock.Anything, mock.Anything).Return(nil, err).Once()
}

// LastRequest 最近一次 Generate 收到的請求
func (m *MockProvider) LastRequest() *provider.Request {
	for i := len(m.Calls) - 1; i >= 0; i-- {
		if m.Calls[i].Method == "Generate" {
			return m.Calls[i].Arguments.Get(1).(*provider.Request)
		}
	}
	return nil
}
