package chat

import (
	"context"
	"errors"
	"io"
	"net/http"

	"recipe-chatbot/internal/core/recipe"
	"recipe-chatbot/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Agent 聊天處理器需要的代理能力，*recipe.Agent 實作此介面
type Agent interface {
	Process(ctx context.Context, input string) recipe.Result
	Call(ctx context.Context, name string, in recipe.ToolInput) (any, error)
}

// Request 聊天請求
type Request struct {
	Message string `json:"message"`
}

// NutritionRequest 營養計算請求
type NutritionRequest struct {
	Recipe map[string]any `json:"recipe"`
}

// Handler 聊天處理器
type Handler struct {
	agent Agent
}

// NewHandler 創建聊天處理器
func NewHandler(agent Agent) *Handler {
	return &Handler{agent: agent}
}

// Chat 處理 POST /api/chat
func (h *Handler) Chat(c *gin.Context) {
	requestID := common.RequestID(c)

	var req Request
	if err := bindJSON(c, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = common.ErrMissingMessage
		}
		writeBindError(c, requestID, err)
		return
	}
	common.LogDebug("收到聊天請求", zap.String("request_id", requestID), zap.String("message", req.Message))

	if req.Message == "" {
		writeBindError(c, requestID, common.ErrMissingMessage)
		return
	}

	result := h.agent.Process(c.Request.Context(), req.Message)
	common.LogDebug("聊天回應", zap.String("request_id", requestID), zap.Any("result", result))

	c.JSON(http.StatusOK, result)
}

// Nutrition 處理 POST /api/nutrition
func (h *Handler) Nutrition(c *gin.Context) {
	requestID := common.RequestID(c)

	var req NutritionRequest
	if err := bindJSON(c, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = common.ErrMissingRecipe
		}
		writeBindError(c, requestID, err)
		return
	}
	if len(req.Recipe) == 0 {
		writeBindError(c, requestID, common.ErrMissingRecipe)
		return
	}

	data, err := h.agent.Call(c.Request.Context(), recipe.ToolCalculateNutrition, recipe.ToolInput{Recipe: req.Recipe})
	if err != nil {
		common.LogError("營養計算失敗", zap.String("request_id", requestID), zap.Error(err))
		c.JSON(http.StatusOK, recipe.ErrorData{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// bindJSON 解析請求體，錯誤轉為對應的 CustomError；空請求體回傳 io.EOF
func bindJSON(c *gin.Context, v any) error {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return common.ErrRequestTooLarge.Wrap(err)
	}
	return common.ErrInvalidRequest.Wrap(err)
}

func writeBindError(c *gin.Context, requestID string, err error) {
	var ce *common.CustomError
	if !errors.As(err, &ce) {
		ce = common.ErrInvalidRequest.Wrap(err)
	}
	common.LogWarn("請求無效",
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("code", ce.Code),
		zap.Error(err),
	)
	common.WriteError(c, ce)
}
