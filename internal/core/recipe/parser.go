package recipe

import (
	"strings"
	"unicode/utf8"

	"recipe-chatbot/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	fenceOpen  = "```json"
	fenceClose = "```"
	// 錯誤位置前後保留的字元數
	parseContextRadius = 50
)

// ParseResponse 清理模型輸出並解析成通用 JSON 值
func ParseResponse(raw string) (any, error) {
	common.LogDebug("AI 原始回應", zap.String("raw", raw))

	text := stripFences(raw)
	common.LogDebug("AI 回應初步清理", zap.String("cleaned", text))

	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		common.LogError("AI 回應不是 JSON 物件", zap.String("content", text))
		return nil, &FormatError{Text: text}
	}

	text = Sanitize(text)
	common.LogDebug("AI 回應字元清理", zap.String("sanitized", text))

	var value any
	if err := common.ParseJSON(text, &value); err != nil {
		offset := common.ErrorOffset(err)
		if offset < 0 || offset > int64(len(text)) {
			offset = int64(len(text))
		}
		parseErr := &ParseError{
			Offset:   offset,
			Position: utf8.RuneCountInString(text[:offset]),
			Context:  errorContext(text, int(offset), parseContextRadius),
			Err:      err,
		}
		common.LogError("JSON 解析失敗",
			zap.Error(err),
			zap.Int64("offset", parseErr.Offset),
			zap.Int("position", parseErr.Position),
			zap.String("context", parseErr.Context),
		)
		return nil, parseErr
	}

	common.LogDebug("AI 回應解析成功", zap.Any("parsed", value))
	return value, nil
}

// stripFences 去除 ```json 開頭與 ``` 結尾，兩者皆可缺
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, fenceOpen)
	text = strings.TrimSuffix(text, fenceClose)
	return strings.TrimSpace(text)
}

// errorContext 取 offset 前後各 radius 個字元，超出字串範圍時截斷
func errorContext(text string, offset, radius int) string {
	if offset > len(text) {
		offset = len(text)
	}
	for offset > 0 && offset < len(text) && !utf8.RuneStart(text[offset]) {
		offset--
	}

	start := offset
	for i := 0; i < radius && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	end := offset
	for i := 0; i < radius && end < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return text[start:end]
}
