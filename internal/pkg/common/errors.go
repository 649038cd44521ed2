package common

import "net/http"

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Error string `json:"error"`
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 對外錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓包裝後的錯誤仍能對應預定義錯誤
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Wrap 以預定義錯誤包裝原始錯誤
func (e *CustomError) Wrap(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeMissingMessage  = "MISSING_MESSAGE"   // 400
	ErrCodeMissingRecipe   = "MISSING_RECIPE"    // 400
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE" // 413

	// 服務器錯誤 (5xx)
	ErrCodeGatewayTimeout = "GATEWAY_TIMEOUT" // 504
)

// 預定義錯誤
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "invalid request body", http.StatusBadRequest, nil)
	ErrMissingMessage  = NewError(ErrCodeMissingMessage, "message is required", http.StatusBadRequest, nil)
	ErrMissingRecipe   = NewError(ErrCodeMissingRecipe, "recipe is required", http.StatusBadRequest, nil)
	ErrRequestTooLarge = NewError(ErrCodeRequestTooLarge, "request body too large", http.StatusRequestEntityTooLarge, nil)

	ErrGatewayTimeout = NewError(ErrCodeGatewayTimeout, "request timeout", http.StatusGatewayTimeout, nil)
)
