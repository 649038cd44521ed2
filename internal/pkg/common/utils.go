package common

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// RequestID 取得請求 ID，中間件未設置時自行產生
func RequestID(c *gin.Context) string {
	if id := requestid.Get(c); id != "" {
		return id
	}
	id := GenerateUUID()
	c.Header("X-Request-ID", id)
	return id
}

// WriteError 寫入錯誤響應並中止後續處理
func WriteError(c *gin.Context, err *CustomError) {
	c.AbortWithStatusJSON(err.Status, ErrorResponse{Error: err.Message})
}
