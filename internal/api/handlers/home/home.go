package home

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var page []byte

// Page 回傳聊天頁面
func Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
