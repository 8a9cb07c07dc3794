package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/perovskite/pkg/utils/ginx"
	"github.com/narasux/perovskite/pkg/utils/uuid"
)

// RequestID 复用上游传入的 Request ID，格式不合法时重新生成
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(ginx.RequestIDHeaderKey)

		if !uuid.IsValid(requestID) {
			requestID = uuid.GenUUID4()
		}
		ginx.SetRequestID(c, requestID)
		c.Writer.Header().Set(ginx.RequestIDHeaderKey, requestID)

		c.Next()
	}
}
