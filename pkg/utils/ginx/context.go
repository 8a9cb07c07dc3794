package ginx

import "github.com/gin-gonic/gin"

const (
	// RequestIDKey ...
	RequestIDKey = "requestID"
	// SessionIDKey ...
	SessionIDKey = "sessionID"
	// ErrorKey ...
	ErrorKey = "error"
)

// GetRequestID ...
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// SetRequestID ...
func SetRequestID(c *gin.Context, requestID string) {
	c.Set(RequestIDKey, requestID)
}

// GetSessionID ...
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// SetSessionID ...
func SetSessionID(c *gin.Context, sessionID string) {
	c.Set(SessionIDKey, sessionID)
}

// GetError ...
func GetError(c *gin.Context) (any, bool) {
	return c.Get(ErrorKey)
}

// SetError ...
func SetError(c *gin.Context, err error) {
	c.Set(ErrorKey, err)
}
