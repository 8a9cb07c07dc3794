package middleware

import (
	"bytes"
	"time"

	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/narasux/perovskite/pkg/envs"
	"github.com/narasux/perovskite/pkg/logging"
	"github.com/narasux/perovskite/pkg/utils/ginx"
)

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write ...
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// 获取客户端 IP
func getClientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		return c.GetHeader(envs.RealClientIPHeaderKey)
	}
	return c.ClientIP()
}

// Logger 访问日志
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqBody, respBody := "", ""
		if requestBody, err := ginx.ReadRequestBody(c.Request); err == nil {
			reqBody = stringx.Truncate(string(requestBody), 1024)
		}

		writer := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		// 检查错误信息，以手动设置的为主，否则检查 c.Errors
		errStr, hasErr := "", false
		if err, ok := ginx.GetError(c); ok {
			errStr, hasErr = toString(err), true
		} else if len(c.Errors) > 0 {
			errStr, hasErr = c.Errors.String(), true
		}

		// 统计请求耗时，单位为 ms，限制最小 1ms
		duration := time.Since(start)
		latency := float64(duration/time.Millisecond) + 1

		// 如果没有错误信息，则不关注 respBody
		if hasErr {
			respBody = stringx.Truncate(writer.body.String(), 1024)
		}

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"params":    stringx.Truncate(c.Request.URL.RawQuery, 1024),
			"reqBody":   reqBody,
			"respBody":  respBody,
			"status":    c.Writer.Status(),
			"latency":   latency,
			"requestID": ginx.GetRequestID(c),
			"sessionID": ginx.GetSessionID(c),
			"clientIP":  getClientIP(c),
			"error":     errStr,
		}

		logger := logging.GetAccessLogger()
		if hasErr {
			logger.WithFields(fields).Error("-")
		} else {
			logger.WithFields(fields).Info("-")
		}
	}
}

func toString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
