package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/narasux/perovskite/pkg/client"
	"github.com/narasux/perovskite/pkg/middleware"
	"github.com/narasux/perovskite/pkg/predictor"
	"github.com/narasux/perovskite/pkg/presenter"
	"github.com/narasux/perovskite/pkg/storage"
	"github.com/narasux/perovskite/pkg/utils/ginx"
)

// Handler 页面与 API 处理器，所有会话共享同一个预测服务客户端
type Handler struct {
	submitter predictor.Submitter
}

// New ...
func New(submitter predictor.Submitter) *Handler {
	return &Handler{submitter: submitter}
}

// 当前会话的预测流程，结果与通知写入会话的展示状态
func (h *Handler) predictorOf(sess *storage.Session) *predictor.Predictor {
	return predictor.New(sess.Form, h.submitter, presenter.New(sess.View, sess.View))
}

// 将 Request ID 透传给预测服务，便于串联日志
func requestContext(c *gin.Context) context.Context {
	return client.WithRequestID(c.Request.Context(), ginx.GetRequestID(c))
}

func session(c *gin.Context) *storage.Session {
	return middleware.GetSession(c)
}
