package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/narasux/perovskite/pkg/envs"
	"github.com/narasux/perovskite/pkg/utils/ginx"
)

// Cors 跨域配置，未指定白名单时允许所有来源（仅 apis 会被跨域调用）
func Cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", ginx.RequestIDHeaderKey},
		ExposeHeaders: []string{ginx.RequestIDHeaderKey},
		MaxAge:        12 * time.Hour,
	}
	origins := lo.Filter(
		lo.Map(strings.Split(envs.AllowedOrigins, ","), func(s string, _ int) string { return strings.TrimSpace(s) }),
		func(s string, _ int) bool { return s != "" },
	)
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
