package envs

import (
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/narasux/perovskite/pkg/common/runtime"
	"github.com/narasux/perovskite/pkg/utils/envx"
	"github.com/narasux/perovskite/pkg/utils/pathx"
)

// 需要先于其他变量初始化，.env 不存在时忽略
var _ = godotenv.Load()

// 以下变量值可通过环境变量指定
var (
	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runtime.RunMode)

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")

	// PredictionAPIBaseURL 带隙预测服务地址
	PredictionAPIBaseURL = envx.Get("PREDICTION_API_BASE_URL", "http://127.0.0.1:8000")

	// PredictionAPIUser 预测服务 BasicAuth 用户名（为空则不认证）
	PredictionAPIUser = envx.Get("PREDICTION_API_USER", "")

	// PredictionAPIPassword 预测服务 BasicAuth 密码
	PredictionAPIPassword = envx.Get("PREDICTION_API_PASSWORD", "")

	// SessionCacheSize 同时保留的表单会话数量上限
	SessionCacheSize = envx.GetInt("SESSION_CACHE_SIZE", 1024)

	// RealClientIPHeaderKey 经过代理时，用于获取真实客户端 IP 的请求头
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// AllowedOrigins 跨域白名单，逗号分隔，为空表示不限制
	AllowedOrigins = envx.Get("ALLOWED_ORIGINS", "")
)
