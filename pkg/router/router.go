package router

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/narasux/perovskite/pkg/client"
	"github.com/narasux/perovskite/pkg/envs"
	"github.com/narasux/perovskite/pkg/handler"
	"github.com/narasux/perovskite/pkg/middleware"
	"github.com/narasux/perovskite/pkg/predictor"
	"github.com/narasux/perovskite/pkg/storage"
	"github.com/narasux/perovskite/pkg/utils/funcs"
	"github.com/narasux/perovskite/templates"
)

// InitRouter 按环境变量配置启动 web 服务
func InitRouter() {
	gin.SetMode(envs.GinRunMode)
	storage.InitSessionStore()

	predictionClient := client.New(
		envs.PredictionAPIBaseURL,
		client.WithBasicAuth(envs.PredictionAPIUser, envs.PredictionAPIPassword),
	)
	router := New(storage.Sessions, predictionClient)

	if err := router.Run(":" + envs.ServerPort); err != nil {
		panic(fmt.Sprintf("failed to start server: %s", err.Error()))
	}
}

// New 创建路由，预测服务通过 submitter 注入
func New(store *storage.SessionStore, submitter predictor.Submitter) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(gin.Recovery())

	// 加载 HTML 模板（嵌入二进制）
	tmpl := template.Must(template.New("").Funcs(funcs.NewFuncMap()).ParseFS(templates.FS, "webfe/*.html"))
	router.SetHTMLTemplate(tmpl)
	// 404
	router.NoRoute(handler.Get404)
	// 帮助
	router.GET("help", handler.GetHelpPage)

	h := handler.New(submitter)

	// webfe 路由
	{
		webfeRg := router.Group("", middleware.Session(store))
		// 组成表单
		webfeRg.GET("", h.GetFormPage)
		// 新增 A 位元素行
		webfeRg.POST("rows", h.AddRow)
		// 移除 A 位元素行
		webfeRg.POST("rows/:id/delete", h.RemoveRow)
		// 提交预测
		webfeRg.POST("predict", h.Predict)
	}

	// 可选元素，不读写会话，无需分配会话
	router.GET("apis/elements", h.ListElements)

	// api 路由
	{
		apiRg := router.Group("apis", middleware.Session(store))
		// 预览预测请求
		apiRg.GET("request", h.GetRequestPreview)
		// 提交预测
		apiRg.POST("predict", h.PredictByAPI)
	}

	return router
}
