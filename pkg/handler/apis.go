package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/perovskite/pkg/common/errcode"
	"github.com/narasux/perovskite/pkg/form"
	"github.com/narasux/perovskite/pkg/model"
	"github.com/narasux/perovskite/pkg/presenter"
	"github.com/narasux/perovskite/pkg/utils/ginx"
)

// PredictionResult 预测结果
type PredictionResult struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// GetRequestPreview 预览当前表单将要发送的预测请求
func (h *Handler) GetRequestPreview(c *gin.Context) {
	req, err := h.predictorOf(session(c)).Preview()
	if err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidComposition, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, req)
}

// PredictByAPI 以当前表单提交预测
func (h *Handler) PredictByAPI(c *gin.Context) {
	value, err := h.predictorOf(session(c)).Submit(requestContext(c))
	switch {
	case err == nil:
		ginx.SetResp(c, http.StatusOK, PredictionResult{Value: value, Display: presenter.FormatValue(value)})
	case errors.Is(err, form.ErrInvalidComposition):
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidComposition, err)
	default:
		ginx.SetErrResp(c, http.StatusBadGateway, errcode.PredictionFailed, err)
	}
}

// ListElements 各位点可选的元素
func (h *Handler) ListElements(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, map[model.Site][]model.Element{
		model.SiteA: model.ElementsOf(model.SiteA),
		model.SiteB: model.ElementsOf(model.SiteB),
		model.SiteC: model.ElementsOf(model.SiteC),
	})
}
