package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/perovskite/pkg/form"
	"github.com/narasux/perovskite/pkg/logging"
	"github.com/narasux/perovskite/pkg/model"
	"github.com/narasux/perovskite/pkg/storage"
)

// GetFormPage 组成表单页面
func (h *Handler) GetFormPage(c *gin.Context) {
	sess := session(c)
	rows, err := sess.Form.Rows(form.ASiteContainerID)
	if err != nil {
		_ = c.Error(err)
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"containerID": form.ASiteContainerID,
		"rows":        rows,
		"elements":    model.ASiteElements(),
		"result":      sess.View.Snapshot(),
		"alerts":      sess.View.TakeAlerts(),
	})
}

// AddRow 新增一行 A 位元素
func (h *Handler) AddRow(c *gin.Context) {
	sess := session(c)
	applyEdits(c, sess)

	if _, err := sess.Form.AddEntry(form.ASiteContainerID); err != nil {
		_ = c.Error(err)
		sess.View.Alert(err.Error())
	}
	backToForm(c)
}

// RemoveRow 移除指定行，行已不存在（如重复提交）时忽略
func (h *Handler) RemoveRow(c *gin.Context) {
	sess := session(c)
	applyEdits(c, sess)

	err := sess.Form.RemoveEntry(form.ASiteContainerID, c.Param("id"))
	if err != nil && !errors.Is(err, form.ErrRowNotFound) {
		_ = c.Error(err)
		sess.View.Alert(err.Error())
	}
	backToForm(c)
}

// Predict 提交预测，结果（或失败通知）在重定向后的页面中展示
func (h *Handler) Predict(c *gin.Context) {
	sess := session(c)
	applyEdits(c, sess)

	if _, err := h.predictorOf(sess).Submit(requestContext(c)); err != nil {
		_ = c.Error(err)
	}
	backToForm(c)
}

// 页面中的所有输入框在同一个表单内，任何一次提交都会带上当前的输入值，先同步到会话中的表单
func applyEdits(c *gin.Context, sess *storage.Session) {
	rows, err := sess.Form.Rows(form.ASiteContainerID)
	if err != nil {
		return
	}
	for _, state := range rows {
		row, err := sess.Form.Row(form.ASiteContainerID, state.ID)
		if err != nil {
			continue
		}
		if name, ok := c.GetPostForm("name_" + state.ID); ok {
			if err = row.SetName(model.Element(name)); err != nil {
				logging.GetWebLogger().WithError(err).Warn("ignore invalid element")
				sess.View.Alert(err.Error())
			}
		}
		if fraction, ok := c.GetPostForm("fraction_" + state.ID); ok {
			row.SetFraction(fraction)
		}
	}
}

// 使用 303 以便浏览器以 GET 方式重新加载表单页
func backToForm(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
