// Package presenter 将预测结果或失败信息展示给用户
package presenter

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/narasux/perovskite/pkg/form"
	"github.com/narasux/perovskite/pkg/logging"
)

// 通用失败提示
const failureMessage = "Prediction failed. Check logs for details."

// ResultView 结果展示区域，初始为隐藏状态
type ResultView interface {
	// Show 使结果区域可见
	Show()
	// SetText 设置展示的文本
	SetText(text string)
}

// Notifier 打断式的通知（如浏览器 alert）
type Notifier interface {
	Alert(message string)
}

// Presenter ...
type Presenter struct {
	view     ResultView
	notifier Notifier
	logger   *logrus.Logger
}

// New ...
func New(view ResultView, notifier Notifier) *Presenter {
	return &Presenter{view: view, notifier: notifier, logger: logging.GetPredictionLogger()}
}

// ShowSuccess 展示预测值（保留 3 位小数）
func (p *Presenter) ShowSuccess(value float64) {
	p.view.Show()
	p.view.SetText(FormatValue(value))
}

// ShowFailure 通知用户并记录错误，结果区域保持原状
func (p *Presenter) ShowFailure(err error) {
	p.logger.WithError(err).Error("prediction failed")
	p.notifier.Alert(FailureMessage(err))
}

// FormatValue 格式化为恰好 3 位小数
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 3, 64)
}

// FailureMessage 面向用户的失败提示，组成不合法时给出具体原因
func FailureMessage(err error) string {
	var compErr *form.CompositionError
	if errors.As(err, &compErr) {
		return "Invalid composition: " + compErr.Error()
	}
	return failureMessage
}
