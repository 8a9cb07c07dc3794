// Package predictor 串联一次提交：读取表单组装请求 -> 调用预测服务 -> 展示结果
package predictor

import (
	"context"

	"github.com/narasux/perovskite/pkg/form"
	"github.com/narasux/perovskite/pkg/model"
	"github.com/narasux/perovskite/pkg/presenter"
)

// Submitter 发送预测请求，*client.Client 即满足
type Submitter interface {
	Submit(ctx context.Context, req *model.PredictionRequest) (float64, error)
}

// Predictor 多次提交之间不做互斥，先返回的结果会被后返回的覆盖
type Predictor struct {
	builder   *form.Builder
	submitter Submitter
	presenter *presenter.Presenter
}

// New ...
func New(f *form.Form, submitter Submitter, p *presenter.Presenter) *Predictor {
	return &Predictor{builder: form.NewBuilder(f), submitter: submitter, presenter: p}
}

// Preview 仅组装请求，不发送
func (p *Predictor) Preview() (*model.PredictionRequest, error) {
	return p.builder.Build()
}

// Submit 组装完成后才发起请求，请求结束后才展示结果（成功或失败）
func (p *Predictor) Submit(ctx context.Context) (float64, error) {
	req, err := p.builder.Build()
	if err != nil {
		p.presenter.ShowFailure(err)
		return 0, err
	}

	value, err := p.submitter.Submit(ctx, req)
	if err != nil {
		p.presenter.ShowFailure(err)
		return 0, err
	}
	p.presenter.ShowSuccess(value)
	return value, nil
}
