package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrPredictionFailed 预测失败，网络错误 / 非 2xx / 响应体无法解析均不做区分
var ErrPredictionFailed = errors.New("prediction failed")

// PredictionError 记录失败发生的阶段及原因，仅用于诊断
type PredictionError struct {
	Stage string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPredictionFailed, e.Stage, e.Err)
}

func (e *PredictionError) Unwrap() []error {
	return []error{ErrPredictionFailed, e.Err}
}

func newPredictionError(stage string, err error) error {
	return &PredictionError{Stage: stage, Err: err}
}
