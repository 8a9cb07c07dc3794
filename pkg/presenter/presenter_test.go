package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/narasux/perovskite/pkg/form"
)

func TestFormatValue(t *testing.T) {
	cases := map[float64]string{
		1.2:      "1.200",
		1.23456:  "1.235",
		0.512345: "0.512",
		0:        "0.000",
		-1.5:     "-1.500",
		1234.5:   "1234.500",
	}
	for value, want := range cases {
		assert.Equal(t, want, FormatValue(value))
	}
}

func TestShowSuccess(t *testing.T) {
	state := &State{}
	p := New(state, state)

	p.ShowSuccess(0.512345)

	assert.Equal(t, Snapshot{Visible: true, Text: "0.512"}, state.Snapshot())
	assert.Empty(t, state.TakeAlerts())
}

func TestShowFailureLeavesViewUntouched(t *testing.T) {
	hidden := &State{}
	New(hidden, hidden).ShowFailure(errors.New("connection refused"))
	assert.Equal(t, Snapshot{}, hidden.Snapshot())
	assert.Equal(t, []string{failureMessage}, hidden.TakeAlerts())

	shown := &State{}
	p := New(shown, shown)
	p.ShowSuccess(1.2)
	p.ShowFailure(errors.New("connection refused"))
	assert.Equal(t, Snapshot{Visible: true, Text: "1.200"}, shown.Snapshot())
	assert.Len(t, shown.TakeAlerts(), 1)
	// 通知只展示一次
	assert.Empty(t, shown.TakeAlerts())
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, failureMessage, FailureMessage(errors.New("boom")))

	compErr := errors.Wrap(&form.CompositionError{
		ContainerID: form.ASiteContainerID,
		Fractions:   []*form.FractionError{{RowID: "2", Text: "abc", Err: form.ErrFractionNotNumber}},
	}, "build prediction request")
	msg := FailureMessage(compErr)
	assert.Contains(t, msg, "Invalid composition")
	assert.Contains(t, msg, `"abc"`)
}

func TestTerminalView(t *testing.T) {
	out := &bytes.Buffer{}
	view := NewTerminalView(out)

	// 隐藏时设置文本不输出
	view.SetText("0.100")
	assert.Empty(t, out.String())

	New(view, NewTerminalNotifier(out)).ShowSuccess(1.23456)
	assert.Contains(t, out.String(), "Predicted band gap:")
	assert.Contains(t, out.String(), "1.235")
}

func TestTerminalNotifier(t *testing.T) {
	out := &bytes.Buffer{}
	New(NewTerminalView(out), NewTerminalNotifier(out)).ShowFailure(errors.New("boom"))
	assert.Contains(t, out.String(), failureMessage)
	assert.NotContains(t, out.String(), "Predicted band gap:")
}
