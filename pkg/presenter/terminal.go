package presenter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TerminalView 命令行下的结果区域，可见后设置文本即输出
type TerminalView struct {
	State
	out io.Writer
}

// NewTerminalView ...
func NewTerminalView(out io.Writer) *TerminalView {
	return &TerminalView{out: out}
}

// SetText ...
func (v *TerminalView) SetText(text string) {
	v.State.SetText(text)
	if v.Snapshot().Visible {
		fmt.Fprintf(v.out, "%s %s\n", color.GreenString("Predicted band gap:"), text)
	}
}

// TerminalNotifier 命令行下的通知，直接输出到错误流
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier ...
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

// Alert ...
func (n *TerminalNotifier) Alert(message string) {
	fmt.Fprintln(n.out, color.RedString(message))
}
