package presenter

import "sync"

// State 保存在内存中的结果区域与待展示的通知，供 web 页面渲染
type State struct {
	mu      sync.Mutex
	visible bool
	text    string
	alerts  []string
}

// Snapshot 结果区域的状态
type Snapshot struct {
	Visible bool
	Text    string
}

// Show ...
func (s *State) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
}

// SetText ...
func (s *State) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Alert 记录通知，页面下一次渲染时展示
func (s *State) Alert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, message)
}

// Snapshot ...
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Visible: s.visible, Text: s.text}
}

// TakeAlerts 取出并清空待展示的通知（每条通知只展示一次）
func (s *State) TakeAlerts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	alerts := s.alerts
	s.alerts = nil
	return alerts
}
