package model

import "github.com/samber/lo"

// SiteEntry 位点上的一种元素及其相对占比
type SiteEntry struct {
	Name Element `json:"name"`
	// 预测服务的字段名即为 frequence
	Fraction float64 `json:"frequence"`
}

// SiteList 位点元素列表，顺序即展示顺序，不去重也不重排
type SiteList []SiteEntry

// TotalFraction 计算占比之和（仅用于诊断，约定值为 1.0，但不做强制）
func (l SiteList) TotalFraction() float64 {
	return lo.Reduce(l, func(total float64, e SiteEntry, _ int) float64 { return total + e.Fraction }, 0.0)
}

// PerovskiteComposition 钙钛矿各位点组成
type PerovskiteComposition struct {
	ASite SiteList `json:"A_site"`
	BSite SiteList `json:"B_site"`
	CSite SiteList `json:"C_site"`
}
