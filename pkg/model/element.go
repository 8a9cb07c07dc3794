package model

import (
	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/samber/lo"
)

// Site 钙钛矿晶格中的结构位点（A/B/C）
type Site string

const (
	// SiteA A 位（有机/无机阳离子）
	SiteA Site = "A"
	// SiteB B 位（金属阳离子）
	SiteB Site = "B"
	// SiteC C 位（卤素阴离子）
	SiteC Site = "C"
)

// Element 位点上的元素/离子标识
type Element string

const (
	ElementMA Element = "MA"
	ElementFA Element = "FA"
	ElementCs Element = "Cs"
	ElementRb Element = "Rb"
	ElementPb Element = "Pb"
	ElementI  Element = "I"
)

// 各位点可选元素，顺序即下拉框展示顺序，第一个为新增行的默认值
var siteElements = map[Site][]Element{
	SiteA: {ElementMA, ElementFA, ElementCs, ElementRb},
	SiteB: {ElementPb},
	SiteC: {ElementI},
}

var siteElementSets = func() map[Site]*set.StringSet {
	sets := make(map[Site]*set.StringSet, len(siteElements))
	for site, elements := range siteElements {
		s := set.NewStringSet()
		s.Append(lo.Map(elements, func(e Element, _ int) string { return string(e) })...)
		sets[site] = s
	}
	return sets
}()

// ElementsOf 获取指定位点可选的元素列表
func ElementsOf(site Site) []Element {
	return append([]Element(nil), siteElements[site]...)
}

// ASiteElements 获取 A 位可选的元素列表
func ASiteElements() []Element {
	return ElementsOf(SiteA)
}

// DefaultElement 获取指定位点的默认元素，未知位点返回空值
func DefaultElement(site Site) Element {
	elements := siteElements[site]
	if len(elements) == 0 {
		return ""
	}
	return elements[0]
}

// Valid 判断元素是否可用于指定位点
func (e Element) Valid(site Site) bool {
	s, ok := siteElementSets[site]
	return ok && s.Has(string(e))
}

// String ...
func (e Element) String() string {
	return string(e)
}
