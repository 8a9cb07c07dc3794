package model

// Dimension 钙钛矿材料维度
type Dimension string

const (
	Dimension0D                   Dimension = "0D"
	Dimension1D                   Dimension = "1D"
	Dimension2D                   Dimension = "2D"
	Dimension3D                   Dimension = "3D"
	Dimension2D3DMixture          Dimension = "2D3D_mixture"
	Dimension3DWith2DCappingLayer Dimension = "3D_with_2D_capping_layer"
)

// SpaceGroup 空间群，对预测服务而言是不透明的字符串
type SpaceGroup string

const (
	SpaceGroupRuddlesdenPopper SpaceGroup = "I4/mmm"
	SpaceGroupCubic            SpaceGroup = "Pm3m"
	SpaceGroupTetragonal       SpaceGroup = "I4/mcm"
	SpaceGroupOrthorhombic     SpaceGroup = "Pnma"
	SpaceGroupHexagonal        SpaceGroup = "P6/mmc"
)

// PredictionRequest 带隙预测请求
type PredictionRequest struct {
	PerovskiteComposition PerovskiteComposition `json:"perovskite_composition"`
	InorganicComposition  bool                  `json:"inorganic_composition"`
	DimensionListOfLayers float64               `json:"dimension_list_of_layers"`
	Dimension             Dimension             `json:"dimension"`
	SpaceGroup            SpaceGroup            `json:"space_group"`
}
