package form

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/narasux/perovskite/pkg/logging"
	"github.com/narasux/perovskite/pkg/model"
)

// 占比之和的容差，与预测服务的校验保持一致
const fractionSumTolerance = 0.01

// 预测请求中的固定字段
const (
	fixedInorganicComposition  = false
	fixedDimensionListOfLayers = 3.0
	fixedDimension             = model.Dimension3D
	fixedSpaceGroup            = model.SpaceGroupCubic
)

// Builder 读取表单快照并组装预测请求，不修改表单
type Builder struct {
	form   *Form
	logger *logrus.Logger
}

// NewBuilder ...
func NewBuilder(f *Form) *Builder {
	return &Builder{form: f, logger: logging.GetPredictionLogger()}
}

// ReadSiteList 按展示顺序读取容器中的每一行
func (b *Builder) ReadSiteList(containerID string) (model.SiteList, error) {
	rows, err := b.form.Rows(containerID)
	if err != nil {
		return nil, err
	}

	siteList := make(model.SiteList, 0, len(rows))
	var invalid []*FractionError
	for _, row := range rows {
		fraction, err := ParseFraction(row.Fraction)
		if err != nil {
			invalid = append(invalid, &FractionError{RowID: row.ID, Text: row.Fraction, Err: err})
			continue
		}
		siteList = append(siteList, model.SiteEntry{Name: row.Name, Fraction: fraction})
	}
	if len(invalid) != 0 {
		return nil, &CompositionError{ContainerID: containerID, Fractions: invalid}
	}
	return siteList, nil
}

// Build 组装带隙预测请求，B / C 位及其余字段均为固定值
func (b *Builder) Build() (*model.PredictionRequest, error) {
	aSite, err := b.ReadSiteList(ASiteContainerID)
	if err != nil {
		return nil, errors.Wrap(err, "build prediction request")
	}
	b.warnIfUnnormalized(ASiteContainerID, aSite)

	return &model.PredictionRequest{
		PerovskiteComposition: model.PerovskiteComposition{
			ASite: aSite,
			BSite: model.SiteList{{Name: model.ElementPb, Fraction: 1.0}},
			CSite: model.SiteList{{Name: model.ElementI, Fraction: 1.0}},
		},
		InorganicComposition:  fixedInorganicComposition,
		DimensionListOfLayers: fixedDimensionListOfLayers,
		Dimension:             fixedDimension,
		SpaceGroup:            fixedSpaceGroup,
	}, nil
}

// 占比之和约定为 1.0，这里只记录日志，不做校验或归一化
func (b *Builder) warnIfUnnormalized(containerID string, siteList model.SiteList) {
	if len(siteList) == 0 {
		return
	}
	total := siteList.TotalFraction()
	if math.Abs(total-1.0) > fractionSumTolerance {
		b.logger.WithFields(logrus.Fields{
			"container": containerID,
			"total":     total,
		}).Warn("site fractions do not sum to 1.0")
	}
}
