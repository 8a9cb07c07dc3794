// Package form 维护钙钛矿组成表单：各位点容器中用户可编辑的元素行，
// 以及在提交时将表单快照组装为预测请求
package form

import (
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/narasux/perovskite/pkg/model"
)

// ASiteContainerID A 位元素行所在的容器
const ASiteContainerID = "a-site-list"

// 新增行的默认占比
const defaultFractionText = "1.0"

// Form 组成表单，可被多个请求并发访问
type Form struct {
	mu         sync.RWMutex
	initOnce   sync.Once
	containers map[string]*container
	rowSeq     int
}

type container struct {
	id   string
	site model.Site
	rows []*Row
}

// RowState 行在某一时刻的快照
type RowState struct {
	ID       string
	Name     model.Element
	Fraction string
}

// New 创建表单，当前只开放 A 位容器
func New() *Form {
	return &Form{
		containers: map[string]*container{
			ASiteContainerID: {id: ASiteContainerID, site: model.SiteA},
		},
	}
}

// Init 表单激活时自动添加一行默认 A 位元素，重复调用无效果
func (f *Form) Init() {
	f.initOnce.Do(func() {
		_, _ = f.AddEntry(ASiteContainerID)
	})
}

// AddEntry 在容器末尾追加一行默认值（位点第一个可选元素，占比 1.0）
func (f *Form) AddEntry(containerID string) (*Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.containers[containerID]
	if !ok {
		return nil, errors.Wrapf(ErrContainerNotFound, "add entry to %s", containerID)
	}

	f.rowSeq++
	row := &Row{
		form:     f,
		id:       strconv.Itoa(f.rowSeq),
		site:     c.site,
		name:     model.DefaultElement(c.site),
		fraction: defaultFractionText,
	}
	// 移除动作在创建时绑定，直接持有行自身的引用
	row.remove = func() { f.detach(c, row) }
	c.rows = append(c.rows, row)
	return row, nil
}

// RemoveEntry 按 ID 移除容器中的行
func (f *Form) RemoveEntry(containerID, rowID string) error {
	row, err := f.Row(containerID, rowID)
	if err != nil {
		return err
	}
	row.Remove()
	return nil
}

// Row 按 ID 查找容器中的行
func (f *Form) Row(containerID, rowID string) (*Row, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	c, ok := f.containers[containerID]
	if !ok {
		return nil, errors.Wrapf(ErrContainerNotFound, "lookup %s", containerID)
	}
	row, ok := lo.Find(c.rows, func(r *Row) bool { return r.id == rowID })
	if !ok {
		return nil, errors.Wrapf(ErrRowNotFound, "lookup row %s in %s", rowID, containerID)
	}
	return row, nil
}

// Rows 获取容器中各行的快照，顺序与展示顺序一致
func (f *Form) Rows(containerID string) ([]RowState, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	c, ok := f.containers[containerID]
	if !ok {
		return nil, errors.Wrapf(ErrContainerNotFound, "read %s", containerID)
	}
	return lo.Map(c.rows, func(r *Row, _ int) RowState {
		return RowState{ID: r.id, Name: r.name, Fraction: r.fraction}
	}), nil
}

func (f *Form) detach(c *container, row *Row) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c.rows = lo.Filter(c.rows, func(r *Row, _ int) bool { return r != row })
}
