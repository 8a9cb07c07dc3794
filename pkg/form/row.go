package form

import (
	"github.com/pkg/errors"

	"github.com/narasux/perovskite/pkg/model"
)

// Row 表单中的一行：元素下拉框 + 占比输入框 + 移除按钮
type Row struct {
	form     *Form
	id       string
	site     model.Site
	name     model.Element
	fraction string
	remove   func()
}

// ID ...
func (r *Row) ID() string {
	return r.id
}

// Name 当前选中的元素
func (r *Row) Name() model.Element {
	r.form.mu.RLock()
	defer r.form.mu.RUnlock()
	return r.name
}

// FractionText 占比输入框中的原始文本
func (r *Row) FractionText() string {
	r.form.mu.RLock()
	defer r.form.mu.RUnlock()
	return r.fraction
}

// SetName 切换选中的元素
func (r *Row) SetName(name model.Element) error {
	if !name.Valid(r.site) {
		return errors.Wrapf(ErrElementNotAllowed, "%s on site %s", name, r.site)
	}
	r.form.mu.Lock()
	defer r.form.mu.Unlock()
	r.name = name
	return nil
}

// SetFraction 修改占比输入框文本，原样保存，提交时再解析
func (r *Row) SetFraction(text string) {
	r.form.mu.Lock()
	defer r.form.mu.Unlock()
	r.fraction = text
}

// Remove 从所在容器中移除该行，重复移除无效果
func (r *Row) Remove() {
	r.remove()
}
