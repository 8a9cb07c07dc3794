package loader

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/narasux/perovskite/pkg/form"
	"github.com/narasux/perovskite/pkg/model"
)

// ErrInvalidEntrySpec 命令行中的元素参数格式错误
var ErrInvalidEntrySpec = errors.New("entry must be NAME=FRACTION")

// EntrySpec 一行 A 位元素，占比保留原始文本，交由表单在提交时解析
type EntrySpec struct {
	Name     string `yaml:"name"`
	Fraction string `yaml:"fraction"`
}

// CompositionFile 组成文件（yaml）
type CompositionFile struct {
	ASite []EntrySpec `yaml:"a_site"`
}

// CompositionLoader 从组成文件与命令行参数加载表单
type CompositionLoader struct {
	path    string
	specs   []string
	entries []EntrySpec
	form    *form.Form
}

// New 文件路径为空则跳过文件；文件与参数都未提供时使用默认的一行
func New(path string, specs []string) *CompositionLoader {
	return &CompositionLoader{path: path, specs: specs}
}

func (l *CompositionLoader) Exec() (*form.Form, error) {
	for _, f := range []func() error{
		l.loadFile,
		l.loadSpecs,
		l.fillForm,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	return l.form, nil
}

// 加载组成文件
func (l *CompositionLoader) loadFile() error {
	if l.path == "" {
		return nil
	}
	content, err := os.ReadFile(l.path)
	if err != nil {
		return errors.Wrapf(err, "read composition file %s", l.path)
	}

	var file CompositionFile
	if err = yaml.Unmarshal(content, &file); err != nil {
		return errors.Wrapf(err, "parse composition file %s", l.path)
	}
	l.entries = append(l.entries, file.ASite...)
	return nil
}

// 加载命令行参数，追加在文件内容之后
func (l *CompositionLoader) loadSpecs() error {
	for _, spec := range l.specs {
		entry, err := ParseEntrySpec(spec)
		if err != nil {
			return err
		}
		l.entries = append(l.entries, entry)
	}
	return nil
}

// 按顺序逐行填入表单
func (l *CompositionLoader) fillForm() error {
	l.form = form.New()
	if len(l.entries) == 0 {
		l.form.Init()
		return nil
	}
	for _, entry := range l.entries {
		row, err := l.form.AddEntry(form.ASiteContainerID)
		if err != nil {
			return err
		}
		if err = row.SetName(model.Element(entry.Name)); err != nil {
			return err
		}
		row.SetFraction(entry.Fraction)
	}
	return nil
}

// ParseEntrySpec 解析 NAME=FRACTION
func ParseEntrySpec(spec string) (EntrySpec, error) {
	name, fraction, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return EntrySpec{}, errors.Wrapf(ErrInvalidEntrySpec, "got %q", spec)
	}
	return EntrySpec{Name: name, Fraction: strings.TrimSpace(fraction)}, nil
}
