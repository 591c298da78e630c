// Package ballot 实现选票框格式：布尔值到勾选/空框/叉选字形。
package ballot

import (
	"fmt"
	"unicode/utf8"

	"glyphnum/pkg/contract"
)

const (
	unchecked = '☐'
	checked   = '☑'
	crossed   = '☒'
)

// Box: 以选票框呈现的布尔值。
// false 恒为空框；true 默认勾选，'#' 旗标（或 crossed 选项）改为叉选。
type Box bool

// Append 将 v 的选票框字形追加到 dst。
func Append(dst []byte, v bool, fl contract.Flags) []byte {
	switch {
	case v && fl.Alternate:
		return utf8.AppendRune(dst, crossed)
	case v:
		return utf8.AppendRune(dst, checked)
	default:
		return utf8.AppendRune(dst, unchecked)
	}
}

func (x Box) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 'd', 's', 't':
		_, _ = st.Write(Append(nil, bool(x), contract.StateFlags(st)))
	default:
		fmt.Fprintf(st, "%%!%c(ballot.Box=%t)", verb, bool(x))
	}
}

func (x Box) String() string {
	return string(Append(nil, bool(x), contract.Flags{}))
}

// Options 为注册表装配选项。
// - crossed: true 时勾选改为叉选（等价于 '#' 旗标）。
type Options struct {
	Crossed bool `json:"crossed"`
}

// Formatter 实现 contract.Checkbox。
type Formatter struct {
	fl contract.Flags
}

// NewFormatter 创建选票框格式器。
func NewFormatter(opts *Options) (*Formatter, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	return &Formatter{fl: contract.Flags{Alternate: o.Crossed}}, nil
}

func (f *Formatter) AppendBool(dst []byte, v bool) []byte {
	return Append(dst, v, f.fl)
}

// 静态接口断言
var (
	_ contract.Checkbox = (*Formatter)(nil)
	_ fmt.Formatter     = Box(false)
	_ fmt.Stringer      = Box(false)
)
