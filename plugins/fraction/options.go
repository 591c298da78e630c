package fraction

import "glyphnum/pkg/contract"

// Options 为注册表装配选项。
// - verbose: 禁用单字形查表（等价于 '#' 旗标）。
// - sign_plus / sign_minus: 合成符号外提（见 Vulgar 文档）。
type Options struct {
	Verbose   bool `json:"verbose"`
	SignPlus  bool `json:"sign_plus"`
	SignMinus bool `json:"sign_minus"`
}

// Formatter 实现 contract.FractionFormatter。
type Formatter struct {
	fl contract.Flags
}

// NewFormatter 创建分数格式器。
func NewFormatter(opts *Options) (*Formatter, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	return &Formatter{fl: contract.Flags{
		SignPlus:  o.SignPlus,
		SignMinus: o.SignMinus,
		Alternate: o.Verbose,
	}}, nil
}

func (f *Formatter) AppendFraction(dst []byte, num, den int64) ([]byte, error) {
	return Append(dst, num, den, f.fl), nil
}

// 静态接口断言
var _ contract.FractionFormatter = (*Formatter)(nil)
