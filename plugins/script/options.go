package script

import (
	"fmt"

	"glyphnum/pkg/contract"
)

// Options 为注册表装配选项。
// - base: ""|"decimal"|"binary"（上/下标仅覆盖 0..9 字形，不支持 hex）。
// - sign_plus: 对非负值强制输出正号。
type Options struct {
	Base     string `json:"base"`
	SignPlus bool   `json:"sign_plus"`
}

// Formatter 实现 contract.Numeral，按构造期固化的字形表/基数/旗标渲染。
type Formatter struct {
	set  *glyphSet
	base contract.Base
	fl   contract.Flags
}

// NewSuper 创建上标 Numeral。
func NewSuper(opts *Options) (*Formatter, error) { return newFormatter(&superSet, opts) }

// NewSub 创建下标 Numeral。
func NewSub(opts *Options) (*Formatter, error) { return newFormatter(&subSet, opts) }

func newFormatter(set *glyphSet, opts *Options) (*Formatter, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	b, err := contract.ParseBase(o.Base)
	if err != nil {
		return nil, err
	}
	if b == contract.Sixteen {
		return nil, fmt.Errorf("script: base %q: %w", o.Base, contract.ErrInvalidInput)
	}
	return &Formatter{set: set, base: b, fl: contract.Flags{SignPlus: o.SignPlus}}, nil
}

func (f *Formatter) AppendInt(dst []byte, v int64) ([]byte, error) {
	return appendParts(dst, f.set, contract.SignOf(v), contract.Magnitude(v), f.base, f.fl), nil
}

func (f *Formatter) AppendUint(dst []byte, v uint64) ([]byte, error) {
	return appendParts(dst, f.set, contract.PositiveOrZero, v, f.base, f.fl), nil
}

// 静态接口断言
var _ contract.Numeral = (*Formatter)(nil)
