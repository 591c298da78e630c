// Package segment 实现七段数码管字形格式（Legacy Computing 区块）。
package segment

import (
	"fmt"
	"unicode/utf8"

	"glyphnum/internal/digits"
	"glyphnum/pkg/contract"
)

// 七段数码 0..9：U+1FBF0..U+1FBF9。
// 该区块无 A–F 字形，故不提供十六进制（见 DESIGN.md）。
var segDigits = [10]rune{
	'\U0001FBF0', '\U0001FBF1', '\U0001FBF2', '\U0001FBF3', '\U0001FBF4',
	'\U0001FBF5', '\U0001FBF6', '\U0001FBF7', '\U0001FBF8', '\U0001FBF9',
}

// Segmented: 以七段数码呈现的无符号整数。
// 动词：%v/%d 十进制，%b 二进制；无符号支持，零输出单个零字形。
type Segmented[T contract.Unsigned] struct{ V T }

// Of 构造七段数码包装。
func Of[T contract.Unsigned](v T) Segmented[T] { return Segmented[T]{V: v} }

// Append 将 v 以七段数码追加到 dst（b 限 Two/Ten）。
func Append[T contract.Unsigned](dst []byte, v T, b contract.Base) []byte {
	digits.Each(uint64(v), b, func(d int) {
		dst = utf8.AppendRune(dst, segDigits[d])
	})
	return dst
}

func (x Segmented[T]) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 'd', 's':
		_, _ = st.Write(Append(nil, x.V, contract.Ten))
	case 'b':
		_, _ = st.Write(Append(nil, x.V, contract.Two))
	default:
		fmt.Fprintf(st, "%%!%c(segment.Segmented=%v)", verb, x.V)
	}
}

func (x Segmented[T]) String() string {
	return string(Append(nil, x.V, contract.Ten))
}

// Options 为注册表装配选项。base: ""|"decimal"|"binary"。
type Options struct {
	Base string `json:"base"`
}

// Formatter 实现 contract.Numeral。
type Formatter struct {
	base contract.Base
}

// NewFormatter 创建七段数码 Numeral。十六进制被拒绝。
func NewFormatter(opts *Options) (*Formatter, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	b, err := contract.ParseBase(o.Base)
	if err != nil {
		return nil, err
	}
	if b == contract.Sixteen {
		return nil, fmt.Errorf("segment: base %q: %w", o.Base, contract.ErrInvalidInput)
	}
	return &Formatter{base: b}, nil
}

// AppendInt: 仅限无符号域；负值返回 ErrInvalidInput。
func (f *Formatter) AppendInt(dst []byte, v int64) ([]byte, error) {
	if v < 0 {
		return dst, fmt.Errorf("segment: negative value %d: %w", v, contract.ErrInvalidInput)
	}
	return f.AppendUint(dst, uint64(v))
}

func (f *Formatter) AppendUint(dst []byte, v uint64) ([]byte, error) {
	return Append(dst, v, f.base), nil
}

// 静态接口断言
var (
	_ contract.Numeral = (*Formatter)(nil)
	_ fmt.Formatter    = Segmented[uint]{}
	_ fmt.Stringer     = Segmented[uint]{}
)
