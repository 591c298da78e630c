// Package outlined 实现轮廓数码字形格式（Legacy Computing Supplement 区块），
// 较七段数码多出 A–F 字形，故额外支持十六进制。
package outlined

import (
	"fmt"
	"unicode/utf8"

	"glyphnum/internal/digits"
	"glyphnum/pkg/contract"
)

// 轮廓数码 0..9（U+1CCF0..U+1CCF9）与轮廓大写 A–F（U+1CCD6..U+1CCDB）。
var outDigits = [16]rune{
	'\U0001CCF0', '\U0001CCF1', '\U0001CCF2', '\U0001CCF3', '\U0001CCF4',
	'\U0001CCF5', '\U0001CCF6', '\U0001CCF7', '\U0001CCF8', '\U0001CCF9',
	'\U0001CCD6', '\U0001CCD7', '\U0001CCD8', '\U0001CCD9', '\U0001CCDA',
	'\U0001CCDB',
}

// Outlined: 以轮廓数码呈现的无符号整数。
// 动词：%v/%d 十进制，%b 二进制，%X/%x 十六进制。
type Outlined[T contract.Unsigned] struct{ V T }

// Of 构造轮廓数码包装。
func Of[T contract.Unsigned](v T) Outlined[T] { return Outlined[T]{V: v} }

// Append 将 v 以轮廓数码追加到 dst（b 为 Two/Ten/Sixteen 之一）。
func Append[T contract.Unsigned](dst []byte, v T, b contract.Base) []byte {
	digits.Each(uint64(v), b, func(d int) {
		dst = utf8.AppendRune(dst, outDigits[d])
	})
	return dst
}

func (x Outlined[T]) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 'd', 's':
		_, _ = st.Write(Append(nil, x.V, contract.Ten))
	case 'b':
		_, _ = st.Write(Append(nil, x.V, contract.Two))
	case 'X', 'x':
		_, _ = st.Write(Append(nil, x.V, contract.Sixteen))
	default:
		fmt.Fprintf(st, "%%!%c(outlined.Outlined=%v)", verb, x.V)
	}
}

func (x Outlined[T]) String() string {
	return string(Append(nil, x.V, contract.Ten))
}

// Options 为注册表装配选项。base: ""|"decimal"|"binary"|"hex"。
type Options struct {
	Base string `json:"base"`
}

// Formatter 实现 contract.Numeral。
type Formatter struct {
	base contract.Base
}

// NewFormatter 创建轮廓数码 Numeral。
func NewFormatter(opts *Options) (*Formatter, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	b, err := contract.ParseBase(o.Base)
	if err != nil {
		return nil, err
	}
	return &Formatter{base: b}, nil
}

// AppendInt: 仅限无符号域；负值返回 ErrInvalidInput。
func (f *Formatter) AppendInt(dst []byte, v int64) ([]byte, error) {
	if v < 0 {
		return dst, fmt.Errorf("outlined: negative value %d: %w", v, contract.ErrInvalidInput)
	}
	return f.AppendUint(dst, uint64(v))
}

func (f *Formatter) AppendUint(dst []byte, v uint64) ([]byte, error) {
	return Append(dst, v, f.base), nil
}

// 静态接口断言
var (
	_ contract.Numeral = (*Formatter)(nil)
	_ fmt.Formatter    = Outlined[uint]{}
	_ fmt.Stringer     = Outlined[uint]{}
)
