// Package roman 实现罗马数字格式：贪心减法替换。
// 默认使用 Number Forms 区块的专用罗马数字符号，可切换 ASCII 字母；
// '#' 旗标切换小写。
package roman

import (
	"fmt"

	"glyphnum/pkg/contract"
)

// pair: 一项替换表条目的四种符号写法与其数值。
type pair struct {
	upper      string
	lower      string
	upperASCII string
	lowerASCII string
	value      uint64
}

// 有序替换表：贪心减法自 1000 递减匹配。
var pairs = [...]pair{
	{"Ⅿ", "ⅿ", "M", "m", 1000},
	{"ⅭⅯ", "ⅽⅿ", "CM", "cm", 900},
	{"Ⅾ", "ⅾ", "D", "d", 500},
	{"ⅭⅮ", "ⅽⅾ", "CD", "cd", 400},
	{"Ⅽ", "ⅽ", "C", "c", 100},
	{"ⅩⅭ", "ⅹⅽ", "XC", "xc", 90},
	{"Ⅼ", "ⅼ", "L", "l", 50},
	{"ⅩⅬ", "ⅹⅼ", "XL", "xl", 40},
	{"Ⅹ", "ⅹ", "X", "x", 10},
	{"ⅠⅩ", "ⅰⅹ", "IX", "ix", 9},
	{"Ⅴ", "ⅴ", "V", "v", 5},
	{"ⅠⅤ", "ⅰⅴ", "IV", "iv", 4},
	{"Ⅰ", "ⅰ", "I", "i", 1},
}

func (p *pair) symbol(ascii, lowercase bool) string {
	switch {
	case ascii && lowercase:
		return p.lowerASCII
	case ascii:
		return p.upperASCII
	case lowercase:
		return p.lower
	default:
		return p.upper
	}
}

// romanMax: 全域上限。
const romanMax = 3999

// Max 返回宽度 T 下可构造的最大值：min(3999, T 的类型上限)。
// 8 位宽度因此退化为 255。
func Max[T contract.Unsigned]() uint64 {
	m := uint64(^T(0))
	if m > romanMax {
		m = romanMax
	}
	return m
}

// Numeral: 已通过范围校验的罗马数字值。
// 仅能经 New 构造；格式化阶段不再失败。
type Numeral[T contract.Unsigned] struct {
	v     T
	ascii bool
}

// New 构造罗马数字。值为零或超出 Max[T]() 时返回 ErrOutOfRange。
func New[T contract.Unsigned](v T) (Numeral[T], error) {
	if uint64(v) == 0 || uint64(v) > Max[T]() {
		return Numeral[T]{}, fmt.Errorf("roman: value %d: %w", uint64(v), contract.ErrOutOfRange)
	}
	return Numeral[T]{v: v}, nil
}

// ASCII 切换为 ASCII 字母符号（M C D …），替代专用 Unicode 符号。
func (n Numeral[T]) ASCII() Numeral[T] {
	n.ascii = true
	return n
}

// Append 将已校验的数值按贪心减法追加到 dst。
// 约束：m ∈ [1, 3999]（构造期保证，循环结束余数必为零）。
func Append(dst []byte, m uint64, ascii, lowercase bool) []byte {
	for i := range pairs {
		sym := pairs[i].symbol(ascii, lowercase)
		for m >= pairs[i].value {
			m -= pairs[i].value
			dst = append(dst, sym...)
		}
	}
	return dst
}

func (n Numeral[T]) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 'd', 's':
		_, _ = st.Write(Append(nil, uint64(n.v), n.ascii, st.Flag('#')))
	default:
		fmt.Fprintf(st, "%%!%c(roman.Numeral=%d)", verb, uint64(n.v))
	}
}

func (n Numeral[T]) String() string {
	return string(Append(nil, uint64(n.v), n.ascii, false))
}

// Options 为注册表装配选项。
// - lowercase: 小写符号（等价于 '#' 旗标）。
// - ascii: ASCII 字母符号替代专用 Unicode 符号。
type Options struct {
	Lowercase bool `json:"lowercase"`
	ASCII     bool `json:"ascii"`
}

// Formatter 实现 contract.Numeral；范围校验逐值进行。
type Formatter struct {
	lowercase bool
	ascii     bool
}

// NewFormatter 创建罗马数字 Numeral。
func NewFormatter(opts *Options) (*Formatter, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	return &Formatter{lowercase: o.Lowercase, ascii: o.ASCII}, nil
}

func (f *Formatter) AppendInt(dst []byte, v int64) ([]byte, error) {
	if v < 1 {
		return dst, fmt.Errorf("roman: value %d: %w", v, contract.ErrOutOfRange)
	}
	return f.AppendUint(dst, uint64(v))
}

func (f *Formatter) AppendUint(dst []byte, v uint64) ([]byte, error) {
	if v == 0 || v > romanMax {
		return dst, fmt.Errorf("roman: value %d: %w", v, contract.ErrOutOfRange)
	}
	return Append(dst, v, f.ascii, f.lowercase), nil
}

// 静态接口断言
var (
	_ contract.Numeral = (*Formatter)(nil)
	_ fmt.Formatter    = Numeral[uint16]{}
	_ fmt.Stringer     = Numeral[uint16]{}
)
