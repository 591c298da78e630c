// Package tally 实现计数符号格式：按五分组。
package tally

import (
	"fmt"
	"unicode/utf8"

	"glyphnum/pkg/contract"
)

const (
	// markOne: 单划 U+1D377。
	markOne = '\U0001D377'
	// markFive: 五划一组 U+1D378。
	markFive = '\U0001D378'
)

// Marks: 以计数符号呈现的无符号整数。
// 每满五输出一个五划组字形，余数逐一输出单划；零为空输出。
type Marks[T contract.Unsigned] struct{ V T }

// Of 构造计数符号包装。
func Of[T contract.Unsigned](v T) Marks[T] { return Marks[T]{V: v} }

// Append 将 v 的计数符号追加到 dst。
func Append[T contract.Unsigned](dst []byte, v T) []byte {
	fives, ones := uint64(v)/5, uint64(v)%5
	for ; fives > 0; fives-- {
		dst = utf8.AppendRune(dst, markFive)
	}
	for ; ones > 0; ones-- {
		dst = utf8.AppendRune(dst, markOne)
	}
	return dst
}

func (x Marks[T]) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 'd', 's':
		_, _ = st.Write(Append(nil, x.V))
	default:
		fmt.Fprintf(st, "%%!%c(tally.Marks=%v)", verb, x.V)
	}
}

func (x Marks[T]) String() string {
	return string(Append(nil, x.V))
}

// Options 为注册表装配选项。计数符号无可配置项，保留空结构以维持
// 注册表的严格解码契约（未知字段仍被拒绝）。
type Options struct{}

// Formatter 实现 contract.Numeral。
type Formatter struct{}

// NewFormatter 创建计数符号 Numeral。
func NewFormatter(*Options) (*Formatter, error) {
	return &Formatter{}, nil
}

// AppendInt: 仅限无符号域；负值返回 ErrInvalidInput。
func (f *Formatter) AppendInt(dst []byte, v int64) ([]byte, error) {
	if v < 0 {
		return dst, fmt.Errorf("tally: negative value %d: %w", v, contract.ErrInvalidInput)
	}
	return f.AppendUint(dst, uint64(v))
}

func (f *Formatter) AppendUint(dst []byte, v uint64) ([]byte, error) {
	return Append(dst, v), nil
}

// 静态接口断言
var (
	_ contract.Numeral = (*Formatter)(nil)
	_ fmt.Formatter    = Marks[uint]{}
	_ fmt.Stringer     = Marks[uint]{}
)
