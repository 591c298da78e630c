// Package script 实现上标与下标两种字形格式：
// 共用一套符号规则与位引擎，仅字形表不同。
package script

import (
	"fmt"
	"unicode/utf8"

	"glyphnum/internal/digits"
	"glyphnum/pkg/contract"
)

// glyphSet: 一套脚本字形（位字形 0..9 与正负号字形）。
type glyphSet struct {
	name   string
	digits [10]rune
	plus   rune
	minus  rune
}

var (
	superSet = glyphSet{
		name:   "script.Superscript",
		digits: [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'},
		plus:   '⁺',
		minus:  '⁻',
	}
	subSet = glyphSet{
		name:   "script.Subscript",
		digits: [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'},
		plus:   '₊',
		minus:  '₋',
	}
)

// appendParts: 核心编码路径。
// 约束：b ∈ {Two, Ten}（字形表仅覆盖 0..9；导出包装与注册表在构造期保证）。
func appendParts(dst []byte, set *glyphSet, s contract.Sign, mag uint64, b contract.Base, fl contract.Flags) []byte {
	if r, ok := digits.SignRune(s, set.plus, set.minus, fl); ok {
		dst = utf8.AppendRune(dst, r)
	}
	digits.Each(mag, b, func(d int) {
		dst = utf8.AppendRune(dst, set.digits[d])
	})
	return dst
}

// AppendSuper 将 v 以上标字形追加到 dst（b 限 Two/Ten）。
func AppendSuper[T contract.Integer](dst []byte, v T, b contract.Base, fl contract.Flags) []byte {
	return appendParts(dst, &superSet, contract.SignOf(v), contract.Magnitude(v), b, fl)
}

// AppendSub 将 v 以下标字形追加到 dst（b 限 Two/Ten）。
func AppendSub[T contract.Integer](dst []byte, v T, b contract.Base, fl contract.Flags) []byte {
	return appendParts(dst, &subSet, contract.SignOf(v), contract.Magnitude(v), b, fl)
}

// AppendSuperParts / AppendSubParts 以显式（符号, 幅值）渲染。
// 供分数在符号外提后复用：外提场景传 PositiveOrZero 与零值 Flags。
func AppendSuperParts(dst []byte, s contract.Sign, mag uint64, b contract.Base, fl contract.Flags) []byte {
	return appendParts(dst, &superSet, s, mag, b, fl)
}

func AppendSubParts(dst []byte, s contract.Sign, mag uint64, b contract.Base, fl contract.Flags) []byte {
	return appendParts(dst, &subSet, s, mag, b, fl)
}

// Superscript: 以上标字形呈现的整数。
// 动词：%v/%d 十进制，%b 二进制；旗标 '+' 对非负强制出正号；
// 负值恒带 ⁻（符号显示不可关，正号为可选项）。
type Superscript[T contract.Integer] struct{ V T }

// Super 构造上标包装。
func Super[T contract.Integer](v T) Superscript[T] { return Superscript[T]{V: v} }

func (x Superscript[T]) Format(st fmt.State, verb rune) {
	formatState(st, verb, &superSet, x.V)
}

func (x Superscript[T]) String() string {
	return string(AppendSuper(nil, x.V, contract.Ten, contract.Flags{}))
}

// Subscript: 以下标字形呈现的整数。动词与旗标同 Superscript。
type Subscript[T contract.Integer] struct{ V T }

// Sub 构造下标包装。
func Sub[T contract.Integer](v T) Subscript[T] { return Subscript[T]{V: v} }

func (x Subscript[T]) Format(st fmt.State, verb rune) {
	formatState(st, verb, &subSet, x.V)
}

func (x Subscript[T]) String() string {
	return string(AppendSub(nil, x.V, contract.Ten, contract.Flags{}))
}

// formatState: fmt.Formatter 桥接。未知动词输出 %! 诊断形式，不 panic。
func formatState[T contract.Integer](st fmt.State, verb rune, set *glyphSet, v T) {
	var b contract.Base
	switch verb {
	case 'v', 'd', 's':
		b = contract.Ten
	case 'b':
		b = contract.Two
	default:
		fmt.Fprintf(st, "%%!%c(%s=%v)", verb, set.name, v)
		return
	}
	_, _ = st.Write(appendParts(nil, set, contract.SignOf(v), contract.Magnitude(v), b, contract.StateFlags(st)))
}

var (
	_ fmt.Formatter = Superscript[int]{}
	_ fmt.Formatter = Subscript[int]{}
	_ fmt.Stringer  = Superscript[int]{}
	_ fmt.Stringer  = Subscript[int]{}
)
