// Package fraction 实现俗分数格式：
// 优先使用 Unicode 预组合单字形（如 ¼），否则组合为 上标⁄下标。
package fraction

import (
	"fmt"
	"unicode/utf8"

	"glyphnum/pkg/contract"
	"glyphnum/plugins/script"
)

// fractionSlash: 分数线 U+2044。
const fractionSlash = '⁄'

// Vulgar: 按给定分子/分母呈现的分数。不做约分、不做校验，
// 分母为零按退化乘法参与符号合成（见 contract.Sign.Mul）。
//
// 动词：%v/%d；旗标：
//   - '#' 禁用单字形查表，恒用组合形式；
//   - '+' 非负合成符号外提为 '+'；'-' 负合成符号外提为 '-'；
//     未外提时操作数原样进入上/下标（各自携带负号）。
type Vulgar[T contract.Integer] struct {
	// Num: 分数线上方的数。
	Num T
	// Den: 分数线下方的数。
	Den T
}

// New 由分子与分母构造分数。
func New[T contract.Integer](num, den T) Vulgar[T] { return Vulgar[T]{Num: num, Den: den} }

// From 将整数视为 v/1 的分数。
func From[T contract.Integer](v T) Vulgar[T] { return Vulgar[T]{Num: v, Den: 1} }

// Append 将分数按旗标追加到 dst。
func Append[T contract.Integer](dst []byte, num, den T, fl contract.Flags) []byte {
	sign := contract.SignOf(num).Mul(contract.SignOf(den))

	// 符号外提：仅在对应旗标请求时发生，之后操作数降为幅值。
	extracted := false
	switch {
	case sign == contract.PositiveOrZero && fl.SignPlus:
		dst = append(dst, '+')
		extracted = true
	case sign == contract.Negative && fl.SignMinus:
		dst = append(dst, '-')
		extracted = true
	}

	if extracted {
		nm, dm := contract.Magnitude(num), contract.Magnitude(den)
		if !fl.Alternate {
			if r, ok := singleGlyph64(nm, dm); ok {
				return utf8.AppendRune(dst, r)
			}
		}
		return appendComposite(dst, contract.PositiveOrZero, nm, contract.PositiveOrZero, dm)
	}

	if !fl.Alternate {
		if n8, ok := contract.AsUint8(num); ok {
			if d8, ok := contract.AsUint8(den); ok {
				if r, ok := singleGlyph(n8, d8); ok {
					return utf8.AppendRune(dst, r)
				}
			}
		}
	}
	return appendComposite(dst,
		contract.SignOf(num), contract.Magnitude(num),
		contract.SignOf(den), contract.Magnitude(den))
}

// appendComposite: 上标(分子) ⁄ 下标(分母)。
// 内层恒用零值旗标：旗标不向内传播，负号来自操作数自身符号。
func appendComposite(dst []byte, ns contract.Sign, nm uint64, ds contract.Sign, dm uint64) []byte {
	dst = script.AppendSuperParts(dst, ns, nm, contract.Ten, contract.Flags{})
	dst = utf8.AppendRune(dst, fractionSlash)
	return script.AppendSubParts(dst, ds, dm, contract.Ten, contract.Flags{})
}

func (x Vulgar[T]) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 'd', 's':
		_, _ = st.Write(Append(nil, x.Num, x.Den, contract.StateFlags(st)))
	default:
		fmt.Fprintf(st, "%%!%c(fraction.Vulgar=%v/%v)", verb, x.Num, x.Den)
	}
}

func (x Vulgar[T]) String() string {
	return string(Append(nil, x.Num, x.Den, contract.Flags{}))
}

var (
	_ fmt.Formatter = Vulgar[int]{}
	_ fmt.Stringer  = Vulgar[int]{}
)
