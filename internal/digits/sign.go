package digits

import "glyphnum/pkg/contract"

// SignRune 决定幅值之前的符号字形：
// 负值恒出负号；非负仅在 SignPlus 置位时出正号；其余不出。
// 返回 (字形, 是否输出)。
func SignRune(s contract.Sign, plus, minus rune, fl contract.Flags) (rune, bool) {
	switch {
	case s == contract.Negative:
		return minus, true
	case fl.SignPlus:
		return plus, true
	default:
		return 0, false
	}
}
