package contract

import "fmt"

// Flags: 格式化旗标的最小集合。
// 各格式的解释：
//   - SignPlus: 上/下标对正值（含零）强制输出加号；分数将合成符号外提；
//   - SignMinus: 仅分数使用——负的合成符号外提到分数体之外；
//   - Alternate: 分数禁用单字形查表；罗马数字转小写；选票框改用叉选字形。
type Flags struct {
	SignPlus  bool `json:"sign_plus"`
	SignMinus bool `json:"sign_minus"`
	Alternate bool `json:"alternate"`
}

// StateFlags 将 fmt 动词旗标（'+' '-' '#'）桥接为 Flags。
func StateFlags(st fmt.State) Flags {
	return Flags{
		SignPlus:  st.Flag('+'),
		SignMinus: st.Flag('-'),
		Alternate: st.Flag('#'),
	}
}
