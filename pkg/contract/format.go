package contract

// Numeral: 注册表装配出的整数格式器统一入口。
// 64 位入口足以覆盖全部受支持宽度；追加式写入以保持零分配路径。
// 约束：
// 1) 纯计算，无 I/O、无共享可变状态，调用幂等；
// 2) 仅限无符号的格式对负的 AppendInt 输入返回 ErrInvalidInput；
// 3) 罗马数字按值返回 ErrOutOfRange；其余追加操作为全函数。
type Numeral interface {
	AppendInt(dst []byte, v int64) ([]byte, error)
	AppendUint(dst []byte, v uint64) ([]byte, error)
}

// FractionFormatter: 分数格式器入口（分子/分母按给定值呈现，不做约分与校验）。
type FractionFormatter interface {
	AppendFraction(dst []byte, num, den int64) ([]byte, error)
}

// Checkbox: 布尔选票框格式器入口。不会失败。
type Checkbox interface {
	AppendBool(dst []byte, v bool) []byte
}
