package contract

import "math"

// Signed: 受支持的定宽有符号整数集合（含命名类型）。
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned: 受支持的定宽无符号整数集合（含命名类型）。
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer: 全部受支持的整数表示。
// 约束：
// 1) 任意宽度的值经 Magnitude 无损落入 uint64 幅值域；
// 2) 符号与幅值分离后，各格式器只面对（Sign, uint64）一种形状；
// 3) 纯值语义，按值传入，调用方不让渡所有权。
type Integer interface {
	Signed | Unsigned
}

// Sign: 二值符号分类。零视为非负——零永不产生负号字形。
type Sign int

const (
	// Negative: 严格小于零。
	Negative Sign = iota
	// PositiveOrZero: 非负（含零）。
	PositiveOrZero
)

// Mul: 符号乘积。用于分数的 分子×分母 合成符号；
// 分母为零按退化乘法处理（零视为非负），不触发除法语义。
func (s Sign) Mul(o Sign) Sign {
	if s == o {
		return PositiveOrZero
	}
	return Negative
}

// SignOf 返回值的符号分类。
func SignOf[T Integer](v T) Sign {
	if v < 0 {
		return Negative
	}
	return PositiveOrZero
}

// Magnitude 返回值的绝对幅值（uint64 域）。
// 最小有符号值按补码幅值定义（|MinInt64| = 1<<63），无未定义分支。
func Magnitude[T Integer](v T) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

// AsUint8: 值能否无损放入 8 位无符号域。
// 仅用于单字形分数资格判定：任一操作数 ≥256 或为负即不合格。
func AsUint8[T Integer](v T) (uint8, bool) {
	if v < 0 || uint64(v) > math.MaxUint8 {
		return 0, false
	}
	return uint8(v), true
}
