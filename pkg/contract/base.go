package contract

import (
	"fmt"
	"strings"
)

// Base: 位置计数制描述符（运行期参数）。
// 数值即基数本身；位提取循环仅依赖 Ilog/Pow 两个操作。
type Base uint64

const (
	// Two: 二进制。
	Two Base = 2
	// Ten: 十进制。
	Ten Base = 10
	// Sixteen: 十六进制。
	Sixteen Base = 16
)

// Ilog 返回满足 base^e ≤ x 的最大指数 e；x 为零时定义为 0。
// 仅用于为位提取循环定界，避免计算无界幂级数。
func (b Base) Ilog(x uint64) uint {
	var e uint
	for x >= uint64(b) {
		x /= uint64(b)
		e++
	}
	return e
}

// Pow 返回 base^e。
// 调用方保证 e 不超过 Ilog 的返回值，故无溢出分支。
func (b Base) Pow(e uint) uint64 {
	p := uint64(1)
	for ; e > 0; e-- {
		p *= uint64(b)
	}
	return p
}

// ParseBase 将注册表选项中的基数名映射为 Base。
// 空串等价于 "decimal"（默认十进制）。
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "decimal":
		return Ten, nil
	case "binary":
		return Two, nil
	case "hex", "hexadecimal":
		return Sixteen, nil
	default:
		return 0, fmt.Errorf("base %q: %w", name, ErrInvalidInput)
	}
}
