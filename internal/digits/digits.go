// Package digits 实现共享的位分解引擎：
// 将 uint64 幅值在给定基数下分解为最高位优先的位序列。
// 所有字形格式器都经由本引擎驱动各自的查表。
package digits

import "glyphnum/pkg/contract"

// Each 自最高位起依次回调 m 在 b 下的每一位（0..b）。
// 约定：
// 1) 非零值不产生前导零位（起始幂取自 Ilog，结构上不可能）；
// 2) 零值产生恰好一个 0 位——各格式统一遵循，不得按格式特判；
// 3) 每次调用重新计算，无缓存，可重入。
func Each(m uint64, b contract.Base, fn func(d int)) {
	power := b.Pow(b.Ilog(m))
	for power > 0 {
		fn(int(m / power))
		m %= power
		power /= uint64(b)
	}
}

// Count 返回 m 在 b 下的位数：非零为 ⌊log_b(m)⌋+1，零为 1。
func Count(m uint64, b contract.Base) int {
	return int(b.Ilog(m)) + 1
}
