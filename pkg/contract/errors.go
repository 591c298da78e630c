package contract

import "errors"

// 构造与输入相关的最小错误分类。
var (
	// ErrOutOfRange: 罗马数字构造越界（0 或超出可表示上限）。
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidInput: 无效输入（负值交给仅限无符号的格式、未知基数名等）。
	ErrInvalidInput = errors.New("invalid input")
)
