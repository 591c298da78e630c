package script

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"glyphnum/pkg/contract"
)

// TestSuperscriptDecimal 验证十进制上标（含符号规则与零）。
func TestSuperscriptDecimal(t *testing.T) {
	cases := []struct {
		want string
		in   int64
	}{
		{"⁰", 0},
		{"¹", 1},
		{"²", 2},
		{"³", 3},
		{"⁴", 4},
		{"⁵", 5},
		{"⁶", 6},
		{"⁷", 7},
		{"⁸", 8},
		{"⁹", 9},
		{"¹⁰", 10},
		{"¹²³", 123},
		{"⁻¹²³", -123},
		{"¹²³⁴⁵⁶⁷⁸⁹⁰", 1234567890},
		{"⁻¹²³⁴⁵⁶⁷⁸⁹⁰", -1234567890},
	}
	for _, c := range cases {
		if got := Super(c.in).String(); got != c.want {
			t.Fatalf("Super(%d) = %q, want %q", c.in, got, c.want)
		}
		if got := fmt.Sprintf("%d", Super(c.in)); got != c.want {
			t.Fatalf("%%d Super(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestSuperscriptPlusFlag '+' 旗标对非负值出正号，负值不受影响。
func TestSuperscriptPlusFlag(t *testing.T) {
	if got := fmt.Sprintf("%+d", Super(123)); got != "⁺¹²³" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprintf("%+d", Super(0)); got != "⁺⁰" {
		t.Fatalf("零加号: got %q", got)
	}
	if got := fmt.Sprintf("%+d", Super(uint64(1234567890))); got != "⁺¹²³⁴⁵⁶⁷⁸⁹⁰" {
		t.Fatalf("无符号加号: got %q", got)
	}
	if got := fmt.Sprintf("%+d", Super(-1234567890)); got != "⁻¹²³⁴⁵⁶⁷⁸⁹⁰" {
		t.Fatalf("负值应保持负号: got %q", got)
	}
}

// TestSuperscriptBinary 验证 %b 二进制路径。
func TestSuperscriptBinary(t *testing.T) {
	if got := fmt.Sprintf("%b", Super(0b101010)); got != "¹⁰¹⁰¹⁰" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprintf("%+b", Super(0b101010)); got != "⁺¹⁰¹⁰¹⁰" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprintf("%b", Super(-0b101010)); got != "⁻¹⁰¹⁰¹⁰" {
		t.Fatalf("got %q", got)
	}
}

// TestSubscriptDecimal 验证十进制下标。
func TestSubscriptDecimal(t *testing.T) {
	cases := []struct {
		want string
		in   int64
	}{
		{"₀", 0},
		{"₁₂₃", 123},
		{"₋₁₂₃", -123},
		{"₁₂₃₄₅₆₇₈₉₀", 1234567890},
		{"₋₁₂₃₄₅₆₇₈₉₀", -1234567890},
	}
	for _, c := range cases {
		if got := Sub(c.in).String(); got != c.want {
			t.Fatalf("Sub(%d) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := fmt.Sprintf("%+d", Sub(1234567890)); got != "₊₁₂₃₄₅₆₇₈₉₀" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprintf("%b", Sub(-0b101010)); got != "₋₁₀₁₀₁₀" {
		t.Fatalf("got %q", got)
	}
}

// TestSuperSubParity 同一值的上/下标位序列长度与位值一致，仅字形表不同。
func TestSuperSubParity(t *testing.T) {
	for _, v := range []int64{0, 7, 42, -628, 1234567890, math.MinInt64, math.MaxInt64} {
		sup := []rune(Super(v).String())
		sub := []rune(Sub(v).String())
		if len(sup) != len(sub) {
			t.Fatalf("v=%d: 长度 %d vs %d", v, len(sup), len(sub))
		}
		for i := range sup {
			di := indexOf(superSet.digits[:], sup[i])
			dj := indexOf(subSet.digits[:], sub[i])
			if di != dj {
				t.Fatalf("v=%d 第 %d 位: %d vs %d", v, i, di, dj)
			}
		}
	}
}

func indexOf(rs []rune, r rune) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return -1 // 符号字形
}

// TestMinInt64 最小有符号值按补码幅值渲染，无未定义分支。
func TestMinInt64(t *testing.T) {
	if got := Super(int64(math.MinInt64)).String(); got != "⁻⁹²²³³⁷²⁰³⁶⁸⁵⁴⁷⁷⁵⁸⁰⁸" {
		t.Fatalf("got %q", got)
	}
}

// TestPurity 同输入同旗标两次调用字节级一致。
func TestPurity(t *testing.T) {
	a := fmt.Sprintf("%+d", Super(-123))
	b := fmt.Sprintf("%+d", Super(-123))
	if a != b {
		t.Fatalf("%q != %q", a, b)
	}
}

// TestUnknownVerb 未知动词输出诊断形式而非 panic。
func TestUnknownVerb(t *testing.T) {
	got := fmt.Sprintf("%q", Super(7))
	if got != "%!q(script.Superscript=7)" {
		t.Fatalf("got %q", got)
	}
}

// TestFormatterOptions 覆盖注册表适配器的构造与追加路径。
func TestFormatterOptions(t *testing.T) {
	f, err := NewSuper(&Options{Base: "binary", SignPlus: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b, err := f.AppendInt(nil, 5)
	if err != nil || string(b) != "⁺¹⁰¹" {
		t.Fatalf("got %q, %v", b, err)
	}
	b, err = f.AppendUint(nil, 5)
	if err != nil || string(b) != "⁺¹⁰¹" {
		t.Fatalf("uint got %q, %v", b, err)
	}

	g, err := NewSub(nil)
	if err != nil {
		t.Fatalf("nil opts: %v", err)
	}
	b, err = g.AppendInt(nil, -42)
	if err != nil || string(b) != "₋₄₂" {
		t.Fatalf("got %q, %v", b, err)
	}

	if _, err := NewSuper(&Options{Base: "hex"}); !errors.Is(err, contract.ErrInvalidInput) {
		t.Fatalf("hex 应被拒绝, got %v", err)
	}
}

// BenchmarkAppendSuper 基准：零分配追加路径。
func BenchmarkAppendSuper(b *testing.B) {
	buf := make([]byte, 0, 64)
	for i := 0; i < b.N; i++ {
		buf = AppendSuper(buf[:0], int64(-1234567890), contract.Ten, contract.Flags{})
	}
	_ = buf
}
