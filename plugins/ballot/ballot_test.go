package ballot

import (
	"fmt"
	"testing"
)

// TestBox 默认字形：true 勾选、false 空框。
func TestBox(t *testing.T) {
	if got := Box(true).String(); got != "☑" {
		t.Fatalf("got %q", got)
	}
	if got := Box(false).String(); got != "☐" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprintf("%v Buy bread", Box(true)); got != "☑ Buy bread" {
		t.Fatalf("got %q", got)
	}
}

// TestBoxAlternate '#' 仅影响 true：叉选；false 不受旗标影响。
func TestBoxAlternate(t *testing.T) {
	if got := fmt.Sprintf("%#v", Box(true)); got != "☒" {
		t.Fatalf("got %q", got)
	}
	if got := fmt.Sprintf("%#v", Box(false)); got != "☐" {
		t.Fatalf("got %q", got)
	}
}

// TestFormatterOptions crossed 选项等价于 '#' 旗标。
func TestFormatterOptions(t *testing.T) {
	f, err := NewFormatter(&Options{Crossed: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := string(f.AppendBool(nil, true)); got != "☒" {
		t.Fatalf("got %q", got)
	}
	if got := string(f.AppendBool(nil, false)); got != "☐" {
		t.Fatalf("got %q", got)
	}
	g, _ := NewFormatter(nil)
	if got := string(g.AppendBool(nil, true)); got != "☑" {
		t.Fatalf("got %q", got)
	}
}
