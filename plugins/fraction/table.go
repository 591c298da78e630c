package fraction

// 单字形分数表：19 个 Unicode 预组合分数（含 0/3 ↉）。
// 资格门限：两操作数均可无损放入 8 位无符号域且恰好命中表项；
// 任一操作数 ≥256（或为负且未外提符号）一律回退组合形式。
var singleGlyphs = map[[2]uint8]rune{
	{1, 4}:  '¼',
	{1, 2}:  '½',
	{3, 4}:  '¾',
	{1, 7}:  '⅐',
	{1, 9}:  '⅑',
	{1, 10}: '⅒',
	{1, 3}:  '⅓',
	{2, 3}:  '⅔',
	{1, 5}:  '⅕',
	{2, 5}:  '⅖',
	{3, 5}:  '⅗',
	{4, 5}:  '⅘',
	{1, 6}:  '⅙',
	{5, 6}:  '⅚',
	{1, 8}:  '⅛',
	{3, 8}:  '⅜',
	{5, 8}:  '⅝',
	{7, 8}:  '⅞',
	{0, 3}:  '↉',
}

func singleGlyph(num, den uint8) (rune, bool) {
	r, ok := singleGlyphs[[2]uint8{num, den}]
	return r, ok
}

// singleGlyph64: 幅值域（符号已外提）的查表入口。
func singleGlyph64(num, den uint64) (rune, bool) {
	if num > 255 || den > 255 {
		return 0, false
	}
	return singleGlyph(uint8(num), uint8(den))
}
