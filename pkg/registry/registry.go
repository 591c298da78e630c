package registry

import (
	"bytes"
	"encoding/json"

	"glyphnum/pkg/contract"
	"glyphnum/plugins/ballot"
	"glyphnum/plugins/fraction"
	"glyphnum/plugins/outlined"
	"glyphnum/plugins/roman"
	"glyphnum/plugins/script"
	"glyphnum/plugins/segment"
	"glyphnum/plugins/tally"
)

// strictUnmarshal: 使用 DisallowUnknownFields 严格解码，拒绝未知字段。
func strictUnmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		// 保持零值（默认选项）
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// NewNumeral 工厂签名：接收原样 JSON Options。
type NewNumeral func(raw json.RawMessage) (contract.Numeral, error)

// NewFraction 工厂签名：接收原样 JSON Options。
type NewFraction func(raw json.RawMessage) (contract.FractionFormatter, error)

// NewCheckbox 工厂签名：接收原样 JSON Options。
type NewCheckbox func(raw json.RawMessage) (contract.Checkbox, error)

// Numeral 工厂注册表（显式、零反射）。
var Numeral = map[string]NewNumeral{
	// superscript: 上标数字
	"superscript": func(raw json.RawMessage) (contract.Numeral, error) {
		var opts script.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return script.NewSuper(&opts)
	},
	// subscript: 下标数字
	"subscript": func(raw json.RawMessage) (contract.Numeral, error) {
		var opts script.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return script.NewSub(&opts)
	},
	// segment: 七段数码（十/二进制）
	"segment": func(raw json.RawMessage) (contract.Numeral, error) {
		var opts segment.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return segment.NewFormatter(&opts)
	},
	// outlined: 轮廓数码（十/二/十六进制）
	"outlined": func(raw json.RawMessage) (contract.Numeral, error) {
		var opts outlined.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return outlined.NewFormatter(&opts)
	},
	// roman: 罗马数字（逐值范围校验）
	"roman": func(raw json.RawMessage) (contract.Numeral, error) {
		var opts roman.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return roman.NewFormatter(&opts)
	},
	// tally: 计数符号（按五分组）
	"tally": func(raw json.RawMessage) (contract.Numeral, error) {
		var opts tally.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return tally.NewFormatter(&opts)
	},
}

// Fraction 工厂注册表。
var Fraction = map[string]NewFraction{
	// vulgar: 俗分数（单字形优先）
	"vulgar": func(raw json.RawMessage) (contract.FractionFormatter, error) {
		var opts fraction.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return fraction.NewFormatter(&opts)
	},
}

// Checkbox 工厂注册表。
var Checkbox = map[string]NewCheckbox{
	// ballot: 选票框
	"ballot": func(raw json.RawMessage) (contract.Checkbox, error) {
		var opts ballot.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return ballot.NewFormatter(&opts)
	},
}
