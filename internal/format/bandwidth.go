// Package format は帯域文字列のパースと表示用フォーマットを提供する。
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// bandwidthPattern は帯域文字列の形式（例: "100mbit", "1 gbit", "50"）
var bandwidthPattern = regexp.MustCompile(`^ *([0-9]+) *((?:[kmg])?bit)? *$`)

// 単位ごとの10のべき乗指数
var bandwidthExponents = map[string]int64{
	"bit":  0,
	"kbit": 3,
	"mbit": 6,
	"gbit": 9,
}

// ParseBandwidth は帯域文字列を絶対bit/s値に変換する。
// 単位なしの数値は指数0のスカラとして扱う。
func ParseBandwidth(bandwidth string) (int64, error) {
	m := bandwidthPattern.FindStringSubmatch(strings.ToLower(bandwidth))
	if m == nil {
		return 0, fmt.Errorf("input %q doesn't match bandwidth string, e.g. '100mbit'", bandwidth)
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("input %q doesn't match bandwidth string, e.g. '100mbit'", bandwidth)
	}

	expo := int64(0)
	if m[2] != "" {
		expo = bandwidthExponents[m[2]]
	}

	result := value
	for i := int64(0); i < expo; i++ {
		result *= 10
	}
	return result, nil
}
