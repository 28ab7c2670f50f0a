// Package validation は加入者識別子と鍵のバリデーションルールを提供する。
package validation

import "regexp"

// バリデーション正規表現
var (
	// IMSIPattern はIMSI形式（15桁の数字）
	IMSIPattern = regexp.MustCompile(`^[0-9]{15}$`)
)

// 鍵長定数
const (
	// Key128HexLen は128bit鍵の16進数文字列長
	Key128HexLen = 32
	// Key256HexLen は256bit鍵の16進数文字列長
	Key256HexLen = 64
)
