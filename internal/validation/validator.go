package validation

import "fmt"

// Error はバリデーションエラーを表す。
type Error struct {
	Field   string // エラーが発生したフィールド名
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewError はErrorを生成する。
func NewError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// ValidateIMSI はIMSIのバリデーションを行う（15桁の数字のみ許可）。
func ValidateIMSI(imsi string) error {
	if !IMSIPattern.MatchString(imsi) {
		return NewError("IMSI", "must be 15 digits")
	}
	return nil
}

// ValidateHex は16進数文字列のバリデーションを行う。
// バイト列のエンコードとして成立する偶数長のみを検査する。
// 文字種は検査しない（PyHSS側の受理範囲に合わせる）。
func ValidateHex(field, value string) error {
	if len(value)%2 != 0 {
		return NewError(field, "hexstrings must have an even amount of digits")
	}
	return nil
}

// ValidateKey はKi/OPc/OP鍵のバリデーションを行う。
// 16進数文字列として128bitまたは256bit長のみを許可する。
func ValidateKey(field, value string) error {
	if err := ValidateHex(field, value); err != nil {
		return err
	}
	if len(value) != Key128HexLen && len(value) != Key256HexLen {
		return NewError(field, fmt.Sprintf("must have 128 or 256 bit length, given %d bits", len(value)/2*8))
	}
	return nil
}
