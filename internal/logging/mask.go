// Package logging はログ出力時の機微情報マスキングを提供する。
package logging

import "strings"

// MaskIMSI はIMSI文字列をマスキングする。
// 先頭6文字（MCC/MNC） + マスク文字('*') + 末尾1文字の形式で出力する。
// enabled=falseまたは文字列長が7以下の場合はそのまま返す。
func MaskIMSI(imsi string, enabled bool) string {
	if !enabled || len(imsi) <= 7 {
		return imsi
	}
	return imsi[:6] + strings.Repeat("*", len(imsi)-7) + imsi[len(imsi)-1:]
}

// MaskKey は鍵文字列（Ki/OPc/OP）をマスキングする。
// 鍵はログに全桁出さない。先頭4文字のみ残して残りを'*'にする。
func MaskKey(key string, enabled bool) string {
	if !enabled || len(key) <= 4 {
		return key
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}

// Masker はマスキング設定を保持する。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// IMSI はIMSIをマスキングする。
func (m *Masker) IMSI(imsi string) string {
	return MaskIMSI(imsi, m.enabled)
}

// Key は鍵をマスキングする。
func (m *Masker) Key(key string) string {
	return MaskKey(key, m.enabled)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
