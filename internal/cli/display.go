package cli

import (
	"fmt"
	"io"

	"github.com/lynxis/pyhss-cli/internal/format"
)

// 一覧表示のモード。元のクリック実装と同じ3段階。
type displayMode string

const (
	displayLong  displayMode = "long"
	displayBrief displayMode = "brief"
	displayKey   displayMode = "key"
)

// resolveDisplayMode はフラグから表示モードを決める。
// 明示指定がなければ、フィルタありはbrief、一覧はキーのみ。
func resolveDisplayMode(long, brief, keyOnly, filtered bool) displayMode {
	switch {
	case long:
		return displayLong
	case brief:
		return displayBrief
	case keyOnly:
		return displayKey
	case filtered:
		return displayBrief
	default:
		return displayKey
	}
}

// printEntityLong はキー項目以外の全フィールドを1行ずつ出力する。
// 出力形式: "<キー値>, <フィールド>: <値>"
func printEntityLong(w io.Writer, keyField string, entity any) error {
	fields, err := format.Fields(entity)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("%v", fields[keyField])
	for _, name := range format.SortedKeys(fields) {
		if name == keyField {
			continue
		}
		fmt.Fprintf(w, "%s, %s: %v\n", label, name, fields[name])
	}
	return nil
}

// printEntityBrief は固定フィールドのみ出力する。
// レスポンスに存在しないフィールドは空値として出す。
func printEntityBrief(w io.Writer, keyField string, entity any, briefFields []string) error {
	fields, err := format.Fields(entity)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("%v", fields[keyField])
	for _, name := range briefFields {
		value, ok := fields[name]
		if !ok {
			value = ""
		}
		fmt.Fprintf(w, "%s, %s: %v\n", label, name, value)
	}
	return nil
}
