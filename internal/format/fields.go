package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Fields はエンティティをJSONフィールド名→値のマップに変換する。
// 一覧表示のlongモードで全フィールドを列挙するために使う。
// 数値はjson.Numberのまま保持し、指数表記にならないようにする。
func Fields(entity any) (map[string]any, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("marshal entity: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("unmarshal entity: %w", err)
	}
	return fields, nil
}

// SortedKeys はマップのキーをソートして返す。表示順を安定させる。
func SortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
