package format

import (
	"fmt"
	"testing"
)

func TestFields(t *testing.T) {
	type entity struct {
		Name    string `json:"name"`
		AmbrDL  int64  `json:"ambr_dl"`
		Enabled bool   `json:"enabled"`
		MSISDN  string `json:"msisdn,omitempty"`
	}

	fields, err := Fields(entity{Name: "internet", AmbrDL: 150_000_000, Enabled: true})
	if err != nil {
		t.Fatalf("Fields() error = %v", err)
	}

	if got := fmt.Sprintf("%v", fields["name"]); got != "internet" {
		t.Errorf("name = %q, want %q", got, "internet")
	}
	// 大きい数値が指数表記にならないこと
	if got := fmt.Sprintf("%v", fields["ambr_dl"]); got != "150000000" {
		t.Errorf("ambr_dl = %q, want %q", got, "150000000")
	}
	if _, ok := fields["msisdn"]; ok {
		t.Error("omitempty field should be absent")
	}
}

func TestSortedKeys(t *testing.T) {
	fields := map[string]any{"qci": 9, "apn": "internet", "arp_priority": 9}
	keys := SortedKeys(fields)
	want := []string{"apn", "arp_priority", "qci"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
}
