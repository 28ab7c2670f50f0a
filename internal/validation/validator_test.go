package validation

import (
	"strings"
	"testing"
)

func TestValidateIMSI(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"440101234567890", false},
		{"001010123456789", false},
		{"123456789012345", false},
		{"", true},
		{"12345678901234", true},
		{"1234567890123456", true},
		{"44010123456789a", true},
		{"44010123456789 ", true},
		{"+4401012345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateIMSI(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIMSI(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHex(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"00", false},
		{"00112233", false},
		{"0", true},
		{"001", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateHex("Ki", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"128bit", "00112233445566778899AABBCCDDEEFF", false},
		{"128bit lowercase", "00112233445566778899aabbccddeeff", false},
		{"256bit", strings.Repeat("0f", 32), false},
		{"empty", "", true},
		{"31 chars", "00112233445566778899AABBCCDDEEF", true},
		{"30 chars", "00112233445566778899AABBCCDDEE", true},
		{"33 chars", "00112233445566778899AABBCCDDEEFFF", true},
		{"48 chars", strings.Repeat("00", 24), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey("Ki", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// 鍵長エラーはビット長を報告する。
func TestValidateKeyReportsBits(t *testing.T) {
	err := ValidateKey("Ki", "001122334455667788990011223344")
	if err == nil {
		t.Fatal("expected error for 30 char key")
	}
	if !strings.Contains(err.Error(), "120 bits") {
		t.Errorf("expected bit length in message, got %q", err.Error())
	}
}
