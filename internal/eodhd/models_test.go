package eodhd

import (
	"encoding/json"
	"testing"
)

func TestNumberDecoding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *float64
	}{
		{"plain number", `{"totalRevenue": 123.4}`, fp(123.4)},
		{"quoted number", `{"totalRevenue": "123.4"}`, fp(123.4)},
		{"null", `{"totalRevenue": null}`, nil},
		{"empty string", `{"totalRevenue": ""}`, nil},
		{"absent", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry StatementEntry
			if err := json.Unmarshal([]byte(tt.payload), &entry); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := entry.TotalRevenue.Float()
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected missing value, got %v", *got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("expected %v, got %v", *tt.want, got)
			}
		})
	}
}

func TestNumberRejectsGarbage(t *testing.T) {
	var entry StatementEntry
	if err := json.Unmarshal([]byte(`{"totalRevenue": "abc"}`), &entry); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func fp(v float64) *float64 {
	return &v
}
