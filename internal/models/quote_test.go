package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func stringPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}

func TestQuote_Validate(t *testing.T) {
	tests := []struct {
		name    string
		quote   Quote
		wantErr bool
	}{
		{
			name:  "empty quote is valid",
			quote: Quote{},
		},
		{
			name:  "fully populated quote is valid",
			quote: Quote{Quote: stringPtr("Make it so"), Characters: stringPtr("Picard"), Episode: int64Ptr(1)},
		},
		{
			name:    "negative episode is invalid",
			quote:   Quote{Episode: int64Ptr(-1)},
			wantErr: true,
		},
		{
			name:    "oversized text is invalid",
			quote:   Quote{Quote: stringPtr(strings.Repeat("x", MaxQuoteLength+1))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quote.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuote_JSONShape(t *testing.T) {
	stardate := decimal.RequireFromString("1709.2")
	quote := Quote{
		ID:       1,
		Quote:    stringPtr("Live long and prosper"),
		Stardate: &stardate,
		Episode:  int64Ptr(1),
	}

	data, err := json.Marshal(quote)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	got := string(data)

	// id is a plain JSON number, stardate a decimal string, and
	// absent fields serialize as explicit nulls
	for _, want := range []string{`"id":1`, `"stardate":"1709.2"`, `"characters":null`} {
		if !strings.Contains(got, want) {
			t.Errorf("Marshal() = %s, want it to contain %s", got, want)
		}
	}
}

func TestQuote_JSONRoundTrip(t *testing.T) {
	in := `{"quote":"Live long and prosper","characters":"Spock","stardate":"1709.2","episode":1}`

	var quote Quote
	if err := json.Unmarshal([]byte(in), &quote); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if quote.Quote == nil || *quote.Quote != "Live long and prosper" {
		t.Errorf("Quote = %v, want Live long and prosper", quote.Quote)
	}
	if quote.Stardate == nil || quote.Stardate.String() != "1709.2" {
		t.Errorf("Stardate = %v, want 1709.2", quote.Stardate)
	}
	if quote.Episode == nil || *quote.Episode != 1 {
		t.Errorf("Episode = %v, want 1", quote.Episode)
	}
}

func TestQuotePatch_IsEmpty(t *testing.T) {
	patch := &QuotePatch{}
	if !patch.IsEmpty() {
		t.Error("IsEmpty() = false for zero patch, want true")
	}

	patch.Episode = int64Ptr(2)
	if patch.IsEmpty() {
		t.Error("IsEmpty() = true with episode set, want false")
	}
}
