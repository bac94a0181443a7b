package classify

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		want    string
		wantErr error
	}{
		{
			name:  "plain description",
			query: Query{Description: "Cotton hoodies"},
			want:  "cotton hoodies",
		},
		{
			name:  "whitespace collapsed",
			query: Query{Description: "  Cotton \t hoodies \n for men "},
			want:  "cotton hoodies for men",
		},
		{
			name: "hints appended in fixed order",
			query: Query{
				Description: "cotton hoodies",
				HSPrefix:    "61",
				Origin:      "PK",
				Destination: "DE",
			},
			want: "cotton hoodies | hs prefix: 61 | origin: pk | destination: de",
		},
		{
			name:  "partial hints skip missing fields",
			query: Query{Description: "cotton hoodies", Destination: "DE"},
			want:  "cotton hoodies | destination: de",
		},
		{
			name:    "empty description",
			query:   Query{Description: ""},
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "whitespace-only description",
			query:   Query{Description: "   \t\n  "},
			wantErr: ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	q := Query{Description: "Knitted  Cotton   Hoodie", Origin: "PK", Destination: "DE"}
	first, err := Normalize(q)
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Normalize(q)
		if err != nil {
			t.Fatalf("Normalize() unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("Normalize() not deterministic: %q vs %q", got, first)
		}
	}
}
