package models

import "testing"

func TestParseCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cents
		wantErr bool
	}{
		{"plain decimal", "12.34", 1234, false},
		{"comma separator", "12,34", 1234, false},
		{"integer", "100", 10000, false},
		{"zero", "0", 0, false},
		{"one decimal digit", "5.5", 550, false},
		{"third digit rounds down", "12.344", 1234, false},
		{"third digit rounds up", "12.345", 1235, false},
		{"negative", "-0.05", -5, false},
		{"leading dot", ".50", 50, false},
		{"empty", "", 0, true},
		{"letters", "12a.00", 0, true},
		{"two dots", "1.2.3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCents(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCents(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCents(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCentsString(t *testing.T) {
	tests := []struct {
		cents Cents
		want  string
	}{
		{1234, "12.34"},
		{100, "1.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-5, "-0.05"},
		{-1234, "-12.34"},
	}

	for _, tt := range tests {
		if got := tt.cents.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestCentsJSONRoundTrip(t *testing.T) {
	data, err := Cents(1234).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "12.34" {
		t.Errorf("MarshalJSON = %s, want 12.34", data)
	}

	var c Cents
	if err := c.UnmarshalJSON([]byte("12.34")); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if c != 1234 {
		t.Errorf("unmarshal number = %d, want 1234", c)
	}

	if err := c.UnmarshalJSON([]byte(`"99.99"`)); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if c != 9999 {
		t.Errorf("unmarshal string = %d, want 9999", c)
	}
}
