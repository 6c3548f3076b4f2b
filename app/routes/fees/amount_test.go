package fees

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain number", "500", 500, false},
		{"decimal", "499.99", 499.99, false},
		{"thousands separator", "1,000.50", 1000.50, false},
		{"rupee symbol", "₹750", 750, false},
		{"dollar symbol with spaces", "$ 1 200", 1200, false},
		{"rounds to two decimals", "99.999", 100, false},
		{"negative rejected", "-5", 0, true},
		{"zero rejected", "0", 0, true},
		{"empty rejected", "", 0, true},
		{"symbols only rejected", "₹", 0, true},
		{"garbage rejected", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
