package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+12125551234",
			want:  "+12125551234",
		},
		{
			name:  "with parentheses and dashes",
			input: "+1 (212) 555-1234",
			want:  "+12125551234",
		},
		{
			name:  "international with spaces",
			input: "+44 20 7946 0958",
			want:  "+442079460958",
		},
		{
			name:  "national number uses default region",
			input: "(212) 555-1234",
			want:  "+12125551234",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +12125551234  ",
			want:  "+12125551234",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "not a number",
			input: "call me maybe",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once := NormalizePhone("+1 (212) 555-1234")
	if twice := NormalizePhone(once); twice != once {
		t.Errorf("second pass changed %q to %q", once, twice)
	}
}
