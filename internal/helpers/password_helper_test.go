package helpers

import "testing"

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets all rules", "Abcdef1!", true},
		{"longer valid", "Str0ng&Password", true},
		{"symbol heavy", "aB3$aB3$aB3$", true},

		{"too short", "abc", false},
		{"seven chars", "Abcde1!", false},
		{"too long", "Abcdefghijklmnop123!!", false},
		{"no digit", "Abcdefg!", false},
		{"no lowercase", "ABCDEFG1!", false},
		{"no uppercase", "abcdefg1!", false},
		{"no symbol", "Abcdefg1", false},
		{"contains space", "Abc def1!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPassword(tt.password); got != tt.want {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"alice@", false},
		{"alice@example", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
