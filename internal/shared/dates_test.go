package shared

import "testing"

func TestDateFormatter(t *testing.T) {
	tc := []struct {
		name   string
		locale string
		stored string
		want   string
	}{
		{name: "american english", locale: "en-US", stored: "2025-07-11", want: "7/11/2025"},
		{name: "british english", locale: "en-GB", stored: "2025-07-11", want: "11/07/2025"},
		{name: "german", locale: "de-DE", stored: "2025-07-11", want: "11.7.2025"},
		{name: "japanese", locale: "ja", stored: "2025-07-11", want: "2025/07/11"},
		{name: "unparsable locale falls back to iso", locale: "!!", stored: "2025-07-11", want: "2025-07-11"},
		{name: "empty locale falls back to iso", locale: "", stored: "2025-07-11", want: "2025-07-11"},
		{name: "legacy stored value is kept", locale: "en-US", stored: "1/1/2024", want: "1/1/2024"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDateFormatter(tt.locale).Format(tt.stored)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}
