package browser

import "testing"

func TestOpener(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"darwin", "open", []string{"https://example.com"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "https://example.com"}},
		{"linux", "xdg-open", []string{"https://example.com"}},
	}
	for _, tt := range tests {
		name, args := opener(tt.goos, "https://example.com")
		if name != tt.name {
			t.Errorf("%s: command = %q, want %q", tt.goos, name, tt.name)
		}
		if len(args) != len(tt.args) || args[len(args)-1] != "https://example.com" {
			t.Errorf("%s: args = %v, want %v", tt.goos, args, tt.args)
		}
	}
}
