package edit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "foo", []string{"foo"}},
		{"multiple", "foo bar baz", []string{"foo", "bar", "baz"}},
		{"collapsed spaces", "foo   bar", []string{"foo", "bar"}},
		{"quoted spaces", `"foo bar" baz`, []string{"foo bar", "baz"}},
		{"quotes mid-token", `fo"o b"ar`, []string{"foo bar"}},
		{"empty quoted arg", `""`, []string{""}},
		{"escaped quote", `\"foo\"`, []string{`"foo"`}},
		{"escaped backslash", `a\\b`, []string{`a\b`}},
		{"escaped newline", `a\nb`, []string{"a\nb"}},
		{"escape inside quotes", `"say \"hi\""`, []string{`say "hi"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.in)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.in, err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Tokenize(%q): (-want +got)\n%s", tt.in, d)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unterminated quote", `"foo`},
		{"lone quote", `foo " bar`},
		{"unknown escape", `\x`},
		{"trailing escape", `foo\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.in)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Tokenize(%q) = %v, want ErrSyntax", tt.in, err)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantCmd  string
		wantArgs []string
	}{
		{"blank line", "  ", "", nil},
		{"bare command", "show", "show", nil},
		{"lowercased", "SHOW .foo", "show", []string{".foo"}},
		{"args", `set .name "a b"`, "set", []string{".name", "a b"}},
		{"leading space", "  quit", "quit", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Split(tt.in)
			if err != nil {
				t.Fatalf("Split(%q): %v", tt.in, err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %q, want %q", cmd, tt.wantCmd)
			}
			if d := cmp.Diff(tt.wantArgs, args); d != "" {
				t.Errorf("args: (-want +got)\n%s", d)
			}
		})
	}
}
