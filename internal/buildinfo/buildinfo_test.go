package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want dev", got)
	}
	Commit = "abc1234"
	if got := Short(); got != "abc1234" {
		t.Fatalf("Short() = %q, want abc1234", got)
	}
	Version = "v1.2.0"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short() = %q, want v1.2.0", got)
	}
	if got := Title("cube"); got != "softrast: cube (v1.2.0)" {
		t.Fatalf("Title() = %q", got)
	}
}
