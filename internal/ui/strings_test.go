package ui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("  hello  ", 10); got != "hello" {
		t.Fatalf("truncate trims = %q, want hello", got)
	}
	if got := truncate("hello world", 8); got != "hello..." {
		t.Fatalf("truncate = %q, want hello...", got)
	}
	if got := truncate("abcd", 2); got != "ab" {
		t.Fatalf("truncate limit<=3 = %q, want ab", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("/data/curves/haptic-tap.csv", 16)
	if len([]rune(got)) > 16 {
		t.Fatalf("got %q (%d runes), want <=16", got, len([]rune(got)))
	}
	if got[len(got)-4:] != ".csv" {
		t.Fatalf("truncateMiddle = %q, want extension preserved", got)
	}
}

func TestPadding(t *testing.T) {
	if got := padLeft("7", 3); got != "  7" {
		t.Fatalf("padLeft = %q", got)
	}
	if got := padRight("7", 3); got != "7  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padLeft("1234", 3); got != "1234" {
		t.Fatalf("padLeft overflow = %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	cases := map[float64]string{
		0:    "0",
		2.5:  "2.5",
		1500: "1.5 k",
		0.25: "250 m",
	}
	for in, want := range cases {
		if got := formatValue(in); got != want {
			t.Errorf("formatValue(%g) = %q, want %q", in, got, want)
		}
	}
}
