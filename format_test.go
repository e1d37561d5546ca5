package ffx

import "testing"

func TestSeparateAndReconstructFormat(t *testing.T) {
	original := "4111-1111-1111-1111"
	mask, data := SeparateFormatAndData(original)
	if got, want := data, "4111111111111111"; got != want {
		t.Fatalf("data = %q, want %q", got, want)
	}

	// Substitute different digits for the data characters and confirm the
	// format characters are read back from original at their positions.
	tokenized := make([]byte, len(data))
	for i := range tokenized {
		tokenized[i] = '9'
	}
	reconstructed := ReconstructWithFormat(string(tokenized), mask, original)
	if got, want := reconstructed, "9999-9999-9999-9999"; got != want {
		t.Fatalf("reconstructed = %q, want %q", got, want)
	}
}

func TestDetermineRadix(t *testing.T) {
	cases := []struct {
		data string
		want int
	}{
		{"", 10},
		{"0123456789", 10},
		{"abc123", 36},
		{"ABC123", 36},
	}
	for _, c := range cases {
		if got := DetermineRadix(c.data); got != c.want {
			t.Errorf("DetermineRadix(%q) = %d, want %d", c.data, got, c.want)
		}
	}
}
