package theme

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorLine(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New("unable to find item with id: 3"), "Unable to find item with id: 3"},
		{errors.New("ünicode first"), "Ünicode first"},
		{errors.New(""), ""},
	}
	for _, tt := range tests {
		got := ErrorLine(tt.err)
		if !strings.HasPrefix(got, " "+ErrorMark()+" ") {
			t.Errorf("ErrorLine(%q) = %q, missing error mark", tt.err, got)
		}
		if !strings.HasSuffix(got, tt.want) {
			t.Errorf("ErrorLine(%q) = %q, want suffix %q", tt.err, got, tt.want)
		}
	}
}

func TestDoneLine(t *testing.T) {
	got := DoneLine("Checked task(s)", "1", "4")
	if !strings.Contains(got, GlyphComplete) {
		t.Fatalf("DoneLine = %q, missing check mark", got)
	}
	if !strings.Contains(got, "Checked task(s): ") || !strings.Contains(got, "1, 4") {
		t.Fatalf("DoneLine = %q", got)
	}
}
