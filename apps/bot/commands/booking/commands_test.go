package booking

import (
	"strings"
	"testing"
)

func TestConfirmationTextFormatsDatetime(t *testing.T) {
	got := confirmationText("Маникюр", "2026-09-01T10:00:00+03:00")

	for _, part := range []string{"Маникюр", "01.09.2026", "10:00"} {
		if !strings.Contains(got, part) {
			t.Fatalf("confirmation text %q missing %q", got, part)
		}
	}
	if strings.Contains(got, "2026-09-01T") {
		t.Fatalf("raw datetime leaked into %q", got)
	}
}

func TestConfirmationTextKeepsUnparseableDatetime(t *testing.T) {
	got := confirmationText("Маникюр", "завтра")
	if !strings.Contains(got, "завтра") {
		t.Fatalf("confirmation text %q missing raw datetime", got)
	}
}
