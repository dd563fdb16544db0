package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	if _, ok := Parse("2024-03-15"); !ok {
		t.Error("expected valid date to parse")
	}
	if _, ok := Parse(""); ok {
		t.Error("empty string should not parse")
	}
	if _, ok := Parse("not-a-date"); ok {
		t.Error("garbage should not parse")
	}
	if _, ok := Parse("15/03/2024"); ok {
		t.Error("wrong layout should not parse")
	}
}

func TestInRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	if !InRange("2024-03-01", start, end) {
		t.Error("start boundary should be in range")
	}
	if !InRange("2024-03-31", start, end) {
		t.Error("end boundary should be in range")
	}
	if InRange("2024-02-29", start, end) {
		t.Error("date before range should be excluded")
	}
	if InRange("2024-04-01", start, end) {
		t.Error("date after range should be excluded")
	}
	if InRange("", start, end) {
		t.Error("missing date should be excluded, not an error")
	}
	if InRange("garbage", start, end) {
		t.Error("unparseable date should be excluded, not an error")
	}
}
