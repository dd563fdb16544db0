package numeric

import (
	"encoding/json"
	"testing"
)

func TestFloatUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`120.5`, 120.5},
		{`"120.5"`, 120.5},
		{`"  75 "`, 75},
		{`""`, 0},
		{`"abc"`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var f Float
		if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if float64(f) != tc.want {
			t.Errorf("unmarshal %s = %v, want %v", tc.in, float64(f), tc.want)
		}
	}
}

func TestIntUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`10`, 10},
		{`"10"`, 10},
		{`10.9`, 10},
		{`"not a number"`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var i Int
		if err := json.Unmarshal([]byte(tc.in), &i); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if int(i) != tc.want {
			t.Errorf("unmarshal %s = %d, want %d", tc.in, int(i), tc.want)
		}
	}
}

func TestIDUnmarshalStringKey(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`"42"`), &id); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if id != 42 {
		t.Errorf("got %d, want 42", id)
	}

	if err := json.Unmarshal([]byte(`"bogus"`), &id); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if id != 0 {
		t.Errorf("invalid key should coerce to 0, got %d", id)
	}
}

func TestFloatMarshal(t *testing.T) {
	out, err := json.Marshal(Float(99.9))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "99.9" {
		t.Errorf("got %s, want 99.9", out)
	}
}
