package channels

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		wantOk  bool
		wantK   Kind
		wantNum int
	}{
		{"T13", true, Terrestrial, 13},
		{"T62", true, Terrestrial, 62},
		{"T12", false, 0, 0},
		{"C13", true, Catv, 13},
		{"CS04", true, CS, 4},
		{"CS03", false, 0, 0}, // must be even
		{"BS15", true, BS, 15},
		{"BS07", false, 0, 0}, // reserved
		{"BS17", false, 0, 0}, // reserved
		{"BS15_0", true, BS, 15},
		{"0-103", true, Space, 0},
		{"garbage", false, 0, 0},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantOk && err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.in, err)
			continue
		}
		if !tc.wantOk && err == nil {
			t.Errorf("Parse(%q) = %+v, want an error", tc.in, got)
			continue
		}
		if tc.wantOk && (got.Kind != tc.wantK || got.Number != tc.wantNum) {
			t.Errorf("Parse(%q) = {Kind:%v Number:%d}, want {%v %d}", tc.in, got.Kind, got.Number, tc.wantK, tc.wantNum)
		}
	}
}
