// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import "testing"

func TestStatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Stat
	}{
		{"string", `{"value":"12"}`, "12"},
		{"number", `{"value":12}`, "12"},
		{"negative number", `{"value":-3}`, "-3"},
		{"decimal string", `{"value":"45.5"}`, "45.5"},
		{"empty string", `{"value":""}`, ""},
		{"padded string", `{"value":" 7 "}`, "7"},
		{"null", `{"value":null}`, ""},
		{"missing", `{}`, ""},
		{"boolean", `{"value":true}`, ""},
		{"letters", `{"value":"abc"}`, ""},
		{"placeholder dashes", `{"value":"--"}`, ""},
		{"not applicable", `{"value":"n/a"}`, ""},
		{"infinity text", `{"value":"Inf"}`, ""},
		{"playing time", `{"value":"33:15"}`, "33:15"},
		{"malformed playing time", `{"value":"33:x"}`, ""},
		{"plus sign", `{"value":"+7"}`, "+7"},
		{"object", `{"value":{"nested":1}}`, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var decoded struct {
				Value Stat `json:"value"`
			}
			if err := json.Unmarshal([]byte(test.payload), &decoded); err != nil {
				t.Fatalf("Unmarshal(%s): %v", test.payload, err)
			}
			if decoded.Value != test.want {
				t.Errorf("Stat = %q, want %q", decoded.Value, test.want)
			}
		})
	}
}

func TestStatAccessorsDefaultToZero(t *testing.T) {
	tests := []struct {
		stat      Stat
		wantInt   int
		wantFloat float64
		wantText  string
	}{
		{"", 0, 0, "0"},
		{"abc", 0, 0, "0"},
		{"--", 0, 0, "0"},
		{"-", 0, 0, "0"},
		{"NaN", 0, 0, "0"},
		{"31", 31, 31, "31"},
		{"+7", 7, 7, "+7"},
		{"-4", -4, -4, "-4"},
		{"48.5", 48, 48.5, "48.5"},
	}
	for _, test := range tests {
		if got := test.stat.Int(); got != test.wantInt {
			t.Errorf("Stat(%q).Int() = %d, want %d", test.stat, got, test.wantInt)
		}
		if got := test.stat.Float(); got != test.wantFloat {
			t.Errorf("Stat(%q).Float() = %v, want %v", test.stat, got, test.wantFloat)
		}
		if got := test.stat.String(); got != test.wantText {
			t.Errorf("Stat(%q).String() = %q, want %q", test.stat, got, test.wantText)
		}
	}
}

func TestStatIntOutOfRangeIsZero(t *testing.T) {
	for _, stat := range []Stat{"99999999999999999999", "-99999999999999999999", "1e300", "9223372036854775808"} {
		if got := stat.Int(); got != 0 {
			t.Errorf("Stat(%q).Int() = %d, want 0", stat, got)
		}
	}
	if got := Stat("9007199254740992").Int(); got != 9007199254740992 {
		t.Errorf("in-range Int() = %d", got)
	}
}

func TestStatPresent(t *testing.T) {
	if Stat("").Present() {
		t.Error("empty Stat should not be present")
	}
	if !Stat("0").Present() {
		t.Error("explicit zero should be present")
	}
}

func TestStatMinutes(t *testing.T) {
	tests := map[Stat]float64{
		"":      0,
		"33":    33,
		"33:30": 33.5,
		"0:45":  0.75,
		"x:10":  0,
	}
	for stat, want := range tests {
		if got := stat.Minutes(); got != want {
			t.Errorf("Stat(%q).Minutes() = %v, want %v", stat, got, want)
		}
	}
}

func TestFlexIntAndBool(t *testing.T) {
	var decoded struct {
		A flexInt  `json:"a"`
		B flexInt  `json:"b"`
		C flexInt  `json:"c"`
		D flexBool `json:"d"`
		E flexBool `json:"e"`
		F flexBool `json:"f"`
	}
	payload := `{"a":"41","b":"","c":17,"d":true,"e":"true","f":"maybe"}`
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.A != 41 || decoded.B != 0 || decoded.C != 17 {
		t.Errorf("flexInt values = %d %d %d", decoded.A, decoded.B, decoded.C)
	}
	if !decoded.D || !decoded.E || decoded.F {
		t.Errorf("flexBool values = %v %v %v", decoded.D, decoded.E, decoded.F)
	}
}

func TestFlexIntOversizedIsZero(t *testing.T) {
	var decoded struct {
		Score flexInt `json:"score"`
		Wins  flexInt `json:"wins"`
	}
	payload := `{"score":"99999999999999999999","wins":-1e30}`
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Score != 0 || decoded.Wins != 0 {
		t.Errorf("oversized values = %d %d, want 0 0", decoded.Score, decoded.Wins)
	}
}
