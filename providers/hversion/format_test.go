package hversion

import "testing"

func TestVersion_StringMethod_RoundTrip(t *testing.T) {
	// Canonical inputs must render back byte for byte.
	inputs := []string{
		"1:23423.553.845-rc+255",
		"1.2.3-alpha+001",
		"2023.03.01",
		"2.sjf.5djf",
		"1.0.0-SNAPSHOT",
		"0.0.1",
		"7:1",
	}

	for _, input := range inputs {
		if got := Parse(input).String(); got != input {
			t.Errorf("round trip failed for %q, got %q", input, got)
		}
	}
}

func TestVersion_StringMethod_NoDanglingDelimiter(t *testing.T) {
	cases := []struct {
		Input    string
		Expected string
	}{
		// Empty trailing tokens render, but never a stray delimiter beyond them.
		{"1.", "1."},
		{"", ""},
		{"+meta", "+meta"},
	}

	for _, tcase := range cases {
		if got := Parse(tcase.Input).String(); got != tcase.Expected {
			t.Errorf("unexpected render of %q, expected %q, got %q", tcase.Input, tcase.Expected, got)
		}
	}
}

func TestVersion_DescribeMethod(t *testing.T) {
	cases := []struct {
		Input    string
		Expected string
	}{
		{"1.2.3-alpha+001", `epoch:0 components:["1", "2", "3"] pre_release:alpha build_metadata:001`},
		{"2023.03.01", `epoch:0 components:["2023", "03", "01"] pre_release: build_metadata:`},
		{"2.sjf.5djf", `epoch:0 components:["2", "sjf", "5djf"] pre_release: build_metadata:`},
		{"1:2.3.4", `epoch:1 components:["2", "3", "4"] pre_release: build_metadata:`},
		{"1.0.0-SNAPSHOT", `epoch:0 components:["1", "0", "0"] pre_release:SNAPSHOT build_metadata:`},
	}

	for _, tcase := range cases {
		if got := Parse(tcase.Input).Describe(); got != tcase.Expected {
			t.Errorf("unexpected diagnostic for %q,\nexpected %q\ngot      %q", tcase.Input, tcase.Expected, got)
		}
	}
}
