package hversion

import (
	"reflect"
	"testing"
)

func TestParse_Fields(t *testing.T) {
	cases := []struct {
		Input      string
		Epoch      uint64
		HasEpoch   bool
		Components []string
		Pre        string
		HasPre     bool
		Meta       string
		HasMeta    bool
	}{
		{"1.2.3-alpha+001", 0, false, []string{"1", "2", "3"}, "alpha", true, "001", true},
		{"2023.03.01", 0, false, []string{"2023", "03", "01"}, "", false, "", false},
		{"2.sjf.5djf", 0, false, []string{"2", "sjf", "5djf"}, "", false, "", false},
		{"1:2.3.4", 1, true, []string{"2", "3", "4"}, "", false, "", false},
		{"1.0.0-SNAPSHOT", 0, false, []string{"1", "0", "0"}, "SNAPSHOT", true, "", false},
		{"1:23423.553.845-rc+255", 1, true, []string{"23423", "553", "845"}, "rc", true, "255", true},
		// Only the first '-' starts the pre-release, further hyphens stay inside it.
		{"1.2.3-rc-1+exp", 0, false, []string{"1", "2", "3"}, "rc-1", true, "exp", true},
		// Non-numeric epoch candidate resolves to an absent epoch.
		{"abc:1.2", 0, false, []string{"1", "2"}, "", false, "", false},
		// Adjacent delimiters keep their empty tokens.
		{"1..2", 0, false, []string{"1", "", "2"}, "", false, "", false},
		{"", 0, false, []string{""}, "", false, "", false},
		{"+meta", 0, false, []string{""}, "", false, "meta", true},
		{"-rc", 0, false, []string{""}, "rc", true, "", false},
	}

	for _, tcase := range cases {
		t.Run(tcase.Input, func(t *testing.T) {
			v := Parse(tcase.Input)

			epoch, hasEpoch := v.Epoch()
			if epoch != tcase.Epoch || hasEpoch != tcase.HasEpoch {
				t.Errorf("unexpected epoch, expected (%d, %t), got (%d, %t)", tcase.Epoch, tcase.HasEpoch, epoch, hasEpoch)
			}
			if !reflect.DeepEqual(v.Components(), tcase.Components) {
				t.Errorf("unexpected components, expected '%+v', got '%+v'", tcase.Components, v.Components())
			}
			pre, hasPre := v.PreRelease()
			if pre != tcase.Pre || hasPre != tcase.HasPre {
				t.Errorf("unexpected pre-release, expected (%q, %t), got (%q, %t)", tcase.Pre, tcase.HasPre, pre, hasPre)
			}
			meta, hasMeta := v.BuildMetadata()
			if meta != tcase.Meta || hasMeta != tcase.HasMeta {
				t.Errorf("unexpected build metadata, expected (%q, %t), got (%q, %t)", tcase.Meta, tcase.HasMeta, meta, hasMeta)
			}
			if v.Value() != tcase.Input {
				t.Errorf("unexpected raw value, expected %q, got %q", tcase.Input, v.Value())
			}
			if len(v.Components()) == 0 {
				t.Error("components must never be empty")
			}
		})
	}
}

// A colon-free input that is itself a pure integer yields an epoch AND a
// component derived from the same overlapping text.
func TestParse_NumericEpochOverlap(t *testing.T) {
	v := Parse("12345")

	epoch, ok := v.Epoch()
	if !ok || epoch != 12345 {
		t.Errorf("expected epoch 12345, got (%d, %t)", epoch, ok)
	}
	if !reflect.DeepEqual(v.Components(), []string{"12345"}) {
		t.Errorf("expected the full input as component, got '%+v'", v.Components())
	}
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{"1.2.3-alpha+001", "1:2.3.4", "", "weird::input--x++y", "2.sjf.5djf"}
	for _, input := range inputs {
		if !Parse(input).Equal(Parse(input)) {
			t.Errorf("re-parsing %q produced a different record", input)
		}
	}
}

func TestVersion_EqualMethod(t *testing.T) {
	cases := []struct {
		A, B  string
		Equal bool
	}{
		{"1.2.3-alpha+001", "1.2.3-alpha+001", true},
		{"1.2.3-alpha+001", "1.2.3-alpha+002", false},
		{"1.2.3-alpha", "1.2.3-Alpha", false},
		{"1.2.3", "1.2.3.0", false},
		{"1:2.3", "2.3", false},
		{"", "", true},
	}

	for _, tcase := range cases {
		a, b := Parse(tcase.A), Parse(tcase.B)
		if a.Equal(b) != tcase.Equal {
			t.Errorf("unexpected equality for %q vs %q, expected '%t'", tcase.A, tcase.B, tcase.Equal)
		}
		if a.Equal(b) != b.Equal(a) {
			t.Errorf("equality for %q vs %q is not symmetric", tcase.A, tcase.B)
		}
	}
}
