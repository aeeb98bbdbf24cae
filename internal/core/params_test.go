package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Run", Params: []Parameter{IntParam("generation", "Generation", 12), BoolParam("running", "Running", true)}},
		{Name: "Speed", Params: []Parameter{FloatParam("density", "Density", 0.25), TextParam("mode", "Mode", "toggle")}},
	}}

	cases := []struct {
		key  string
		typ  ParamType
		want string
	}{
		{"generation", ParamTypeInt, "12"},
		{"running", ParamTypeBool, "on"},
		{"density", ParamTypeFloat, "0.25"},
		{"mode", ParamTypeText, "toggle"},
	}
	for _, tc := range cases {
		p, ok := snap.Lookup(tc.key)
		if !ok {
			t.Fatalf("missing %q", tc.key)
		}
		if p.Type != tc.typ || p.Value != tc.want {
			t.Fatalf("%s = %+v, want %s %q", tc.key, p, tc.typ, tc.want)
		}
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unexpected parameter")
	}
}
