package main

import "testing"

func TestParseStamp(t *testing.T) {
	st, err := parseStamp("glider@5,-2")
	if err != nil {
		t.Fatal(err)
	}
	if st != (stamp{name: "glider", x: 5, y: -2}) {
		t.Fatalf("got %+v", st)
	}
	for _, bad := range []string{"glider", "glider@5", "glider@a,1", "glider@1,b", "a@b@c"} {
		if _, err := parseStamp(bad); err == nil {
			t.Fatalf("parseStamp(%q) succeeded", bad)
		}
	}
}
