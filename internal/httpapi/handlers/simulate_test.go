package handlers

import "testing"

func TestJSONName(t *testing.T) {
	cases := map[string]string{
		"QuerySlug": "querySlug",
		"Action":    "action",
		"":          "",
	}
	for in, want := range cases {
		if got := jsonName(in); got != want {
			t.Fatalf("jsonName(%q)=%q want %q", in, got, want)
		}
	}
}
