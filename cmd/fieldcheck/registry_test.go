package main

import "testing"

func TestLookupFieldKnown(t *testing.T) {
	for _, name := range []string{"fe222", "fe251", "fe255", "fe383", "fe414", "fe511"} {
		b, err := lookupField(name)
		if err != nil {
			t.Fatalf("lookupField(%q): %v", name, err)
		}
		if b.params.Name != name {
			t.Fatalf("lookupField(%q): got params name %q", name, b.params.Name)
		}
	}
}

func TestLookupFieldUnknown(t *testing.T) {
	if _, err := lookupField("fe999"); err == nil {
		t.Fatal("expected an error for an unknown field name")
	}
}
