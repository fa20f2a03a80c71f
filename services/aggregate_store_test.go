package services

import "testing"

func TestAppendIfMissing(t *testing.T) {
	set, added := appendIfMissing(nil, "portland")
	if !added || len(set) != 1 {
		t.Fatalf("first add: set=%v added=%v", set, added)
	}

	set, added = appendIfMissing(set, "portland")
	if added || len(set) != 1 {
		t.Errorf("duplicate add grew the set: %v", set)
	}

	set, added = appendIfMissing(set, "seattle")
	if !added || len(set) != 2 {
		t.Errorf("new value not added: set=%v added=%v", set, added)
	}
}
