package vars

import "testing"

func TestDerefOrZero(t *testing.T) {
	if DerefOrZero[int](nil) != 0 {
		t.Fatal()
	}
	n := 42
	if DerefOrZero(&n) != 42 {
		t.Fatal()
	}
}

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero(0, 0, 3, 4) != 3 {
		t.Fatal()
	}
	if FirstNonZero("", "foo") != "foo" {
		t.Fatal()
	}
	if FirstNonZero[int]() != 0 {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("%s should be true", str)
		}
	}
	for _, str := range []string{"false", "no", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("%s should be false", str)
		}
	}
}
