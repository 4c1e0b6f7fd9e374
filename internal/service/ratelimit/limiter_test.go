package ratelimit

import "testing"

func TestAllowConsumesCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		if !l.Allow("k", 3, 0) {
			t.Fatalf("request %d rejected within capacity", i+1)
		}
	}
	if l.Allow("k", 3, 0) {
		t.Fatal("request beyond capacity allowed")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0) {
		t.Fatal("first request on a rejected")
	}
	if l.Allow("a", 1, 0) {
		t.Fatal("second request on a allowed")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatal("fresh key b rejected")
	}
}
