package utils

import (
	"testing"
)

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[string](10)
	if len(s) != 0 {
		t.Errorf("expected len 0, got %d", len(s))
	}

	s.Insert("features", "labels")
	if len(s) != 2 {
		t.Errorf("expected len 2, got %d", len(s))
	}
	if !s.Has("features") || !s.Has("labels") {
		t.Errorf("expected s to have both inserted names, got %v", s)
	}
	if s.Has("W0") {
		t.Errorf("expected s.Has(\"W0\") to be false")
	}

	// Inserting twice is a no-op.
	s.Insert("labels")
	if len(s) != 2 {
		t.Errorf("expected len 2 after repeated insert, got %d", len(s))
	}

	s2 := SetWith("W0", "labels")
	s3 := s.Sub(s2)
	if len(s3) != 1 || !s3.Has("features") {
		t.Errorf("expected s - s2 = {features}, got %v", s3)
	}

	delete(s, "labels")
	if !s.Equal(s3) {
		t.Errorf("expected s.Equal(s3) to be true")
	}
	if s.Equal(s2) {
		t.Errorf("expected s.Equal(s2) to be false")
	}
	if s.Equal(SetWith("other")) {
		t.Errorf("expected sets with different elements to differ")
	}
}
