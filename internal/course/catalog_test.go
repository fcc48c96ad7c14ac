package course

import (
	"errors"
	"testing"
)

func TestGet_Known(t *testing.T) {
	c, err := Get("python-basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Python Basics" {
		t.Errorf("unexpected name %q", c.Name)
	}
	if len(c.Topics) != 8 {
		t.Errorf("expected 8 topics, got %d", len(c.Topics))
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("underwater-basket-weaving")
	if err == nil {
		t.Fatal("expected error")
	}
	var uerr *ErrUnknownCourse
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *ErrUnknownCourse, got %T", err)
	}
	if uerr.ID != "underwater-basket-weaving" {
		t.Errorf("unexpected id %q", uerr.ID)
	}
}

func TestAll_StableOrder(t *testing.T) {
	want := []string{"python-basics", "javascript-intro", "data-science", "web-dev"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("expected %d courses, got %d", len(want), len(all))
	}
	for i, c := range all {
		if c.ID != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], c.ID)
		}
	}
}

func TestCatalog_Complete(t *testing.T) {
	for _, c := range All() {
		if c.Name == "" || c.Description == "" {
			t.Errorf("%s: missing name or description", c.ID)
		}
		if len(c.Topics) == 0 {
			t.Errorf("%s: no topics", c.ID)
		}
		if len(c.Difficulties) == 0 {
			t.Errorf("%s: no difficulty levels", c.ID)
		}
		for _, d := range c.Difficulties {
			switch d {
			case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
			default:
				t.Errorf("%s: unknown difficulty %q", c.ID, d)
			}
		}
	}
}

func TestIDs_ReturnsCopy(t *testing.T) {
	ids := IDs()
	ids[0] = "mutated"
	if IDs()[0] != "python-basics" {
		t.Error("IDs must return a copy")
	}
}
