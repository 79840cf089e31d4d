package util

import "testing"

func TestClone_Independent(t *testing.T) {
	nested := Map{"city": "Oslo"}
	orig := Map{"email": "a@b.com", "address": nested}

	cp := Clone(orig)
	cp["email"] = "x@y.com"
	delete(cp, "address")
	cp["added"] = true

	if orig["email"] != "a@b.com" {
		t.Errorf("original mutated: %v", orig["email"])
	}
	if _, ok := orig["address"]; !ok {
		t.Error("delete on clone removed key from original")
	}
	if _, ok := orig["added"]; ok {
		t.Error("add on clone leaked into original")
	}
}

func TestClone_SharesNested(t *testing.T) {
	nested := Map{"city": "Oslo"}
	cp := Clone(Map{"address": nested})
	cp["address"].(Map)["city"] = "Bergen"
	if nested["city"] != "Bergen" {
		t.Error("expected nested values to be shared by a one-level copy")
	}
}

func TestClone_Nil(t *testing.T) {
	cp := Clone(nil)
	if cp == nil {
		t.Fatal("expected non-nil map")
	}
	cp["k"] = 1
}

func TestAliasKeys(t *testing.T) {
	t.Run("renames present key", func(t *testing.T) {
		m := AliasKeys(Map{"email": "a@b.com"}, []Alias{{From: "email", To: "$email"}})
		if len(m) != 1 || m["$email"] != "a@b.com" {
			t.Errorf("unexpected result %v", m)
		}
		if _, ok := m["email"]; ok {
			t.Error("expected 'email' to be removed")
		}
	})

	t.Run("absent key is ignored", func(t *testing.T) {
		m := AliasKeys(Map{"name": "A"}, []Alias{{From: "email", To: "$email"}})
		if len(m) != 1 || m["name"] != "A" {
			t.Errorf("unexpected result %v", m)
		}
	})

	t.Run("last writer wins on collision", func(t *testing.T) {
		m := AliasKeys(Map{"a": 1, "b": 2}, []Alias{{From: "a", To: "x"}, {From: "b", To: "x"}})
		if m["x"] != 2 || len(m) != 1 {
			t.Errorf("unexpected result %v", m)
		}
	})

	t.Run("in place", func(t *testing.T) {
		m := Map{"name": "A"}
		AliasKeys(m, []Alias{{From: "name", To: "$name"}})
		if m["$name"] != "A" {
			t.Errorf("expected in-place rename, got %v", m)
		}
	})
}

func TestString(t *testing.T) {
	m := Map{"s": "v", "empty": "", "n": 3}
	if v, ok := String(m, "s"); !ok || v != "v" {
		t.Errorf("got %q, %v", v, ok)
	}
	if _, ok := String(m, "empty"); ok {
		t.Error("empty string should not count")
	}
	if _, ok := String(m, "n"); ok {
		t.Error("non-string should not count")
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want float64
		ok   bool
	}{
		{"int", 3, 3, true},
		{"int64", int64(4), 4, true},
		{"float", 2.5, 2.5, true},
		{"numeric string", "7.5", 7.5, true},
		{"text", "seven", 0, false},
		{"bool", true, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Number(Map{"v": tc.v}, "v")
			if ok != tc.ok || got != tc.want {
				t.Errorf("Number(%v) = %v, %v; want %v, %v", tc.v, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	if Stringify(nil) != "" || Stringify("a") != "a" || Stringify(42) != "42" {
		t.Error("unexpected Stringify output")
	}
}
