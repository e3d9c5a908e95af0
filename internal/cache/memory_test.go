package cache

import "testing"

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()

	if _, found := c.Get("forms"); found {
		t.Error("Expected miss on empty cache")
	}

	table := map[string]int{"gehen": 1}
	c.Set("forms", table)

	v, found := c.Get("forms")
	if !found {
		t.Fatal("Expected hit after Set")
	}
	if m, ok := v.(map[string]int); !ok || m["gehen"] != 1 {
		t.Errorf("Unexpected cached value: %v", v)
	}
}

func TestMemoryCache_Flush(t *testing.T) {
	c := NewMemoryCache()
	c.Set("forms", "x")
	c.Flush()

	if _, found := c.Get("forms"); found {
		t.Error("Expected miss after Flush")
	}
}
