package migrations

import "testing"

func TestRegistryIDsUniqueAndOrdered(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for _, m := range registry {
		if m.ID == "" || m.Name == "" || m.Run == nil {
			t.Fatalf("incomplete migration entry: %+v", m)
		}
		if seen[m.ID] {
			t.Fatalf("duplicate migration ID %s", m.ID)
		}
		seen[m.ID] = true
		if m.ID <= prev {
			t.Fatalf("migration IDs must be strictly increasing, got %s after %s", m.ID, prev)
		}
		prev = m.ID
	}
}
