// ABOUTME: Tests for recycling location filtering
// ABOUTME: Verifies device-type filters and the All/absent passthrough

package models

import "testing"

func TestFilterLocationsByType_ReturnsOnlyAccepting(t *testing.T) {
	locations := RecyclingLocations()

	filtered := FilterLocationsByType(locations, "Desktop")

	if len(filtered) == 0 {
		t.Fatal("Expected at least one location accepting Desktop")
	}
	for _, loc := range filtered {
		accepts := false
		for _, accepted := range loc.AcceptedTypes {
			if accepted == "Desktop" {
				accepts = true
				break
			}
		}
		if !accepts {
			t.Errorf("Location %q does not accept Desktop", loc.Name)
		}
	}
}

func TestFilterLocationsByType_AllReturnsFullList(t *testing.T) {
	locations := RecyclingLocations()

	filtered := FilterLocationsByType(locations, "All")
	if len(filtered) != len(locations) {
		t.Errorf("Filter All returned %d locations, want %d", len(filtered), len(locations))
	}

	filtered = FilterLocationsByType(locations, "")
	if len(filtered) != len(locations) {
		t.Errorf("Empty filter returned %d locations, want %d", len(filtered), len(locations))
	}
}

func TestFilterLocationsByType_UnknownTypeReturnsEmpty(t *testing.T) {
	filtered := FilterLocationsByType(RecyclingLocations(), "Spaceship")

	if len(filtered) != 0 {
		t.Errorf("Expected no locations for unknown type, got %d", len(filtered))
	}
}

func TestRecyclingLocations_HaveUniqueIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, loc := range RecyclingLocations() {
		if seen[loc.ID] {
			t.Errorf("Duplicate location ID: %d", loc.ID)
		}
		seen[loc.ID] = true
	}
}
