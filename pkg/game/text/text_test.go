package text

import "testing"

func TestGet_Formats(t *testing.T) {
	got := Get("MONSTER_COUNT", 12)
	if got != "12 monsters lurk in the dark" {
		t.Errorf("Get(MONSTER_COUNT) = %q", got)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	if got := Get("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("Get(NOT_A_KEY) = %q, want the key back", got)
	}
}

func TestGet_EveryKeyTranslated(t *testing.T) {
	keys := []string{
		"LEVEL_SUMMARY", "PLAYER_START", "AMULET_AT", "MONSTER_COUNT",
		"FORTRESS_PLACED", "FORTRESS_MISSING", "FLOOR_TILES", "LEGEND", "WROTE_FILE",
	}
	for _, k := range keys {
		if Get(k) == k {
			t.Errorf("Get(%q) has no translation", k)
		}
	}
}
