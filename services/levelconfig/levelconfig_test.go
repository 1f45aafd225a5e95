package levelconfig

import (
	"testing"

	"alwafi_go/program"
)

func TestMergeLevelNoOverride(t *testing.T) {
	base, _ := program.LevelByID("level_2a")

	merged, err := MergeLevel("level_2a", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged.Name != base.Name || merged.ShortName != base.ShortName || merged.Leader != base.Leader {
		t.Fatalf("no-override merge must return the defaults: %+v", merged)
	}
	if len(merged.Subjects) != len(base.Subjects) {
		t.Fatalf("subjects changed without an override")
	}
}

func TestMergeLevelPartialOverride(t *testing.T) {
	cfg := Config{
		"level_2a": {Name: "المستوى الثاني المطور"},
	}

	merged, err := MergeLevel("level_2a", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base, _ := program.LevelByID("level_2a")
	if merged.Name != "المستوى الثاني المطور" {
		t.Fatalf("overridden name not applied: %q", merged.Name)
	}
	if merged.ShortName != base.ShortName || merged.Leader != base.Leader {
		t.Fatalf("untouched fields must keep the defaults")
	}
	if len(merged.Subjects) != len(base.Subjects) {
		t.Fatalf("subjects must stay default when not overridden")
	}
}

func TestMergeLevelEmptyLeaderHonored(t *testing.T) {
	empty := ""
	cfg := Config{
		"level_2a": {Leader: &empty},
	}

	merged, err := MergeLevel("level_2a", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged.Leader != "" {
		t.Fatalf("explicitly empty leader must clear the default, got %q", merged.Leader)
	}
}

func TestMergeLevelSubjectsReplacedWholesale(t *testing.T) {
	cfg := Config{
		"level_4a": {Subjects: []program.Subject{{Name: "مادة واحدة", Icon: "📘"}}},
	}

	merged, err := MergeLevel("level_4a", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged.Subjects) != 1 || merged.Subjects[0].Name != "مادة واحدة" {
		t.Fatalf("subjects must be replaced wholesale, got %+v", merged.Subjects)
	}
}

func TestMergeLevelUnknown(t *testing.T) {
	if _, err := MergeLevel("level_99", Config{}); err != ErrUnknownLevel {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestMergeAllOrderAndOverride(t *testing.T) {
	cfg := Config{
		"level_6a": {ShortName: "٦*"},
	}

	out := MergeAll(cfg)
	if len(out) != len(program.LevelOrder) {
		t.Fatalf("expected %d levels, got %d", len(program.LevelOrder), len(out))
	}
	for i, id := range program.LevelOrder {
		if out[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, out[i].ID)
		}
		if id == "level_6a" && out[i].ShortName != "٦*" {
			t.Fatalf("override not applied in MergeAll")
		}
	}
}
