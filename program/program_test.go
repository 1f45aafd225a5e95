package program

import "testing"

func TestLevelOrderMatchesCatalog(t *testing.T) {
	if len(LevelOrder) != len(Levels) {
		t.Fatalf("order has %d ids, catalog has %d levels", len(LevelOrder), len(Levels))
	}
	for _, id := range LevelOrder {
		l, ok := Levels[id]
		if !ok {
			t.Fatalf("ordered id %q missing from catalog", id)
		}
		if l.ID != id {
			t.Fatalf("level %q stored under wrong key %q", l.ID, id)
		}
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	for id, l := range Levels {
		if l.Name == "" || l.ShortName == "" {
			t.Fatalf("level %q missing name or short name", id)
		}
		if l.Department != DepartmentArabic && l.Department != DepartmentIslamic {
			t.Fatalf("level %q has unknown department %q", id, l.Department)
		}
		if len(l.Subjects) == 0 {
			t.Fatalf("level %q has no subjects", id)
		}
		for _, s := range l.Subjects {
			if s.Name == "" {
				t.Fatalf("level %q has a subject without a name", id)
			}
		}
	}
}

func TestLevelsByDepartment(t *testing.T) {
	arabic := LevelsByDepartment(DepartmentArabic)
	islamic := LevelsByDepartment(DepartmentIslamic)

	if len(arabic)+len(islamic) != len(Levels) {
		t.Fatalf("departments must partition the catalog: %d + %d != %d", len(arabic), len(islamic), len(Levels))
	}
	for _, l := range arabic {
		if l.Department != DepartmentArabic {
			t.Fatalf("level %q leaked into arabic listing", l.ID)
		}
	}
	if len(LevelsByDepartment("math")) != 0 {
		t.Fatalf("unknown department must return nothing")
	}
}

func TestOrderedLevels(t *testing.T) {
	out := OrderedLevels()
	if len(out) != len(LevelOrder) {
		t.Fatalf("expected %d levels, got %d", len(LevelOrder), len(out))
	}
	for i, id := range LevelOrder {
		if out[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, out[i].ID)
		}
	}
}

func TestSchedulesWellFormed(t *testing.T) {
	for _, sched := range [][]ScheduleSlot{FridaySchedule, SaturdaySchedule} {
		for i, slot := range sched {
			if slot.Time == "" || slot.Label == "" {
				t.Fatalf("slot %d missing time or label", i)
			}
		}
	}
}

func TestAcademicCalendarDates(t *testing.T) {
	for i, ev := range AcademicCalendar {
		if len(ev.Gregorian) != 10 {
			t.Fatalf("event %d has malformed gregorian date %q", i, ev.Gregorian)
		}
		if ev.Type == "" {
			t.Fatalf("event %d missing type", i)
		}
		if i > 0 && ev.Gregorian < AcademicCalendar[i-1].Gregorian {
			t.Fatalf("calendar must be chronological, event %d (%s) before %s", i, ev.Gregorian, AcademicCalendar[i-1].Gregorian)
		}
	}
}
