package fines

import (
	"testing"
	"time"

	"alwafi_go/models"
)

func TestAppend(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	list, fine, err := Append(nil, models.FineReasonPhone, "", 3, "أ. أحمد", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 fine, got %d", len(list))
	}
	if fine.ID == "" {
		t.Fatalf("fine must get an id")
	}
	if fine.Paid {
		t.Fatalf("new fine must start unpaid")
	}
	if fine.IssuedByID != 3 || fine.IssuedByName != "أ. أحمد" {
		t.Fatalf("issuer not recorded: %+v", fine)
	}
	if !fine.IssuedAt.Equal(now) {
		t.Fatalf("expected issued_at %v, got %v", now, fine.IssuedAt)
	}

	list, second, err := Append(list, models.FineReasonLanguage, "ignored", 4, "أ. علي", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.OtherNote != "" {
		t.Fatalf("note must only be kept for reason=other, got %q", second.OtherNote)
	}
	if list[0].ID != fine.ID || list[1].ID != second.ID {
		t.Fatalf("insertion order must be preserved")
	}
}

func TestAppendOtherKeepsNote(t *testing.T) {
	_, fine, err := Append(nil, models.FineReasonOther, "تأخر عن الحصة", 1, "أ. محمد", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fine.OtherNote != "تأخر عن الحصة" {
		t.Fatalf("expected note kept for reason=other, got %q", fine.OtherNote)
	}
}

func TestAppendInvalidReason(t *testing.T) {
	for _, reason := range []string{"", "late", "PHONE"} {
		if _, _, err := Append(nil, reason, "", 1, "x", time.Now()); err != ErrInvalidReason {
			t.Fatalf("reason %q: expected ErrInvalidReason, got %v", reason, err)
		}
	}
}

func TestRemoveByID(t *testing.T) {
	now := time.Now()
	list, a, _ := Append(nil, models.FineReasonPhone, "", 1, "x", now)
	list, b, _ := Append(list, models.FineReasonLanguage, "", 1, "x", now)
	list, c, _ := Append(list, models.FineReasonPhone, "", 1, "x", now)

	out, removed := RemoveByID(list, b.ID)
	if !removed {
		t.Fatalf("expected removal")
	}
	if len(out) != 2 || out[0].ID != a.ID || out[1].ID != c.ID {
		t.Fatalf("wrong survivors: %+v", out)
	}

	out2, removed := RemoveByID(out, "missing")
	if removed {
		t.Fatalf("missing id must be a no-op")
	}
	if len(out2) != 2 {
		t.Fatalf("no-op removal must not change the list")
	}
}

func TestTogglePaid(t *testing.T) {
	now := time.Now()
	list, fine, _ := Append(nil, models.FineReasonPhone, "", 1, "x", now)

	out, ok := TogglePaid(list, fine.ID)
	if !ok || !out[0].Paid {
		t.Fatalf("first toggle should mark paid")
	}
	if list[0].Paid {
		t.Fatalf("toggle must not mutate the input list")
	}

	out, ok = TogglePaid(out, fine.ID)
	if !ok || out[0].Paid {
		t.Fatalf("second toggle should mark unpaid")
	}
	if out[0].Reason != fine.Reason || !out[0].IssuedAt.Equal(fine.IssuedAt) {
		t.Fatalf("toggle must leave other fields untouched")
	}

	if _, ok := TogglePaid(out, "missing"); ok {
		t.Fatalf("missing id must be a no-op")
	}
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	entries := []StudentFines{
		{
			StudentID: 1, LevelID: "level_2a",
			Fines: []models.Fine{
				{ID: "a", Reason: models.FineReasonPhone, IssuedAt: now},
				{ID: "b", Reason: models.FineReasonLanguage, IssuedAt: now, Paid: true},
			},
		},
		{
			StudentID: 2, LevelID: "level_6a",
			Fines: []models.Fine{
				{ID: "c", Reason: models.FineReasonOther, IssuedAt: now},
			},
		},
		{StudentID: 3, LevelID: "level_8"},
	}

	s := Summarize(entries)
	if s.Total != 3 {
		t.Fatalf("expected total 3, got %d", s.Total)
	}
	if s.Unpaid != 2 {
		t.Fatalf("expected unpaid 2, got %d", s.Unpaid)
	}
	if s.PerLevel["level_2a"] != 2 || s.PerLevel["level_6a"] != 1 {
		t.Fatalf("wrong per-level counts: %v", s.PerLevel)
	}
	if _, ok := s.PerLevel["level_8"]; ok {
		t.Fatalf("students with no fines must not appear in per-level counts")
	}
}

func TestFlattenSorted(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []StudentFines{
		{
			StudentID: 1, StudentName: "طالب ١", LevelID: "level_2a",
			Fines: []models.Fine{
				{ID: "old", IssuedAt: base},
				{ID: "newest", IssuedAt: base.Add(48 * time.Hour)},
			},
		},
		{
			StudentID: 2, StudentName: "طالب ٢", LevelID: "level_4a",
			Fines: []models.Fine{
				{ID: "middle", IssuedAt: base.Add(24 * time.Hour)},
			},
		},
	}

	out := FlattenSorted(entries)
	if len(out) != 3 {
		t.Fatalf("expected 3 fines, got %d", len(out))
	}
	wantOrder := []string{"newest", "middle", "old"}
	for i, id := range wantOrder {
		if out[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, out[i].ID)
		}
	}
	if out[1].StudentID != 2 || out[1].LevelID != "level_4a" {
		t.Fatalf("student identity must be joined onto each fine: %+v", out[1])
	}
}
