package announcements

import (
	"testing"
	"time"
)

func TestAppendTo(t *testing.T) {
	a := Announcement{ID: "a1", Text: "واجب جديد", PostedAt: time.Now(), TeacherName: "أ. أحمد"}

	data := AppendTo(nil, "قرآن", a)
	if len(data["قرآن"]) != 1 || data["قرآن"][0].ID != "a1" {
		t.Fatalf("append to nil board failed: %+v", data)
	}

	b := Announcement{ID: "a2", Text: "تذكير", PostedAt: time.Now()}
	data = AppendTo(data, "قرآن", b)
	if len(data["قرآن"]) != 2 {
		t.Fatalf("expected 2 announcements, got %d", len(data["قرآن"]))
	}
	if data["قرآن"][0].ID != "a1" || data["قرآن"][1].ID != "a2" {
		t.Fatalf("board must stay oldest first")
	}

	data = AppendTo(data, "نحو", Announcement{ID: "a3"})
	if len(data["قرآن"]) != 2 || len(data["نحو"]) != 1 {
		t.Fatalf("subjects must not leak into each other: %+v", data)
	}
}

func TestRemoveFrom(t *testing.T) {
	data := Data{
		"قرآن": {{ID: "a1"}, {ID: "a2"}, {ID: "a3"}},
	}

	out, removed := RemoveFrom(data, "قرآن", "a2")
	if !removed {
		t.Fatalf("expected removal")
	}
	list := out["قرآن"]
	if len(list) != 2 || list[0].ID != "a1" || list[1].ID != "a3" {
		t.Fatalf("wrong survivors: %+v", list)
	}

	if _, removed := RemoveFrom(out, "قرآن", "missing"); removed {
		t.Fatalf("missing id must be a no-op")
	}
	if _, removed := RemoveFrom(out, "فقه", "a1"); removed {
		t.Fatalf("missing subject must be a no-op")
	}
}
