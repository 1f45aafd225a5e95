// Package program holds the static catalog of the Al-Wafi program: levels
// with their subjects, the weekly class schedules and the academic
// calendar. The catalog is the immutable default; admin overrides are
// merged on top of it by services/levelconfig.
package program

// Level departments
const (
	DepartmentArabic  = "arabic"
	DepartmentIslamic = "islamic"
)

type Info struct {
	Name         string `json:"name"`
	Number       int    `json:"number"`
	Semester     string `json:"semester"`
	HijriYear    string `json:"hijri_year"`
	ApprovalDate string `json:"approval_date"`
}

var ProgramInfo = Info{
	Name:         "برنامج الوافي",
	Number:       16,
	Semester:     "الفصل الدراسي الثاني",
	HijriYear:    "1447هـ",
	ApprovalDate: "13/07/1447هـ",
}

type Subject struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Level struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ShortName  string    `json:"short_name"`
	Department string    `json:"department"` // arabic, islamic
	Leader     string    `json:"leader"`
	Subjects   []Subject `json:"subjects"`
}

// LevelOrder is the display order of the catalog.
var LevelOrder = []string{
	"level_2a", "level_2b", "level_2c", "level_2d",
	"level_4a", "level_4b", "level_4c",
	"level_6a", "level_6b",
	"level_8", "level_10",
}

var level2Subjects = []Subject{
	{Name: "لغة عربية", Icon: "📖"},
	{Name: "ثقافة", Icon: "🌍"},
	{Name: "قرآن", Icon: "📿"},
	{Name: "محادثة", Icon: "💬"},
	{Name: "دليل الطالب", Icon: "📚"},
	{Name: "النشاط", Icon: "⭐"},
}

var level4Subjects = []Subject{
	{Name: "فهم المقروء", Icon: "📖"},
	{Name: "المفردات", Icon: "🔤"},
	{Name: "قراءة موسعة", Icon: "📚"},
	{Name: "القواعد", Icon: "📐"},
	{Name: "ثقافة", Icon: "🌍"},
	{Name: "فهم المسموع", Icon: "👂"},
	{Name: "المحادثة", Icon: "💬"},
	{Name: "تعبير", Icon: "✍️"},
	{Name: "قرآن", Icon: "📿"},
	{Name: "ألعاب لغوية", Icon: "🎮"},
	{Name: "النشاط", Icon: "⭐"},
}

var Levels = map[string]Level{
	"level_2a": {
		ID:         "level_2a",
		Name:       "المستوى الثاني (أ)",
		ShortName:  "٢أ",
		Department: DepartmentArabic,
		Leader:     "أ. أحمد عطية",
		Subjects:   level2Subjects,
	},
	"level_2b": {
		ID:         "level_2b",
		Name:       "المستوى الثاني (ب)",
		ShortName:  "٢ب",
		Department: DepartmentArabic,
		Leader:     "أ. محمد عبد المعبود",
		Subjects:   level2Subjects,
	},
	"level_2c": {
		ID:         "level_2c",
		Name:       "المستوى الثاني (ج)",
		ShortName:  "٢ج",
		Department: DepartmentArabic,
		Leader:     "أ. أحمد الليثي",
		Subjects:   level2Subjects,
	},
	"level_2d": {
		ID:         "level_2d",
		Name:       "المستوى الثاني (د)",
		ShortName:  "٢د",
		Department: DepartmentArabic,
		Leader:     "أ. علي خلف",
		Subjects:   level2Subjects,
	},
	"level_4a": {
		ID:         "level_4a",
		Name:       "المستوى الرابع (أ)",
		ShortName:  "٤أ",
		Department: DepartmentArabic,
		Leader:     "أ. أحمد نصري",
		Subjects:   level4Subjects,
	},
	"level_4b": {
		ID:         "level_4b",
		Name:       "المستوى الرابع (ب)",
		ShortName:  "٤ب",
		Department: DepartmentArabic,
		Leader:     "أ. عصام صبري",
		Subjects:   level4Subjects,
	},
	"level_4c": {
		ID:         "level_4c",
		Name:       "المستوى الرابع (ج)",
		ShortName:  "٤ج",
		Department: DepartmentArabic,
		Leader:     "أ. أمين محمد",
		Subjects:   level4Subjects,
	},
	"level_6a": {
		ID:         "level_6a",
		Name:       "المستوى السادس (أ)",
		ShortName:  "٦أ",
		Department: DepartmentIslamic,
		Leader:     "أ. مصطفى عبد ربه",
		Subjects: []Subject{
			{Name: "نحو", Icon: "📐"},
			{Name: "تفسير", Icon: "📖"},
			{Name: "العقيدة", Icon: "🕌"},
			{Name: "فقه", Icon: "⚖️"},
			{Name: "سيرة", Icon: "📜"},
			{Name: "قرآن", Icon: "📿"},
			{Name: "حديث", Icon: "💬"},
			{Name: "قراءة", Icon: "📚"},
		},
	},
	"level_6b": {
		ID:         "level_6b",
		Name:       "المستوى السادس (ب)",
		ShortName:  "٦ب",
		Department: DepartmentIslamic,
		Leader:     "أ. طلال العوبثاني",
		Subjects: []Subject{
			{Name: "العقيدة", Icon: "🕌"},
			{Name: "نحو", Icon: "📐"},
			{Name: "فقه", Icon: "⚖️"},
			{Name: "تفسير", Icon: "📖"},
			{Name: "سيرة", Icon: "📜"},
			{Name: "حديث", Icon: "💬"},
			{Name: "قراءة", Icon: "📚"},
			{Name: "قرآن", Icon: "📿"},
		},
	},
	"level_8": {
		ID:         "level_8",
		Name:       "المستوى الثامن",
		ShortName:  "٨",
		Department: DepartmentIslamic,
		Leader:     "",
		Subjects: []Subject{
			{Name: "فقه", Icon: "⚖️"},
			{Name: "عقيدة", Icon: "🕌"},
			{Name: "نحو", Icon: "📐"},
			{Name: "حديث", Icon: "💬"},
			{Name: "تاريخ", Icon: "🏛️"},
			{Name: "قراءة", Icon: "📚"},
			{Name: "تفسير", Icon: "📖"},
			{Name: "مذاهب", Icon: "🗺️"},
			{Name: "دعوة", Icon: "📣"},
			{Name: "قرآن", Icon: "📿"},
		},
	},
	"level_10": {
		ID:         "level_10",
		Name:       "المستوى العاشر",
		ShortName:  "١٠",
		Department: DepartmentIslamic,
		Leader:     "",
		Subjects: []Subject{
			{Name: "عقيدة", Icon: "🕌"},
			{Name: "تفسير", Icon: "📖"},
			{Name: "فقه", Icon: "⚖️"},
			{Name: "مذاهب", Icon: "🗺️"},
			{Name: "حديث", Icon: "💬"},
			{Name: "نحو", Icon: "📐"},
			{Name: "قرآن", Icon: "📿"},
			{Name: "دعوة", Icon: "📣"},
			{Name: "قراءة", Icon: "📚"},
			{Name: "بحث", Icon: "🔍"},
		},
	},
}

// LevelByID looks up a default catalog entry.
func LevelByID(id string) (Level, bool) {
	l, ok := Levels[id]
	return l, ok
}

// LevelsByDepartment returns catalog entries of one department in display order.
func LevelsByDepartment(department string) []Level {
	var out []Level
	for _, id := range LevelOrder {
		if l := Levels[id]; l.Department == department {
			out = append(out, l)
		}
	}
	return out
}

// OrderedLevels returns the full catalog in display order.
func OrderedLevels() []Level {
	out := make([]Level, 0, len(LevelOrder))
	for _, id := range LevelOrder {
		out = append(out, Levels[id])
	}
	return out
}

type ScheduleSlot struct {
	Time    string `json:"time"`
	Label   string `json:"label"`
	IsBreak bool   `json:"is_break,omitempty"`
}

var FridaySchedule = []ScheduleSlot{
	{Time: "١:٠٠ – ١:٤٥", Label: "الحصة الأولى"},
	{Time: "١:٤٥ – ٢:٣٠", Label: "الحصة الثانية"},
	{Time: "٢:٣٠ – ٣:١٥", Label: "الحصة الثالثة"},
	{Time: "٣:١٥ – ٤:٠٠", Label: "صلاة العصر", IsBreak: true},
	{Time: "٤:٠٠ – ٤:٤٥", Label: "الحصة الرابعة"},
	{Time: "٤:٤٥ – ٥:٣٠", Label: "الحصة الخامسة"},
}

var SaturdaySchedule = []ScheduleSlot{
	{Time: "٨:٠٠ – ٨:٤٥", Label: "الحصة الأولى"},
	{Time: "٨:٤٥ – ٩:٣٠", Label: "الحصة الثانية"},
	{Time: "٩:٣٠ – ٩:٥٠", Label: "فسحة", IsBreak: true},
	{Time: "٩:٥٠ – ١٠:٣٥", Label: "الحصة الثالثة"},
	{Time: "١٠:٣٥ – ١١:٢٠", Label: "الحصة الرابعة"},
	{Time: "١١:٢٠ – ١٢:٠٥", Label: "الحصة الخامسة"},
	{Time: "١٢:٠٥ – ١٢:٣٥", Label: "صلاة الظهر", IsBreak: true},
	{Time: "١٢:٣٥ – ١:٢٠", Label: "الحصة السادسة"},
	{Time: "١:٢٠ – ٢:٠٥", Label: "الحصة السابعة"},
}

// Calendar event types
const (
	EventStudy      = "study"
	EventExamFirst  = "exam_first"
	EventExamSecond = "exam_second"
	EventFinalExam  = "final_exam"
	EventBreak      = "break"
	EventCeremony   = "ceremony"
)

type CalendarEvent struct {
	Gregorian string `json:"gregorian"` // YYYY-MM-DD
	Hijri     string `json:"hijri"`
	DayAr     string `json:"day_ar"`
	Note      string `json:"note"`
	Type      string `json:"type"`
}

var AcademicCalendar = []CalendarEvent{
	{Gregorian: "2025-12-26", Hijri: "1447-07-06", DayAr: "الجمعة", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2025-12-27", Hijri: "1447-07-07", DayAr: "السبت", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-02", Hijri: "1447-07-13", DayAr: "الجمعة", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-03", Hijri: "1447-07-14", DayAr: "السبت", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-09", Hijri: "1447-07-20", DayAr: "الجمعة", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-10", Hijri: "1447-07-21", DayAr: "السبت", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-16", Hijri: "1447-07-27", DayAr: "الجمعة", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-17", Hijri: "1447-07-28", DayAr: "السبت", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-23", Hijri: "1447-08-04", DayAr: "الجمعة", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-24", Hijri: "1447-08-05", DayAr: "السبت", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-30", Hijri: "1447-08-11", DayAr: "الجمعة", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-01-31", Hijri: "1447-08-12", DayAr: "السبت", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-02-06", Hijri: "1447-08-18", DayAr: "الجمعة", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-02-07", Hijri: "1447-08-19", DayAr: "السبت", Note: "دراسة", Type: EventStudy},
	{Gregorian: "2026-02-13", Hijri: "1447-08-25", DayAr: "الجمعة", Note: "اختبار الشهر الأول", Type: EventExamFirst},
	{Gregorian: "2026-02-14", Hijri: "1447-08-26", DayAr: "السبت", Note: "اختبار الشهر الأول (شرعي)", Type: EventExamFirst},
	{Gregorian: "2026-02-20", Hijri: "1447-09-03", DayAr: "الجمعة", Note: "بداية إجازة رمضان والعيد (٦ أسابيع)", Type: EventBreak},
	{Gregorian: "2026-04-03", Hijri: "1447-10-15", DayAr: "الجمعة", Note: "اختبار الشهر الأول", Type: EventExamFirst},
	{Gregorian: "2026-04-04", Hijri: "1447-10-16", DayAr: "السبت", Note: "اختبار الشهر الأول (لغوي + شرعي)", Type: EventExamFirst},
	{Gregorian: "2026-05-01", Hijri: "1447-11-14", DayAr: "الجمعة", Note: "اختبار الشهر الثاني", Type: EventExamSecond},
	{Gregorian: "2026-05-02", Hijri: "1447-11-15", DayAr: "السبت", Note: "اختبار الشهر الثاني (شرعي)", Type: EventExamSecond},
	{Gregorian: "2026-05-08", Hijri: "1447-11-21", DayAr: "الجمعة", Note: "اختبار الشهر الثاني", Type: EventExamSecond},
	{Gregorian: "2026-05-09", Hijri: "1447-11-22", DayAr: "السبت", Note: "اختبار الشهر الثاني (لغوي + شرعي)", Type: EventExamSecond},
	{Gregorian: "2026-05-22", Hijri: "1447-12-04", DayAr: "الجمعة", Note: "بداية الاختبارات النهائية (مجموعة أ)", Type: EventFinalExam},
	{Gregorian: "2026-05-23", Hijri: "1447-12-05", DayAr: "السبت", Note: "الاختبارات النهائية (مجموعة ب)", Type: EventFinalExam},
	{Gregorian: "2026-06-05", Hijri: "1447-12-19", DayAr: "الجمعة", Note: "الاختبارات النهائية (مجموعة ج)", Type: EventFinalExam},
	{Gregorian: "2026-06-06", Hijri: "1447-12-20", DayAr: "السبت", Note: "الاختبارات النهائية (مجموعة د)", Type: EventFinalExam},
	{Gregorian: "2026-06-19", Hijri: "1448-01-04", DayAr: "الجمعة", Note: "الحفل الختامي", Type: EventCeremony},
}

var SpecialActivities = []string{
	"مسابقة الأندية",
	"عمرة الوافي",
	"المخيم الشرعي",
	"المخيم اللغوي",
	"إجازة عيد الأضحى",
}
