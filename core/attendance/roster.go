package attendance

import "fmt"

const RosterSize = 6

var (
	firstNames = [...]string{
		"أحمد", "مريم", "سارة", "يوسف", "راشد", "ليان", "جميلة", "عبدالله", "هند", "إسماعيل",
		"محمد", "آمنة", "معاذ", "أروى", "نورة", "خالد", "أسماء", "ريم", "فاطمة", "حسن",
	}
	lastNames = [...]string{
		"الهاشمي", "العريمي", "البوسعيدي", "الشكيلي", "الكندي", "الهنائي", "البلوشي",
		"المهري", "الشامسي", "الغافري", "العوفي", "الحارثي", "الهادي", "البادي",
	}
)

// GenerateRoster deterministically builds the roster of a grade/class section.
// Every student starts Present with an empty note.
func GenerateRoster(grade, classNo int) []Student {
	seed := grade*100 + classNo
	students := make([]Student, 0, RosterSize)
	for i := 0; i < RosterSize; i++ {
		fname := firstNames[(seed+i*3)%len(firstNames)]
		lname := lastNames[(seed+i*5+7)%len(lastNames)]
		students = append(students, Student{
			ID:            seed*10 + i,
			Name:          fname + " " + lname,
			Grade:         grade,
			ClassNo:       classNo,
			GuardianPhone: fmt.Sprintf("9%07d", (seed*98765+i*12345)%10000000),
			Status:        StatusPresent,
		})
	}
	return students
}
