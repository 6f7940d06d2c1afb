package attendance

import (
	"github.com/trezcool/hadir/core"
)

// Sheet is the attendance being taken for one grade/class section.
type Sheet struct {
	Grade    int       `json:"grade" validate:"min=1,max=4"`
	ClassNo  int       `json:"classNo" validate:"min=1,max=4"`
	Students []Student `json:"students"`
}

// NewSheet generates the roster of the section, everyone Present.
func NewSheet(grade, classNo int) (*Sheet, error) {
	sh := &Sheet{Grade: grade, ClassNo: classNo}
	if err := core.Validate.Struct(sh); err != nil {
		return nil, err
	}
	sh.Students = GenerateRoster(grade, classNo)
	return sh, nil
}

// Mark sets the status and note of the student with the given id.
func (sh *Sheet) Mark(id int, status Status, note string) error {
	if !status.Valid() {
		return core.NewValidationError(ErrInvalidStatus, core.FieldError{Field: "status", Error: statusText})
	}
	for i := range sh.Students {
		if sh.Students[i].ID == id {
			sh.Students[i].Status = status
			sh.Students[i].Note = note
			return nil
		}
	}
	return ErrStudentNotFound
}

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Save stamps the students with the current time and replaces the stored document.
func (svc *Service) Save(students []Student) (Document, error) {
	doc := Document{
		Date:     svc.store.Timestamp(),
		Students: students,
	}
	if doc.Students == nil {
		doc.Students = []Student{}
	}
	if err := svc.store.Save(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (svc *Service) Load() (Document, bool) {
	return svc.store.Load()
}
