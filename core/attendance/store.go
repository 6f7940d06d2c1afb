package attendance

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core"
)

// StorageKey is the key the attendance document is persisted under.
const StorageKey = "attendanceData"

var errUnrecognizedShape = errors.New("attendance data format not recognized")

// Store reads and writes the attendance document.
// Two persisted shapes are accepted: the current {date, students} object and
// the legacy bare array of students, which is wrapped with a fresh timestamp.
type Store struct {
	kv         core.StorageProvider
	logger     core.Logger
	dateLayout string
}

func NewStore(kv core.StorageProvider, logger core.Logger, dateLayout string) *Store {
	return &Store{kv: kv, logger: logger, dateLayout: dateLayout}
}

// Timestamp formats the current time with the store's date layout.
func (s *Store) Timestamp() string {
	return Timestamp(s.dateLayout)
}

// Load returns the persisted document, or false when there is none.
// Unreadable or unrecognized values are logged and reported as absent.
func (s *Store) Load() (Document, bool) {
	raw, found, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Error("attendance: failed to read "+StorageKey, errors.Wrap(err, "reading attendance data"))
		return Document{}, false
	}
	if !found {
		return Document{}, false
	}

	doc, err := s.decode([]byte(raw))
	if err != nil {
		s.logger.Warn("attendance: ignoring stored "+StorageKey, err)
		return Document{}, false
	}
	return doc, true
}

func (s *Store) decode(data []byte) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Document{}, errUnrecognizedShape
	}

	switch data[0] {
	case '[': // legacy
		var students []Student
		if err := json.Unmarshal(data, &students); err != nil {
			return Document{}, errors.Wrap(err, "decoding legacy attendance data")
		}
		return Document{Date: s.Timestamp(), Students: students}, nil
	case '{':
		var obj struct {
			Date     string          `json:"date"`
			Students json.RawMessage `json:"students"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return Document{}, errors.Wrap(err, "decoding attendance data")
		}
		students := bytes.TrimSpace(obj.Students)
		if len(students) == 0 || students[0] != '[' {
			return Document{}, errUnrecognizedShape
		}
		doc := Document{Date: obj.Date}
		if err := json.Unmarshal(students, &doc.Students); err != nil {
			return Document{}, errors.Wrap(err, "decoding attendance students")
		}
		return doc, nil
	default:
		return Document{}, errUnrecognizedShape
	}
}

// Save replaces the persisted document with doc.
func (s *Store) Save(doc Document) error {
	if doc.Students == nil {
		doc.Students = []Student{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding attendance data")
	}
	if err = s.kv.Set(StorageKey, string(data)); err != nil {
		return errors.Wrap(err, "saving attendance data")
	}
	return nil
}
