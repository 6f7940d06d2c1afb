package banner

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core"
)

// StorageKey is the key the banner list is persisted under.
const StorageKey = "banners"

var (
	// Defaults are shown until the list is first modified.
	Defaults = []string{
		"/ads/arabic-teachers.jpg",
		"/ads/banner2.jpg",
		"/ads/banner3.jpg",
	}

	// errors
	ErrNotFound = errors.New("banner not found")
)

// NewBanner is an image reference to add to the list.
type NewBanner struct {
	Ref string `json:"ref" validate:"notblank"`
}

func (nb *NewBanner) Validate() error {
	nb.Ref = core.CleanString(nb.Ref)
	return core.Validate.Struct(nb)
}

// List is the ordered list of promotional banner images.
type List struct {
	kv     core.StorageProvider
	logger core.Logger
}

func NewList(kv core.StorageProvider, logger core.Logger) *List {
	return &List{kv: kv, logger: logger}
}

// All returns the persisted banners, or the defaults when none were saved.
// A corrupt stored value is logged and replaced by the defaults.
func (l *List) All() ([]string, error) {
	raw, found, err := l.kv.Get(StorageKey)
	if err != nil {
		return nil, errors.Wrap(err, "reading banners")
	}
	if !found {
		return defaults(), nil
	}

	var banners []string
	if err = json.Unmarshal([]byte(raw), &banners); err == nil && banners == nil {
		err = errors.New("banners is null")
	}
	if err != nil {
		l.logger.Warn("banner: ignoring stored "+StorageKey, errors.Wrap(err, "decoding banners"))
		return defaults(), nil
	}
	return banners, nil
}

// Add appends ref to the list and persists it.
func (l *List) Add(ref string) ([]string, error) {
	nb := NewBanner{Ref: ref}
	if err := nb.Validate(); err != nil {
		return nil, err
	}
	banners, err := l.All()
	if err != nil {
		return nil, err
	}
	banners = append(banners, nb.Ref)
	if err = l.save(banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// Remove deletes the banner at index, keeping the others in order.
func (l *List) Remove(index int) ([]string, error) {
	banners, err := l.All()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(banners) {
		return nil, errors.Wrapf(ErrNotFound, "index %d", index)
	}
	updated := make([]string, 0, len(banners)-1)
	updated = append(updated, banners[:index]...)
	updated = append(updated, banners[index+1:]...)
	if err = l.save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Reset forgets the stored list so the defaults show again.
func (l *List) Reset() ([]string, error) {
	if err := l.kv.Delete(StorageKey); err != nil {
		return nil, errors.Wrap(err, "resetting banners")
	}
	return defaults(), nil
}

func (l *List) save(banners []string) error {
	data, err := json.Marshal(banners)
	if err != nil {
		return errors.Wrap(err, "encoding banners")
	}
	return errors.Wrap(l.kv.Set(StorageKey, string(data)), "saving banners")
}

// Rotate returns the banner shown at a carousel tick, or "" for an empty list.
func Rotate(banners []string, tick int) string {
	if len(banners) == 0 {
		return ""
	}
	idx := tick % len(banners)
	if idx < 0 {
		idx += len(banners)
	}
	return banners[idx]
}

func defaults() []string {
	banners := make([]string, len(Defaults))
	copy(banners, Defaults)
	return banners
}
