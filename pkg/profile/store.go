package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// Store is the persistence contract for the profile. Get hydrates
// defaults for any missing field; Save flushes every field
// synchronously. Drafts and stamps are independent keys so editor
// autosave never rewrites the whole profile.
type Store interface {
	Get() (Profile, error)
	Save(Profile) error

	Draft(id string) (string, error)
	SetDraft(id, text string) error
	ClearDraft(id string) error

	Stamp(key string) (time.Time, bool)
	SetStamp(key string, t time.Time) error

	History() []HistoryEntry
	AppendHistory(HistoryEntry) error

	BasePath() string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Store backed by diskv under the config base path.
func Open(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type store struct {
	d        *diskv.Diskv
	basePath string
}

const (
	keyName        = "name"
	keyTheme       = "theme"
	keyMood        = "mood"
	keyMoodDate    = "moodDate"
	keyLastVisit   = "lastVisit"
	keyReviewCount = "reviewCount"
	keyShareCount  = "shareCount"
	keyHistory     = "history"

	draftPrefix = "drafts-"
	stampPrefix = "stamps-"
)

func (s *store) Get() (Profile, error) {
	p := Profile{
		Name:     s.readString(keyName),
		Theme:    Theme(s.readString(keyTheme)),
		Mood:     s.readString(keyMood),
		MoodDate: s.readString(keyMoodDate),
	}
	if raw := s.readString(keyLastVisit); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			p.LastVisit = t
		}
	}
	p.ReviewCount = s.readInt(keyReviewCount)
	p.ShareCount = s.readInt(keyShareCount)
	p.Defaults()
	return p, nil
}

func (s *store) Save(p Profile) error {
	p.Defaults()
	writes := map[string]string{
		keyName:        p.Name,
		keyTheme:       string(p.Theme),
		keyMood:        p.Mood,
		keyMoodDate:    p.MoodDate,
		keyReviewCount: strconv.Itoa(p.ReviewCount),
		keyShareCount:  strconv.Itoa(p.ShareCount),
	}
	if !p.LastVisit.IsZero() {
		writes[keyLastVisit] = p.LastVisit.UTC().Format(time.RFC3339)
	}
	for key, val := range writes {
		if err := s.d.Write(key, []byte(val)); err != nil {
			return fmt.Errorf("profile: write %s: %w", key, err)
		}
	}
	return nil
}

func (s *store) Draft(id string) (string, error) {
	if id == "" {
		return "", errors.New("profile: draft id required")
	}
	return s.readString(draftPrefix + id), nil
}

func (s *store) SetDraft(id, text string) error {
	if id == "" {
		return errors.New("profile: draft id required")
	}
	if err := s.d.Write(draftPrefix+id, []byte(text)); err != nil {
		return fmt.Errorf("profile: write draft %s: %w", id, err)
	}
	return nil
}

func (s *store) ClearDraft(id string) error {
	if id == "" {
		return errors.New("profile: draft id required")
	}
	if !s.d.Has(draftPrefix + id) {
		return nil
	}
	if err := s.d.Erase(draftPrefix + id); err != nil {
		return fmt.Errorf("profile: erase draft %s: %w", id, err)
	}
	return nil
}

func (s *store) Stamp(key string) (time.Time, bool) {
	raw := s.readString(stampPrefix + key)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *store) SetStamp(key string, t time.Time) error {
	if err := s.d.Write(stampPrefix+key, []byte(t.UTC().Format(time.RFC3339))); err != nil {
		return fmt.Errorf("profile: write stamp %s: %w", key, err)
	}
	return nil
}

func (s *store) History() []HistoryEntry {
	raw, err := s.d.Read(keyHistory)
	if err != nil {
		return nil
	}
	var list []HistoryEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func (s *store) AppendHistory(e HistoryEntry) error {
	list := append(s.History(), e)
	if len(list) > HistoryCap {
		list = list[len(list)-HistoryCap:]
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("profile: marshal history: %w", err)
	}
	if err := s.d.Write(keyHistory, data); err != nil {
		return fmt.Errorf("profile: write history: %w", err)
	}
	return nil
}

func (s *store) BasePath() string {
	return s.basePath
}

func (s *store) readString(key string) string {
	val, err := s.d.Read(key)
	if err != nil {
		return ""
	}
	return string(val)
}

func (s *store) readInt(key string) int {
	n, err := strconv.Atoi(s.readString(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// keyToPathTransform nests dash-separated keys: "drafts-free" lands in
// the drafts directory as file "free".
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
