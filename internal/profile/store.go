package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotFound indicates no profile exists for the requested user.
var ErrNotFound = errors.New("profile not found")

// Store persists one JSON record per user under <dir>/users/.
// Writes are whole-record overwrites; there is no merging and no locking,
// so concurrent writers for the same user race (last write wins).
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a Store rooted at dataDir, creating the users
// directory if needed.
func NewStore(dataDir string) (*Store, error) {
	usersDir := filepath.Join(dataDir, "users")
	if err := os.MkdirAll(usersDir, 0o755); err != nil {
		return nil, fmt.Errorf("create users dir: %w", err)
	}
	return &Store{dir: dataDir, now: time.Now}, nil
}

// WithClock overrides the store's clock. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) path(userID string) string {
	// User IDs come from the chat layer and may contain path-hostile
	// characters; flatten separators before building the filename.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(userID)
	return filepath.Join(s.dir, "users", safe+"_profile.json")
}

// Get returns the stored profile for userID, or ErrNotFound.
func (s *Store) Get(userID string) (*Profile, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read profile %s: %w", userID, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	return &p, nil
}

// Put writes the profile, fully replacing any previous record.
func (s *Store) Put(p *Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", p.UserID, err)
	}
	if err := os.WriteFile(s.path(p.UserID), data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", p.UserID, err)
	}
	return nil
}

// Enroll creates a profile enrolled in course, or updates the enrolled
// course on an existing profile. Counters are never touched; start_date
// is set only once, at first enrollment.
func (s *Store) Enroll(userID, courseID string) (*Profile, error) {
	p, err := s.Get(userID)
	switch {
	case errors.Is(err, ErrNotFound):
		p = New(userID)
		start := s.now()
		p.StartDate = &start
	case err != nil:
		return nil, err
	}

	p.EnrolledCourse = courseID
	if p.StartDate == nil {
		start := s.now()
		p.StartDate = &start
	}

	if err := s.Put(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Stats summarizes the profile directory for /status and /admin.
type Stats struct {
	TotalUsers    int
	EnrolledUsers int
	ActiveCourses []string
	StorageBytes  int64
}

// Stats walks the users directory and aggregates counts. Unreadable or
// corrupt records are skipped rather than failing the whole scan.
func (s *Store) Stats() (Stats, error) {
	usersDir := filepath.Join(s.dir, "users")
	entries, err := os.ReadDir(usersDir)
	if err != nil {
		return Stats{}, fmt.Errorf("read users dir: %w", err)
	}

	var st Stats
	courses := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "_profile.json") {
			continue
		}
		st.TotalUsers++

		if info, err := e.Info(); err == nil {
			st.StorageBytes += info.Size()
		}

		data, err := os.ReadFile(filepath.Join(usersDir, e.Name()))
		if err != nil {
			continue
		}
		var p Profile
		if err := json.Unmarshal(data, &p); err != nil {
			continue
		}
		if p.EnrolledCourse != "" {
			st.EnrolledUsers++
			courses[p.EnrolledCourse] = true
		}
	}

	for c := range courses {
		st.ActiveCourses = append(st.ActiveCourses, c)
	}
	sort.Strings(st.ActiveCourses)
	return st, nil
}
