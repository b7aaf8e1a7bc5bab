package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Service provides in-memory lookup over the user directory, keyed by
// username. Save order follows insertion order so rewrites are stable.
type Service struct {
	users  []*User
	byName map[string]*User
}

// NewService creates a Service from a slice of users. A username appearing
// twice keeps the later record, matching how the original program loaded
// its store.
func NewService(users []*User) *Service {
	s := &Service{byName: make(map[string]*User, len(users))}
	for _, u := range users {
		if _, seen := s.byName[u.Username]; seen {
			s.replace(u)
			continue
		}
		s.users = append(s.users, u)
		s.byName[u.Username] = u
	}
	return s
}

func (s *Service) replace(u *User) {
	for i, existing := range s.users {
		if existing.Username == u.Username {
			s.users[i] = u
			break
		}
	}
	s.byName[u.Username] = u
}

// Load reads the user store at path and returns a Service. A missing store
// returns an empty Service together with ErrNoStore; callers treat that as
// a warning, not a failure.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("opening user store: %w", err)
	}
	defer f.Close()

	users, err := ReadUsers(f)
	if err != nil {
		return nil, fmt.Errorf("reading user store: %w", err)
	}
	return NewService(users), nil
}

// Get returns a user by username.
func (s *Service) Get(username string) (*User, bool) {
	u, ok := s.byName[username]
	return u, ok
}

// Exists reports whether a username is on file.
func (s *Service) Exists(username string) bool {
	_, ok := s.byName[username]
	return ok
}

// All returns all users in save order.
func (s *Service) All() []*User {
	return s.users
}

// Add inserts a new user, rejecting duplicates.
func (s *Service) Add(u *User) error {
	if s.Exists(u.Username) {
		return ErrDuplicateUser
	}
	s.users = append(s.users, u)
	s.byName[u.Username] = u
	return nil
}

// Save rewrites the entire store at path. The write goes through a temp
// file in the same directory followed by a rename, so a crash mid-write
// leaves the previous store intact.
func (s *Service) Save(path string) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating user store: %w", err)
	}

	if err := WriteUsers(f, s.users); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing user store: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing user store: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing user store: %w", err)
	}
	return nil
}
