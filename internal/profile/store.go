// Package profile stores appearance profiles (ColorTypes) in named groups
// and resolves the effective profile for a task under the layered
// group-priority rules.
package profile

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/fourdstudio/sequence4d/internal/model"
)

// DefaultGroupName is the synthesized group that backs every resolution as
// the final lookup tier.
const DefaultGroupName = "DEFAULT"

// Blob is the persistence boundary for the profile set: a single opaque
// byte payload, JSON by contract with the host. The store never assumes
// anything else about where it lives.
type Blob interface {
	Load() ([]byte, error)
	Store(data []byte) error
}

// MemoryBlob is an in-process Blob, used by tests and as the default when
// no persistence is wired.
type MemoryBlob struct {
	mu   sync.Mutex
	data []byte
}

func (b *MemoryBlob) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data, nil
}

func (b *MemoryBlob) Store(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	return nil
}

// Group is a named collection of ColorTypes, keyed in the blob by group
// name. The JSON field name matches the blob contract.
type Group struct {
	ColorTypes []model.ColorType `json:"ColorTypes"`
}

// Store reads and writes profile groups through a Blob. The blob is decoded
// once and memoized; resolution does thousands of lookups per build and
// must not re-parse JSON for each one. Lookups return nil on any miss;
// fallback is the resolver's job, not the store's.
type Store struct {
	blob Blob

	mu     sync.Mutex
	groups map[string]Group
	loaded bool
}

// NewStore creates a Store over the given Blob. A nil blob gets an
// in-memory one.
func NewStore(blob Blob) *Store {
	if blob == nil {
		blob = &MemoryBlob{}
	}
	return &Store{blob: blob}
}

// ensureLoaded decodes the blob on first use. Caller must hold mu.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	raw, err := s.blob.Load()
	if err != nil {
		return fmt.Errorf("load profile blob: %w", err)
	}
	groups := make(map[string]Group)
	if len(raw) > 0 {
		var decoded map[string]rawGroup
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return fmt.Errorf("decode profile blob: %w", err)
		}
		for name, rg := range decoded {
			group := Group{ColorTypes: make([]model.ColorType, 0, len(rg.ColorTypes))}
			for _, rp := range rg.ColorTypes {
				group.ColorTypes = append(group.ColorTypes, rp.colorType())
			}
			groups[name] = group
		}
	}
	s.groups = groups
	s.loaded = true
	return nil
}

// save persists the memoized groups. Caller must hold mu. On failure the
// memo is dropped so the next read reflects what is actually on disk.
func (s *Store) save() error {
	raw, err := json.Marshal(s.groups)
	if err != nil {
		s.loaded = false
		return fmt.Errorf("encode profile blob: %w", err)
	}
	if err := s.blob.Store(raw); err != nil {
		s.loaded = false
		return fmt.Errorf("store profile blob: %w", err)
	}
	return nil
}

// Profile looks up a named ColorType inside a named group. Returns nil when
// the group or the profile does not exist.
func (s *Store) Profile(groupName, profileName string) *model.ColorType {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil
	}
	group, ok := s.groups[groupName]
	if !ok {
		return nil
	}
	for i := range group.ColorTypes {
		if group.ColorTypes[i].Name == profileName {
			ct := group.ColorTypes[i]
			return &ct
		}
	}
	return nil
}

// Groups lists all group names, sorted.
func (s *Store) Groups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil
	}
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteGroup replaces a group's profiles, creating the group if needed.
func (s *Store) WriteGroup(name string, profiles []model.ColorType) error {
	if name == "" {
		return fmt.Errorf("group name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.groups[name] = Group{ColorTypes: profiles}
	return s.save()
}

// DeleteGroup removes a group. Deleting a missing group is a no-op.
func (s *Store) DeleteGroup(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.groups[name]; !ok {
		return nil
	}
	delete(s.groups, name)
	return s.save()
}

// EnsureDefaultGroup synthesizes the DEFAULT group if it is absent and
// persists it. The synthesis is deterministic: calling it twice without
// intervening writes yields identical results.
func (s *Store) EnsureDefaultGroup() (Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return Group{}, err
	}
	if group, ok := s.groups[DefaultGroupName]; ok {
		return group, nil
	}
	group := DefaultGroup()
	s.groups[DefaultGroupName] = group
	if err := s.save(); err != nil {
		return Group{}, err
	}
	return group, nil
}
