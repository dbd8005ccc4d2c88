package profile

import "github.com/fourdstudio/sequence4d/internal/model"

// GroupEntry is one slot in the user-ordered group stack.
type GroupEntry struct {
	Group   string `json:"group" yaml:"group"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// GroupStack is the ordered list of profile groups. Only the first enabled
// entry is active for resolution; the rest are kept for the UI ordering.
type GroupStack []GroupEntry

// ActiveGroup returns the first enabled group name, or DEFAULT when none is
// enabled (including the empty stack).
func (s GroupStack) ActiveGroup() string {
	for _, entry := range s {
		if entry.Enabled && entry.Group != "" {
			return entry.Group
		}
	}
	return DefaultGroupName
}

// GroupChoice is a per-task profile selection scoped to one group.
type GroupChoice struct {
	GroupName string `json:"group_name" yaml:"group_name"`
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Selected  string `json:"selected_colortype" yaml:"selected_colortype"`
}

// TaskOverrides maps task ids to their per-group profile selections.
type TaskOverrides map[int64][]GroupChoice

// Resolver picks the effective ColorType for a task. Every tier of the
// chain may miss; the synthesized fallback at the bottom cannot, so Resolve
// never returns nil.
type Resolver struct {
	store *Store
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve applies the resolution chain, first match wins:
//
//  1. the task's own selection for the active group, when that profile
//     exists in the active group
//  2. the active group's profile named after the task's PredefinedType
//  3. the DEFAULT group's profile for the PredefinedType, then DEFAULT's
//     NOTDEFINED profile
//  4. a synthesized profile from the fixed fallback color table
func (r *Resolver) Resolve(taskID int64, predefined model.PredefinedType, stack GroupStack, overrides TaskOverrides) *model.ColorType {
	activeGroup := stack.ActiveGroup()
	predefined = model.NormalizeType(string(predefined))

	for _, choice := range overrides[taskID] {
		if choice.GroupName != activeGroup || !choice.Enabled || choice.Selected == "" {
			continue
		}
		if ct := r.store.Profile(activeGroup, choice.Selected); ct != nil {
			return ct
		}
	}

	if ct := r.store.Profile(activeGroup, string(predefined)); ct != nil {
		return ct
	}

	if activeGroup != DefaultGroupName {
		if ct := r.store.Profile(DefaultGroupName, string(predefined)); ct != nil {
			return ct
		}
	}
	if ct := r.store.Profile(DefaultGroupName, string(model.TypeNotDefined)); ct != nil {
		return ct
	}

	return Fallback(predefined)
}
