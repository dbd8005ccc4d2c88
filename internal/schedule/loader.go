package schedule

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fourdstudio/sequence4d/internal/model"
)

// fixture is the YAML document shape for a schedule file.
type fixture struct {
	Name       string      `yaml:"name"`
	DateSource string      `yaml:"date_source"`
	Tasks      []taskEntry `yaml:"tasks"`
}

type taskEntry struct {
	ID             int64       `yaml:"id"`
	Name           string      `yaml:"name"`
	PredefinedType string      `yaml:"predefined_type"`
	ScheduleStart  string      `yaml:"schedule_start"`
	ScheduleFinish string      `yaml:"schedule_finish"`
	ActualStart    string      `yaml:"actual_start"`
	ActualFinish   string      `yaml:"actual_finish"`
	EarlyStart     string      `yaml:"early_start"`
	EarlyFinish    string      `yaml:"early_finish"`
	LateStart      string      `yaml:"late_start"`
	LateFinish     string      `yaml:"late_finish"`
	Outputs        []int64     `yaml:"outputs"`
	Inputs         []int64     `yaml:"inputs"`
	Children       []taskEntry `yaml:"children"`
}

// Load reads a schedule fixture from a YAML file and returns the repository
// plus the date source declared in the file (SCHEDULE when absent).
func Load(path string) (*MemoryRepository, model.DateSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read schedule: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a schedule fixture from YAML bytes.
func Parse(raw []byte) (*MemoryRepository, model.DateSource, error) {
	var doc fixture
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("parse schedule: %w", err)
	}

	source := model.DateSourceSchedule
	if doc.DateSource != "" {
		parsed, err := model.ParseDateSource(strings.ToUpper(doc.DateSource))
		if err != nil {
			return nil, "", err
		}
		source = parsed
	}

	seen := make(map[int64]bool)
	roots := make([]*Task, 0, len(doc.Tasks))
	for i := range doc.Tasks {
		task, err := buildTask(&doc.Tasks[i], seen)
		if err != nil {
			return nil, "", err
		}
		roots = append(roots, task)
	}
	return NewMemoryRepository(doc.Name, roots), source, nil
}

func buildTask(entry *taskEntry, seen map[int64]bool) (*Task, error) {
	if entry.ID == 0 {
		return nil, fmt.Errorf("task %q: id is required", entry.Name)
	}
	if seen[entry.ID] {
		return nil, fmt.Errorf("task %q: duplicate id %d", entry.Name, entry.ID)
	}
	seen[entry.ID] = true

	task := &Task{
		ID:             entry.ID,
		Name:           entry.Name,
		PredefinedType: model.NormalizeType(strings.ToUpper(entry.PredefinedType)),
		Dates:          make(map[model.DateKind]time.Time),
		Outputs:        entry.Outputs,
		Inputs:         entry.Inputs,
	}

	dateFields := map[model.DateKind]string{
		model.ScheduleStart:  entry.ScheduleStart,
		model.ScheduleFinish: entry.ScheduleFinish,
		model.ActualStart:    entry.ActualStart,
		model.ActualFinish:   entry.ActualFinish,
		model.EarlyStart:     entry.EarlyStart,
		model.EarlyFinish:    entry.EarlyFinish,
		model.LateStart:      entry.LateStart,
		model.LateFinish:     entry.LateFinish,
	}
	for kind, value := range dateFields {
		if value == "" || value == "-" {
			continue
		}
		d, err := ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("task %d %s: %w", entry.ID, kind, err)
		}
		task.Dates[kind] = d
	}

	for i := range entry.Children {
		child, err := buildTask(&entry.Children[i], seen)
		if err != nil {
			return nil, err
		}
		task.Children = append(task.Children, child)
	}
	return task, nil
}

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a schedule date, ISO-8601 first, date-only accepted.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
