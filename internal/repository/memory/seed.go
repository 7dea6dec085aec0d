package memory

import (
	"embed"
	"encoding/json"
	"fmt"

	"pureHeartAPI/internal/dailycontent"
	"pureHeartAPI/internal/task"
	"pureHeartAPI/internal/urgelog"
	"pureHeartAPI/internal/user"
)

//go:embed seed/*.json
var seedFS embed.FS

// Seed loads the embedded fixture data, mirroring the JSON files the original
// prototype shipped with. Partnerships start empty; they are created at
// runtime.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []*user.User
	if err := loadSeed("seed/users.json", &users); err != nil {
		return err
	}
	for _, u := range users {
		s.users[u.ID] = u
		if u.ID >= s.nextUserID {
			s.nextUserID = u.ID + 1
		}
	}

	var logs []*urgelog.UrgeLog
	if err := loadSeed("seed/urge_logs.json", &logs); err != nil {
		return err
	}
	for _, l := range logs {
		s.logs[l.ID] = l
		if l.ID >= s.nextLogID {
			s.nextLogID = l.ID + 1
		}
	}

	var tasks []*task.Task
	if err := loadSeed("seed/tasks.json", &tasks); err != nil {
		return err
	}
	for _, t := range tasks {
		s.tasks[t.ID] = t
		if t.ID >= s.nextTaskID {
			s.nextTaskID = t.ID + 1
		}
	}

	var content []*dailycontent.Content
	if err := loadSeed("seed/daily_content.json", &content); err != nil {
		return err
	}
	for _, c := range content {
		s.content[c.ID] = c
	}

	return nil
}

func loadSeed(name string, dst any) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}
	return nil
}
