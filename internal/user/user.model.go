package user

import "time"

type User struct {
	ID              int        `json:"id"`
	DisplayName     string     `json:"displayName"`
	CurrentStreak   int        `json:"currentStreak"`
	BestStreak      int        `json:"bestStreak"`
	TotalCleanDays  int        `json:"totalCleanDays"`
	Points          int        `json:"points"`
	Level           int        `json:"level"`
	Badges          []string   `json:"badges"`
	SpiritualScore  int        `json:"spiritualScore"`
	Triggers        []string   `json:"triggers"`
	Vulnerabilities []string   `json:"vulnerabilities"`
	LastCleanDay    *time.Time `json:"lastCleanDay,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// LevelForPoints derives the displayed tier from the point balance.
// Every 250 transformation points is one level, starting at level 1.
func LevelForPoints(points int) int {
	return points/250 + 1
}

func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b == name {
			return true
		}
	}
	return false
}
