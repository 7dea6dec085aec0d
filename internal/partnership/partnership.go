package partnership

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusEnded   Status = "ended"
)

// Partnership pairs two users for mutual accountability. The shared streak is
// its own counter, independent of either member's personal streak, and only
// mutual check-ins advance it.
type Partnership struct {
	ID           int        `json:"id"`
	User1ID      int        `json:"user1Id"`
	User2ID      int        `json:"user2Id"`
	Status       Status     `json:"status"`
	SharedStreak int        `json:"sharedStreak"`
	CreatedAt    time.Time  `json:"createdAt"`
	AcceptedAt   *time.Time `json:"acceptedAt,omitempty"`
	LastCheckIn  *time.Time `json:"lastCheckIn,omitempty"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
}

func (p *Partnership) Involves(userID int) bool {
	return p.User1ID == userID || p.User2ID == userID
}

func (p *Partnership) PartnerOf(userID int) int {
	if p.User1ID == userID {
		return p.User2ID
	}
	return p.User1ID
}

// Message is a fire-and-record text entry between partners. No delivery
// guarantees, no read receipts.
type Message struct {
	ID         uuid.UUID `json:"id"`
	FromUserID int       `json:"fromUserId"`
	ToUserID   int       `json:"toUserId"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sentAt"`
}
