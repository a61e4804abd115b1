package models

import (
	"fmt"
	"time"
)

// Status is the payment lifecycle state. It serializes to the same four
// string literals the API has always used.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusConfirmed  Status = "confirmed"
	StatusFailed     Status = "failed"
)

// ParseStatus converts a wire string into a Status, rejecting anything
// outside the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusConfirmed, StatusFailed:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Terminal reports whether no further transition is expected from s.
// failed may be retried by a higher layer, but within this service both
// confirmed and failed are final.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

type Payment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID string    `gorm:"uniqueIndex;not null" json:"requestId"`
	Status    Status    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
