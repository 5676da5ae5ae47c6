package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Mongo keeps millisecond precision, so timestamps are stored in UTC at that resolution.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (m *TimeModel) SetCreatedAtUpdatedAt() {
	currentTime := now()
	m.CreatedAt = currentTime
	m.UpdatedAt = currentTime
}

func (m *TimeModel) SetUpdatedAt() {
	m.UpdatedAt = now()
}
