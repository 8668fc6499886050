package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EntityCampaign = "campaign"
	EntityAdGroup  = "ad_group"
	EntityAd       = "ad"
	EntityProgram  = "program"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent is published after a row is written so that downstream
// consumers (the export snapshot worker) can react.
type ChangeEvent struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewChangeEvent(entity, action string, entityID int64) ChangeEvent {
	return ChangeEvent{
		ID:         uuid.NewString(),
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}
