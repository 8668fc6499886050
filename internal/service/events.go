package service

import (
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/queue"
)

// Publisher announces committed writes. A failed publish is logged and
// never fails the write that triggered it.
type Publisher struct {
	Queue queue.Queue
	Topic string
	Log   *zap.Logger
}

func (p *Publisher) publish(entity, action string, id int64) {
	if p == nil || p.Queue == nil {
		return
	}
	ev := model.NewChangeEvent(entity, action, id)
	if err := p.Queue.Publish(p.Topic, ev); err != nil && p.Log != nil {
		p.Log.Warn("publish change event",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Int64("entity_id", id),
			zap.Error(err),
		)
	}
}
