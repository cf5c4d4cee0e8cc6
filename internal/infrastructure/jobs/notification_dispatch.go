package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/pkg/metrics"
	"harvest-admin.backend/pkg/push"
)

const dispatchBatchSize = 100

// NotificationDispatchJob polls undispatched notifications and hands them
// to the push sender. Delivery is fire-and-forget: a send failure is logged
// and the row is still marked dispatched so one bad token cannot wedge the
// queue.
type NotificationDispatchJob struct {
	repo     repositories.NotificationRepository
	sender   push.Sender
	metrics  *metrics.Metrics
	interval time.Duration
	stop     chan struct{}
}

// NewNotificationDispatchJob creates the job. metrics may be nil.
func NewNotificationDispatchJob(repo repositories.NotificationRepository, sender push.Sender, m *metrics.Metrics) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		repo:     repo,
		sender:   sender,
		metrics:  m,
		interval: 15 * time.Second,
		stop:     make(chan struct{}),
	}
}

func (j *NotificationDispatchJob) Start(ctx context.Context) {
	log.Println("🕐 Starting notification dispatch job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Notification dispatch job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Notification dispatch job stopped")
			return
		case <-ticker.C:
			j.dispatchPending(ctx)
		}
	}
}

func (j *NotificationDispatchJob) Stop() {
	close(j.stop)
}

func (j *NotificationDispatchJob) dispatchPending(ctx context.Context) {
	pending, err := j.repo.ListUndispatched(ctx, dispatchBatchSize)
	if err != nil {
		log.Printf("❌ Error fetching undispatched notifications: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	log.Printf("🔄 Dispatching %d notifications...", len(pending))

	delivered := 0
	for _, n := range pending {
		if err := j.sender.Send(ctx, toPushMessage(n)); err != nil {
			log.Printf("❌ Error sending notification %s: %v", n.ID, err)
		} else {
			delivered++
		}
		if err := j.repo.MarkDispatched(ctx, n.ID); err != nil {
			log.Printf("❌ Error marking notification %s dispatched: %v", n.ID, err)
			continue
		}
		if j.metrics != nil {
			j.metrics.RecordNotificationDispatched(string(n.Type))
		}
	}

	log.Printf("✅ Dispatched %d notifications (%d delivered)", len(pending), delivered)
}

func toPushMessage(n *entities.Notification) *push.Message {
	msg := &push.Message{
		UserID: n.UserID,
		Title:  n.Title,
		Body:   n.Message,
		Type:   string(n.Type),
	}
	if n.Data.Valid {
		var data map[string]string
		if err := json.Unmarshal(n.Data.JSON, &data); err == nil {
			msg.Data = data
		}
	}
	return msg
}
