package services

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/metrics"
	"wellnexAPI/internal/types/notification"
)

var (
	ErrQueueFull         = errors.New("notification queue full")
	ErrDispatcherStopped = errors.New("notification dispatcher stopped")
)

type PushNotificationProvider interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error
}

type DeviceTokenLister interface {
	ListDeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error)
}

// NotificationDispatcher sends queued notifications from a fixed pool of workers.
type NotificationDispatcher struct {
	tokens         DeviceTokenLister
	pushProvider   PushNotificationProvider
	workers        int
	jobQueue       chan *DispatchJob
	stopChan       chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	enqueueTimeout time.Duration
	jobTimeout     time.Duration
}

type DispatchJob struct {
	Notification *notification.Notification
}

func NewNotificationDispatcher(tokens DeviceTokenLister, workers int) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	d := &NotificationDispatcher{
		tokens:         tokens,
		workers:        workers,
		jobQueue:       make(chan *DispatchJob, 100),
		stopChan:       make(chan struct{}),
		enqueueTimeout: 5 * time.Second,
		jobTimeout:     10 * time.Second,
	}
	d.startWorkers()
	return d
}

// SetPushProvider injects the FCM provider; must be called before the first dispatch.
func (d *NotificationDispatcher) SetPushProvider(provider PushNotificationProvider) {
	d.pushProvider = provider
}

func (d *NotificationDispatcher) startWorkers() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

func (d *NotificationDispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case job := <-d.jobQueue:
			d.processJob(job)
		case <-d.stopChan:
			return
		}
	}
}

func (d *NotificationDispatcher) processJob(job *DispatchJob) {
	ctx, cancel := context.WithTimeout(context.Background(), d.jobTimeout)
	defer cancel()

	notif := job.Notification
	if d.pushProvider == nil {
		log.Debugf("dispatcher: no push provider, dropping %q for user %s", notif.Title, notif.UserID)
		metrics.PushNotifications.WithLabelValues("dropped").Inc()
		return
	}

	tokens, err := d.tokens.ListDeviceTokens(ctx, notif.UserID)
	if err != nil {
		log.Errorf("dispatcher: list device tokens of user %s: %s", notif.UserID, err)
		metrics.PushNotifications.WithLabelValues("failed").Inc()
		return
	}
	if len(tokens) == 0 {
		log.Debugf("dispatcher: user %s has no registered devices", notif.UserID)
		metrics.PushNotifications.WithLabelValues("no_devices").Inc()
		return
	}

	if err := d.pushProvider.SendPush(ctx, tokens, notif.Title, notif.Body, notif.Data); err != nil {
		log.Errorf("dispatcher: push to user %s failed: %s", notif.UserID, err)
		metrics.PushNotifications.WithLabelValues("failed").Inc()
		return
	}
	metrics.PushNotifications.WithLabelValues("sent").Inc()
}

// DispatchNotification queues notif. It gives up when the queue stays full
// for the enqueue timeout, when ctx ends or once the dispatcher is stopped.
func (d *NotificationDispatcher) DispatchNotification(ctx context.Context, notif *notification.Notification) error {
	select {
	case <-d.stopChan:
		return ErrDispatcherStopped
	default:
	}

	timer := time.NewTimer(d.enqueueTimeout)
	defer timer.Stop()

	select {
	case d.jobQueue <- &DispatchJob{Notification: notif}:
		return nil
	case <-d.stopChan:
		return ErrDispatcherStopped
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrQueueFull
	}
}

// Stop signals the workers and waits for them. Queued jobs not yet picked up are dropped.
func (d *NotificationDispatcher) Stop() {
	d.stopOnce.Do(func() {
		log.Println("stopping notification dispatcher...")
		close(d.stopChan)
		d.wg.Wait()
		log.Println("notification dispatcher stopped")
	})
}
