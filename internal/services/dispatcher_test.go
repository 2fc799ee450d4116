package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/approval"
	"placement-portal/internal/models"
)

type memStore struct {
	inserted  []models.Notification
	bulkCalls int
	err       error
}

func (m *memStore) Insert(_ context.Context, n models.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, n)
	return nil
}

func (m *memStore) InsertMany(_ context.Context, ns []models.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.bulkCalls++
	m.inserted = append(m.inserted, ns...)
	return nil
}

type memMailer struct {
	sent []string
	err  error
}

func (m *memMailer) Send(to, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestDispatchRoutesEvents(t *testing.T) {
	store := &memStore{}
	mailer := &memMailer{}
	d := NewDispatcher(store, mailer)

	uid := bson.NewObjectID()
	d.Dispatch(context.Background(), []approval.Event{
		approval.NotifyEvent{UserID: uid, Type: models.NotiJobApproved, Title: "t", Body: "b"},
		approval.EmailEvent{To: "hr@acme.example", Subject: "s", Body: "b"},
		approval.NotifyEvent{UserID: uid, Type: models.NotiSystem, Title: "t2", Body: "b2"},
	})

	if len(store.inserted) != 2 {
		t.Errorf("notifications stored = %d, want 2", len(store.inserted))
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "hr@acme.example" {
		t.Errorf("mails sent = %v", mailer.sent)
	}
	if store.inserted[0].UserID != uid {
		t.Error("notification must target the event's user")
	}
}

func TestDispatchBatchesNotifications(t *testing.T) {
	store := &memStore{}
	d := NewDispatcher(store, &memMailer{})

	var events []approval.Event
	for i := 0; i < 5; i++ {
		events = append(events, approval.NotifyEvent{UserID: bson.NewObjectID(), Type: models.NotiSystem, Title: "New Job Posted"})
	}
	d.Dispatch(context.Background(), events)

	if store.bulkCalls != 1 {
		t.Errorf("bulk writes = %d, want 1", store.bulkCalls)
	}
	if len(store.inserted) != 5 {
		t.Errorf("notifications stored = %d, want 5", len(store.inserted))
	}

	// no notify events, no write at all
	store2 := &memStore{}
	d2 := NewDispatcher(store2, &memMailer{})
	d2.Dispatch(context.Background(), []approval.Event{
		approval.EmailEvent{To: "hr@acme.example", Subject: "s", Body: "b"},
	})
	if store2.bulkCalls != 0 {
		t.Errorf("bulk writes = %d, want 0", store2.bulkCalls)
	}
}

func TestDispatchSwallowsFailures(t *testing.T) {
	store := &memStore{err: errors.New("db down")}
	mailer := &memMailer{err: errors.New("smtp down")}
	d := NewDispatcher(store, mailer)

	// must not panic or propagate; delivery is best-effort
	d.Dispatch(context.Background(), []approval.Event{
		approval.NotifyEvent{UserID: bson.NewObjectID()},
		approval.EmailEvent{To: "x@y.z"},
	})

	d.Notify(context.Background(), bson.NewObjectID(), models.NotiSystem, "t", "b", models.Ref{})
	d.Mail("x@y.z", "s", "b")
}

func TestNotifyAndMailPassThrough(t *testing.T) {
	store := &memStore{}
	mailer := &memMailer{}
	d := NewDispatcher(store, mailer)

	uid := bson.NewObjectID()
	d.Notify(context.Background(), uid, models.NotiApplication, "New Application", "body", models.Ref{Entity: models.EntityApplication})
	d.Mail("student@univ.edu", "subject", "body")

	if len(store.inserted) != 1 || store.inserted[0].Type != models.NotiApplication {
		t.Errorf("stored = %+v", store.inserted)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "student@univ.edu" {
		t.Errorf("sent = %v", mailer.sent)
	}
}
