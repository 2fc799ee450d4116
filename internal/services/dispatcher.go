// Package services carries the side-effect plumbing around the approval and
// matching engines: notification persistence and email delivery. Both are
// best-effort; a failed delivery is logged and never propagated, because a
// state transition that already committed must not be reported as failed.
package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/approval"
	"placement-portal/internal/models"
)

type NotificationStore interface {
	Insert(ctx context.Context, n models.Notification) error
	InsertMany(ctx context.Context, ns []models.Notification) error
}

type MailSender interface {
	Send(to, subject, body string) error
}

type Dispatcher struct {
	notifications NotificationStore
	mailer        MailSender
}

func NewDispatcher(notifications NotificationStore, mailer MailSender) *Dispatcher {
	return &Dispatcher{notifications: notifications, mailer: mailer}
}

// Dispatch delivers post-commit events from the approval engine. In-app
// notifications land in one bulk write, so an admin fan-out costs a single
// round trip however many admins there are.
func (d *Dispatcher) Dispatch(ctx context.Context, events []approval.Event) {
	var batch []models.Notification
	for _, ev := range events {
		switch e := ev.(type) {
		case approval.NotifyEvent:
			batch = append(batch, models.Notification{
				UserID: e.UserID,
				Type:   e.Type,
				Title:  e.Title,
				Body:   e.Body,
				Ref:    e.Ref,
			})
		case approval.EmailEvent:
			if err := d.mailer.Send(e.To, e.Subject, e.Body); err != nil {
				log.Println("email send failed:", err)
			}
		}
	}
	if len(batch) > 0 {
		if err := d.notifications.InsertMany(ctx, batch); err != nil {
			log.Println("notification create failed:", err)
		}
	}
}

// Notify writes a single in-app notification outside the approval flow
// (new application received, application status changed).
func (d *Dispatcher) Notify(ctx context.Context, userID bson.ObjectID, typ models.NotiType, title, body string, ref models.Ref) {
	err := d.notifications.Insert(ctx, models.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
		Ref:    ref,
	})
	if err != nil {
		log.Println("notification create failed:", err)
	}
}

// Mail sends one email outside the approval flow, same best-effort contract.
func (d *Dispatcher) Mail(to, subject, body string) {
	if err := d.mailer.Send(to, subject, body); err != nil {
		log.Println("email send failed:", err)
	}
}
