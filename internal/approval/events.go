package approval

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/models"
)

// Actor is the authenticated user performing a transition, passed explicitly
// so the engine never reads identity from ambient request state.
type Actor struct {
	ID   bson.ObjectID
	Role string
}

// Event is a post-commit side effect emitted by a transition. Events are
// handed to a Dispatcher after the state change is persisted; their delivery
// is best-effort and never rolls a transition back.
type Event interface{ event() }

type EmailEvent struct {
	To      string
	Subject string
	Body    string
}

type NotifyEvent struct {
	UserID bson.ObjectID
	Type   models.NotiType
	Title  string
	Body   string
	Ref    models.Ref
}

func (EmailEvent) event()  {}
func (NotifyEvent) event() {}
