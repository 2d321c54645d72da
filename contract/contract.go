//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"forum-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself, the supervisor restarts it on panic.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker
// for supervision logs.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// NotificationSink is the outbound side of one live connection.
type NotificationSink interface {
	Consume(ctx context.Context, n domain.Notification) error
}

type ConnectionHandle struct {
	ID           domain.ConnectionID
	RegisteredAt time.Time
}

// Member is a room member as seen by the hub at snapshot time.
type Member struct {
	ID   domain.ConnectionID
	Sink NotificationSink
}

type RegistryStats struct {
	Connections int
	Rooms       int
}

type ISessionRegistry interface {
	Register(id domain.ConnectionID, sink NotificationSink) ConnectionHandle
	Unregister(id domain.ConnectionID) error
	Join(id domain.ConnectionID, room domain.Room) error
	Leave(id domain.ConnectionID, room domain.Room) error
	Members(room domain.Room) []domain.ConnectionID
	Snapshot(room domain.Room) []Member
	Stats() RegistryStats
}

// Delivery reports what a single publish did.
type Delivery struct {
	Delivered int
	Dropped   int
	Excluded  int
}

type IHub interface {
	Publish(ctx context.Context, room domain.Room, n domain.Notification) Delivery
	PublishExcluding(ctx context.Context, room domain.Room, n domain.Notification, excluded domain.ConnectionID) Delivery
}

type AuditFilter struct {
	PostID *domain.PostID
	Cursor *string
	Limit  int
}

// IStore is the state store. Each call is transactional on its own,
// RunInTx groups the writes of one operation.
type IStore interface {
	ReadPost(ctx context.Context, id domain.PostID) (domain.Post, error)
	ReadCommunity(ctx context.Context, id domain.CommunityID) (domain.Community, error)
	ReadPerson(ctx context.Context, id domain.PersonID) (domain.Person, error)
	IsBannedFromCommunity(ctx context.Context, personID domain.PersonID, communityID domain.CommunityID) (bool, error)
	IsModerator(ctx context.Context, personID domain.PersonID, communityID domain.CommunityID) (bool, error)
	ListAudit(ctx context.Context, filter AuditFilter) ([]domain.AuditRecord, *string, error)
	RunInTx(ctx context.Context, fn func(tx IStoreTx) error) error
}

type IStoreTx interface {
	UpdatePost(id domain.PostID, form domain.PostUpdateForm, at time.Time) (domain.Post, error)
	AppendAudit(record domain.AuditRecord) error
}

type IIdentityResolver interface {
	Resolve(ctx context.Context, credential string) (domain.Identity, error)
}

type ICensor interface {
	Censor(original string) string
}

type IOperationService interface {
	Perform(ctx context.Context, op domain.Operation, origin *domain.ConnectionID) (any, error)
}
