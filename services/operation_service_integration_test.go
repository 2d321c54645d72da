package services

import (
	"context"
	"forum-lab/auth"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/errors"
	"forum-lab/moderation"
	"forum-lab/repositories"
	"forum-lab/runtime"
	"forum-lab/sink"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("integration_signing_key_for_forum_lab")

type stack struct {
	repository *repositories.ForumRepository
	registry   *runtime.SessionRegistry
	service    *OperationService
	tokens     *AuthService
}

func newStack(t *testing.T) *stack {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	repository := repositories.NewForumRepository(db, log, 20)
	registry := runtime.NewSessionRegistry()
	hub := runtime.NewRoomHub(log, registry, 100*time.Millisecond)
	censor, err := moderation.NewTextCensor([]string{"idiot"}, '*', log)
	req.NoError(err)
	resolver := auth.NewTokenResolver(log, repository, signingKey)

	// Community 7 moderated by M, post X by U
	req.NoError(repository.CreatePerson(domain.Person{ID: 1, LocalUserID: 10, Name: "mod"}))
	req.NoError(repository.CreatePerson(domain.Person{ID: 2, LocalUserID: 20, Name: "user"}))
	req.NoError(repository.CreateCommunity(domain.Community{ID: 7, Name: "golang"}))
	req.NoError(repository.AddModerator(7, 1))
	req.NoError(repository.CreatePost(domain.Post{ID: 42, CommunityID: 7, CreatorID: 2, Name: "hello"}))

	return &stack{
		repository: repository,
		registry:   registry,
		service:    NewOperationService(log, repository, resolver, registry, hub, censor),
		tokens:     NewAuthService(repository, signingKey, time.Hour),
	}
}

func (s *stack) token(t *testing.T, personID domain.PersonID) string {
	token, err := s.tokens.IssueToken(context.Background(), personID)
	require.NoError(t, err)
	return token.String()
}

func (s *stack) connect(t *testing.T, room domain.Room) (domain.ConnectionID, *sink.ConnectionSink) {
	id := domain.ConnectionID(uuid.NewString())
	connectionSink := sink.NewConnectionSink(8)
	s.registry.Register(id, connectionSink)
	_, err := s.service.Perform(context.Background(), domain.PostJoin{PostID: domain.PostID(room.ID)}, &id)
	require.NoError(t, err)
	require.Contains(t, s.registry.Members(room), id)
	return id, connectionSink
}

func TestIntegration_Moderator_Lock_Reaches_Post_Room_And_Modlog(t *testing.T) {
	req := require.New(t)
	s := newStack(t)
	ctx := context.Background()

	// Given K watches post X and M is connected too
	watcherConnection, watcher := s.connect(t, domain.PostRoom(42))
	modConnection, modSink := s.connect(t, domain.PostRoom(42))
	req.NotEqual(watcherConnection, modConnection)
	req.Len(s.registry.Members(domain.PostRoom(42)), 2)

	// When M locks X over its connection
	result, err := s.service.Perform(ctx, domain.LockPost{Auth: s.token(t, 1), PostID: 42, Locked: true}, &modConnection)

	// Then the post is locked
	req.NoError(err)
	req.True(result.(domain.PostResponse).Post.Locked)
	stored, err := s.repository.ReadPost(ctx, 42)
	req.NoError(err)
	req.True(stored.Locked)

	// And the watcher is told, not M who got the reply
	req.Len(watcher.Outbound, 1)
	n := <-watcher.Outbound
	req.Equal(domain.OpLockPost, n.Op)
	req.Equal(domain.PostRoom(42), n.Room)
	req.Empty(modSink.Outbound)

	// And the mod log holds exactly one matching record
	modlog, err := s.service.Perform(ctx, domain.GetModlog{}, nil)
	req.NoError(err)
	records := modlog.(domain.ModlogResponse).Records
	req.Len(records, 1)
	req.Equal(domain.PersonID(1), records[0].ActorID)
	req.Equal(domain.PostID(42), records[0].PostID)
	req.True(*records[0].Locked)
	req.True(records[0].At.Equal(*stored.Updated))
}

func TestIntegration_Non_Moderator_Lock_Leaves_No_Trace(t *testing.T) {
	req := require.New(t)
	s := newStack(t)
	ctx := context.Background()
	_, watcher := s.connect(t, domain.PostRoom(42))

	_, err := s.service.Perform(ctx, domain.LockPost{Auth: s.token(t, 2), PostID: 42, Locked: true}, nil)

	req.True(errors.IsRejected(err, domain.InsufficientRole))
	stored, err := s.repository.ReadPost(ctx, 42)
	req.NoError(err)
	req.False(stored.Locked)
	records, _, err := s.repository.ListAudit(ctx, contract.AuditFilter{})
	req.NoError(err)
	req.Empty(records)
	req.Empty(watcher.Outbound)
}

func TestIntegration_Remove_Reason_Is_Censored_In_Modlog(t *testing.T) {
	req := require.New(t)
	s := newStack(t)
	ctx := context.Background()
	reason := "posted by an idiot"

	_, err := s.service.Perform(ctx, domain.RemovePost{Auth: s.token(t, 1), PostID: 42, Removed: true, Reason: &reason}, nil)
	req.NoError(err)

	postID := domain.PostID(42)
	records, _, err := s.repository.ListAudit(ctx, contract.AuditFilter{PostID: &postID})
	req.NoError(err)
	req.Len(records, 1)
	req.Equal("posted by an *****", *records[0].Reason)
}

func TestIntegration_Unregistered_Connection_Receives_Nothing(t *testing.T) {
	req := require.New(t)
	s := newStack(t)
	ctx := context.Background()
	id, watcher := s.connect(t, domain.PostRoom(42))

	// When K goes away before the lock
	req.NoError(s.registry.Unregister(id))
	watcher.Close()
	_, err := s.service.Perform(ctx, domain.LockPost{Auth: s.token(t, 1), PostID: 42, Locked: true}, nil)

	// Then the lock still succeeds and K got nothing
	req.NoError(err)
	req.Empty(watcher.Outbound)
	req.Empty(s.registry.Members(domain.PostRoom(42)))
}

func TestIntegration_Mod_Join_Subscribes_Any_Connection(t *testing.T) {
	req := require.New(t)
	s := newStack(t)
	ctx := context.Background()
	id := domain.ConnectionID(uuid.NewString())
	s.registry.Register(id, sink.NewConnectionSink(8))

	// A regular user's credential and no credential both join
	result, err := s.service.Perform(ctx, domain.ModJoin{Auth: s.token(t, 2), CommunityID: 7}, &id)
	req.NoError(err)
	req.Equal(domain.JoinResponse{Joined: true}, result)

	result, err = s.service.Perform(ctx, domain.ModJoin{CommunityID: 7}, &id)
	req.NoError(err)
	req.Equal(domain.JoinResponse{Joined: true}, result)
	req.Equal([]domain.ConnectionID{id}, s.registry.Members(domain.ModRoom(7)))
}
