package runtime

import (
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/errors"
	"sync"
	"time"

	"github.com/samber/lo"
)

type Set map[domain.Room]struct{}

type session struct {
	handle contract.ConnectionHandle
	sink   contract.NotificationSink
	rooms  Set
}

// SessionRegistry tracks live connections and their room memberships.
// It keeps both directions of the relation so that Unregister does not
// have to scan every room:
//   - sessions: connection -> sink and joined rooms
//   - roomMembers: room -> connections
//
// Rooms are created on first join and removed as soon as the last member
// leaves, so an empty room never stays in the map.
type SessionRegistry struct {
	mu          sync.RWMutex
	sessions    map[domain.ConnectionID]*session
	roomMembers map[domain.Room]map[domain.ConnectionID]struct{}
	now         func() time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions:    make(map[domain.ConnectionID]*session),
		roomMembers: make(map[domain.Room]map[domain.ConnectionID]struct{}),
		now:         time.Now,
	}
}

// Register records a live connection and its outbound sink.
// Registering an id twice keeps its memberships and swaps the sink.
func (r *SessionRegistry) Register(id domain.ConnectionID, sink contract.NotificationSink) contract.ConnectionHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.sink = sink
		return s.handle
	}
	handle := contract.ConnectionHandle{ID: id, RegisteredAt: r.now().UTC()}
	r.sessions[id] = &session{handle: handle, sink: sink, rooms: make(Set)}
	return handle
}

// Unregister removes the connection from every room it belonged to.
func (r *SessionRegistry) Unregister(id domain.ConnectionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return errors.ErrUnknownConnection
	}
	for room := range s.rooms {
		r.removeMember(room, id)
	}
	delete(r.sessions, id)
	return nil
}

// Join adds the connection to the room. Joining twice is a no-op.
func (r *SessionRegistry) Join(id domain.ConnectionID, room domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return errors.ErrUnknownConnection
	}
	if _, ok := r.roomMembers[room]; !ok {
		r.roomMembers[room] = make(map[domain.ConnectionID]struct{})
	}
	r.roomMembers[room][id] = struct{}{}
	s.rooms[room] = struct{}{}
	return nil
}

// Leave removes the connection from one room. Joins never call it, it serves
// callers that move a connection between rooms.
func (r *SessionRegistry) Leave(id domain.ConnectionID, room domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return errors.ErrUnknownConnection
	}
	delete(s.rooms, room)
	r.removeMember(room, id)
	return nil
}

// Members returns a copy of the room's member ids.
// Returns nil if the room doesn't exist.
func (r *SessionRegistry) Members(room domain.Room) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[room]
	if !ok {
		return nil
	}
	return lo.Keys(members)
}

// Snapshot resolves the room members into their sinks in a single read,
// so the hub delivers to a consistent view even if memberships change
// while it is writing.
func (r *SessionRegistry) Snapshot(room domain.Room) []contract.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[room]
	if !ok {
		return nil
	}
	snapshot := make([]contract.Member, 0, len(members))
	for id := range members {
		if s, exists := r.sessions[id]; exists {
			snapshot = append(snapshot, contract.Member{ID: id, Sink: s.sink})
		}
	}
	return snapshot
}

func (r *SessionRegistry) Stats() contract.RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return contract.RegistryStats{Connections: len(r.sessions), Rooms: len(r.roomMembers)}
}

// removeMember must be called with the write lock held.
func (r *SessionRegistry) removeMember(room domain.Room, id domain.ConnectionID) {
	members, ok := r.roomMembers[room]
	if !ok {
		return
	}
	delete(members, id)
	if len(members) == 0 {
		delete(r.roomMembers, room)
	}
}
