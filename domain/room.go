// Package domain contains core concepts of the forum live layer.
// This file defines rooms, the broadcast topics connections subscribe to.
package domain

import "fmt"

type RoomKind uint8

const (
	RoomUser RoomKind = iota + 1
	RoomCommunity
	RoomMod
	RoomPost
)

func (k RoomKind) String() string {
	switch k {
	case RoomUser:
		return "user"
	case RoomCommunity:
		return "community"
	case RoomMod:
		return "mod"
	case RoomPost:
		return "post"
	default:
		return "unknown"
	}
}

// Room is keyed by entity kind and id. Two rooms with the same id but a
// different kind are unrelated (community 3 and mod room of community 3).
type Room struct {
	Kind RoomKind
	ID   int64
}

func UserRoom(id LocalUserID) Room { return Room{Kind: RoomUser, ID: int64(id)} }
func CommunityRoom(id CommunityID) Room { return Room{Kind: RoomCommunity, ID: int64(id)} }
func ModRoom(id CommunityID) Room { return Room{Kind: RoomMod, ID: int64(id)} }
func PostRoom(id PostID) Room { return Room{Kind: RoomPost, ID: int64(id)} }
func (r Room) String() string { return fmt.Sprintf("%s:%d", r.Kind, r.ID) }
func (r Room) IsValid() bool { return r.Kind >= RoomUser && r.Kind <= RoomPost }
