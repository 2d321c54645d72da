package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_Kinds_Do_Not_Collide(t *testing.T) {
	req := require.New(t)

	// Same numeric id, different rooms
	req.NotEqual(CommunityRoom(3), ModRoom(3))
	req.NotEqual(PostRoom(3), UserRoom(3))
	req.Equal(PostRoom(3), Room{Kind: RoomPost, ID: 3})

	req.Equal("community:3", CommunityRoom(3).String())
	req.Equal("mod:3", ModRoom(3).String())
	req.Equal("post:3", PostRoom(3).String())
	req.Equal("user:3", UserRoom(3).String())
}

func TestRoom_IsValid(t *testing.T) {
	req := require.New(t)

	req.True(PostRoom(1).IsValid())
	req.True(UserRoom(1).IsValid())
	req.False(Room{}.IsValid())
	req.False(Room{Kind: RoomPost + 1, ID: 1}.IsValid())
	req.Equal("unknown", Room{}.Kind.String())
}
