package auth

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateHub_SubscribeFiresImmediately(t *testing.T) {
	hub := NewStateHub()

	var got []*entity.Identity
	unsubscribe := hub.Subscribe(func(identity *entity.Identity) {
		got = append(got, identity)
	})
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.Nil(t, got[0])
}

func TestStateHub_SubscribeFiresImmediatelyWithCurrentIdentity(t *testing.T) {
	hub := NewStateHub()
	identity := &entity.Identity{UID: "u1", Email: "u1@example.com"}
	hub.SignIn(identity)

	var got []*entity.Identity
	unsubscribe := hub.Subscribe(func(id *entity.Identity) {
		got = append(got, id)
	})
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.Equal(t, identity, got[0])
}

func TestStateHub_BroadcastsFlips(t *testing.T) {
	hub := NewStateHub()

	var got []*entity.Identity
	unsubscribe := hub.Subscribe(func(id *entity.Identity) {
		got = append(got, id)
	})
	defer unsubscribe()

	identity := &entity.Identity{UID: "u1"}
	hub.SignIn(identity)
	hub.SignOut()

	require.Len(t, got, 3)
	assert.Nil(t, got[0])
	assert.Equal(t, identity, got[1])
	assert.Nil(t, got[2])
	assert.Nil(t, hub.Current())
}

func TestStateHub_Unsubscribe(t *testing.T) {
	hub := NewStateHub()

	calls := 0
	unsubscribe := hub.Subscribe(func(*entity.Identity) {
		calls++
	})

	unsubscribe()
	hub.SignIn(&entity.Identity{UID: "u1"})

	assert.Equal(t, 1, calls, "only the immediate fire should be observed")
}
