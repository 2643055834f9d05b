package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantList_DecodesMixedShapes(t *testing.T) {
	raw := `["u1", {"id":"u2","firstName":"Ana","lastName":"Silva","email":"ana@example.com","hourlyRate":40}]`

	var list ParticipantList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 2)

	// Normalization yields IDs regardless of entry shape.
	assert.Equal(t, []string{"u1", "u2"}, list.IDs())

	_, expanded := list[0].User()
	assert.False(t, expanded)

	u, expanded := list[1].User()
	require.True(t, expanded)
	assert.Equal(t, "Ana Silva", u.FullName())
	assert.Equal(t, 40.0, u.HourlyRate)
}

func TestParticipant_MarshalPreservesShape(t *testing.T) {
	list := ParticipantList{
		ParticipantRef("u1"),
		ParticipantUser(User{ID: "u2", FirstName: "Ana"}),
	}

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `["u1", {"id":"u2","firstName":"Ana"}]`, string(out))
}

func TestParticipant_RejectsInvalidShape(t *testing.T) {
	var p Participant
	assert.Error(t, json.Unmarshal([]byte(`42`), &p))
}

func TestRefs(t *testing.T) {
	list := Refs("a", "b")
	assert.Equal(t, []string{"a", "b"}, list.IDs())
	assert.Empty(t, list.Users())
}
