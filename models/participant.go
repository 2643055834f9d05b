package models

import (
	"encoding/json"
	"fmt"
)

// Participant is one entry of an appointment's students/tutors/parents list.
// The remote API returns these lists heterogeneously: an entry is either a
// bare ID string or an expanded user object, and a single list can mix both.
// Participant is the tagged union covering both shapes; ID() is the single
// normalization point consumers must go through.
type Participant struct {
	ref  string
	user *User
}

// ParticipantRef returns a participant holding only an ID reference.
func ParticipantRef(id string) Participant {
	return Participant{ref: id}
}

// ParticipantUser returns a participant holding an expanded user.
func ParticipantUser(u User) Participant {
	return Participant{user: &u}
}

// ID returns the participant's user ID regardless of shape.
func (p Participant) ID() string {
	if p.user != nil {
		return p.user.ID
	}
	return p.ref
}

// User returns the expanded user and true, or nil and false for a bare reference.
func (p Participant) User() (*User, bool) {
	if p.user == nil {
		return nil, false
	}
	return p.user, true
}

// UnmarshalJSON accepts either a JSON string (bare ID) or a user object.
func (p *Participant) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*p = Participant{ref: id}
		return nil
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("participant must be an id string or a user object: %w", err)
	}
	*p = Participant{user: &u}
	return nil
}

// MarshalJSON re-emits the shape the participant was decoded from.
func (p Participant) MarshalJSON() ([]byte, error) {
	if p.user != nil {
		return json.Marshal(p.user)
	}
	return json.Marshal(p.ref)
}

// ParticipantList is a heterogeneous participant list.
type ParticipantList []Participant

// IDs normalizes the list to bare user IDs.
func (l ParticipantList) IDs() []string {
	if len(l) == 0 {
		return nil
	}
	ids := make([]string, 0, len(l))
	for _, p := range l {
		ids = append(ids, p.ID())
	}
	return ids
}

// Users returns only the expanded entries. Bare references are skipped
// because no user fields are available for them.
func (l ParticipantList) Users() []User {
	var users []User
	for _, p := range l {
		if u, ok := p.User(); ok {
			users = append(users, *u)
		}
	}
	return users
}

// Refs builds a list of bare references from user IDs.
func Refs(ids ...string) ParticipantList {
	list := make(ParticipantList, 0, len(ids))
	for _, id := range ids {
		list = append(list, ParticipantRef(id))
	}
	return list
}
