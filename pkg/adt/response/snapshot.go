package response

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one observed state of a request, stamped with the request id
// shared by every state of that request and the time it was observed (UTC).
type Snapshot[E, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	response  Response[E, T]
}

// Track starts a new request at state r.
func Track[E, T any](r Response[E, T]) Snapshot[E, T] {
	return Snapshot[E, T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		response:  r,
	}
}

// Advance records the next state of the same request.
func (s Snapshot[E, T]) Advance(next Response[E, T]) Snapshot[E, T] {
	return AdvanceTo(s, next)
}

// AdvanceTo is Advance for a next state of a different value type.
func AdvanceTo[E, T, U any](from Snapshot[E, T], next Response[E, U]) Snapshot[E, U] {
	return Snapshot[E, U]{
		id:        from.id,
		createdAt: time.Now().UTC(),
		response:  next,
	}
}

// MapSnapshot maps the value of the stamped Response, keeping id and time.
func MapSnapshot[E, T, U any](s Snapshot[E, T], fn func(T) U) Snapshot[E, U] {
	return Snapshot[E, U]{
		id:        s.id,
		createdAt: s.createdAt,
		response:  Map(s.response, fn),
	}
}

func (s Snapshot[E, T]) Id() uuid.UUID {
	return s.id
}

func (s Snapshot[E, T]) CreatedAt() time.Time {
	return s.createdAt
}

func (s Snapshot[E, T]) Response() Response[E, T] {
	return s.response
}

// SameRequest reports whether s and other stamp states of one request.
func (s Snapshot[E, T]) SameRequest(other Snapshot[E, T]) bool {
	return s.id == other.id
}

func (s Snapshot[E, T]) String() string {
	return fmt.Sprintf("%s@%s %s", s.id, s.createdAt.Format(time.RFC3339Nano), s.response)
}
