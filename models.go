package tasks

import "time"

// Account is a registered user. PasswordHash is the bcrypt digest;
// the cleartext password never touches the store.
type Account struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Task is a shared to-do record. Every authenticated user sees and
// mutates the same list; the JSON field names are part of the wire
// contract.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

// nextID produces creation-timestamp ids in milliseconds, bumped past
// the highest id already in the collection so two creations inside the
// same millisecond cannot collide. Callers must hold the collection
// lock.
func nextID(lastID int64) int64 {
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	return id
}
