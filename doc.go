// Package tasks implements a small task-tracking HTTP service with
// password-based registration, JWT login, and bearer-token protected
// CRUD access to a shared task list.
//
// Persistence is deliberately simple: each collection (accounts, tasks)
// lives in a single flat JSON document that is loaded in full and
// rewritten in full on every mutation. Collection guards its
// read-modify-write cycle with a mutex so duplicate-email registration
// cannot slip through between the uniqueness check and the write.
//
// Authentication:
//   - passwords are stored as bcrypt hashes, never in cleartext
//   - login issues a stateless HS256 JWT carrying the account id
//   - middleware/tokenware gates protected routes on the
//     Authorization: Bearer <token> header
//
// The server keeps no session table, so an issued token stays valid for
// its full lifetime.
package tasks
