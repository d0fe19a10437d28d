package models

import "time"

// ChatExchange pairs one user utterance with the assistant's eventual
// reply. Exchanges exist only in the running client; there is no
// server-side chat history collection. ID is a local identifier so a
// pending entry can be matched and rolled back even when sends interleave.
type ChatExchange struct {
	ID        string
	Message   string
	Response  string
	Sources   []string
	Timestamp time.Time
	Answered  bool
}
