package domain

import "time"

// LocalOrder is one locally recorded submission attempt. It is written to
// the history log before any network call and patched exactly once with the
// outcome. TempID is the only stable key for patching.
type LocalOrder struct {
	TempID      string       `json:"tempId"`
	Payload     OrderRequest `json:"payload"`
	CreatedAt   time.Time    `json:"createdAt"`
	Synced      bool         `json:"synced"`
	ServerID    *int64       `json:"serverId,omitempty"`
	ServerTS    string       `json:"serverTs,omitempty"`
	ServerError string       `json:"serverError,omitempty"`
}
