package messaging

import "errors"

var ErrThreadNotFound = errors.New("thread not found")

// Repo provides access to message threads and their messages.
type Repo interface {
	UpsertThread(t *Thread) error
	GetThread(id string) (*Thread, error)

	// SearchThreads returns threads matching query, newest activity first
	SearchThreads(query string) ([]*Thread, error)

	// MessagesForThread returns a thread's messages, oldest first
	MessagesForThread(threadID string) ([]*Message, error)

	// PostMessage appends a message to its thread and bumps the thread's
	// last-activity time. An empty message ID is assigned
	PostMessage(msg *Message) error

	// MarkThreadRead marks every message in the thread read and zeroes the
	// thread's unread count
	MarkThreadRead(threadID string) error
}
