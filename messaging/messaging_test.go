package messaging_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neurobridge/dashboard/messaging"
)

func seededRepo(t *testing.T) *messaging.InMemoryRepo {
	t.Helper()
	repo := messaging.NewInMemoryRepo()
	require.NoError(t, messaging.SeedDemoData(repo))
	return repo
}

func threadIDs(threads []*messaging.Thread) []string {
	out := make([]string, 0, len(threads))
	for _, th := range threads {
		out = append(out, th.ID)
	}
	return out
}

func TestInMemoryRepo_SearchThreads(t *testing.T) {
	repo := seededRepo(t)

	t.Run("empty query lists every thread, newest activity first", func(t *testing.T) {
		threads, err := repo.SearchThreads("")
		require.NoError(t, err)
		require.Equal(t, []string{"1", "2", "3", "4"}, threadIDs(threads))
	})

	t.Run("query matches subject", func(t *testing.T) {
		threads, err := repo.SearchThreads("vocational")
		require.NoError(t, err)
		require.Equal(t, []string{"3"}, threadIDs(threads))
	})

	t.Run("query matches participant name", func(t *testing.T) {
		threads, err := repo.SearchThreads("bright horizons")
		require.NoError(t, err)
		require.Equal(t, []string{"1", "4"}, threadIDs(threads))
	})

	t.Run("no matches yields an empty result", func(t *testing.T) {
		threads, err := repo.SearchThreads("nonexistent")
		require.NoError(t, err)
		require.Empty(t, threads)
	})
}

func TestInMemoryRepo_MessagesForThread(t *testing.T) {
	repo := seededRepo(t)

	msgs, err := repo.MessagesForThread("1")
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	for i := 1; i < len(msgs); i++ {
		require.False(t, msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt), "messages must be oldest first")
	}

	_, err = repo.MessagesForThread("missing")
	require.ErrorIs(t, err, messaging.ErrThreadNotFound)
}

func TestInMemoryRepo_PostMessage(t *testing.T) {
	repo := seededRepo(t)

	msg := &messaging.Message{
		ThreadID:            "2",
		SenderID:            "user-1",
		SenderName:          "James Peterson",
		SenderInstitutionID: "inst-1",
		Content:             "Following up on the partnership inquiry.",
		IsRead:              true,
	}
	require.NoError(t, repo.PostMessage(msg))

	require.NotEmpty(t, msg.ID, "repo assigns a message ID")
	require.False(t, msg.CreatedAt.IsZero(), "repo stamps the message")

	// Posting bumps the thread to the top of the inbox
	threads, err := repo.SearchThreads("")
	require.NoError(t, err)
	require.Equal(t, "2", threads[0].ID)
	require.Equal(t, msg.CreatedAt, threads[0].LastMessageAt)

	msgs, err := repo.MessagesForThread("2")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, msg.Content, msgs[0].Content)

	require.ErrorIs(t, repo.PostMessage(&messaging.Message{ThreadID: "missing", Content: "x"}), messaging.ErrThreadNotFound)
}

func TestInMemoryRepo_MarkThreadRead(t *testing.T) {
	repo := seededRepo(t)

	before, err := repo.GetThread("1")
	require.NoError(t, err)
	require.Equal(t, 2, before.UnreadCount)

	require.NoError(t, repo.MarkThreadRead("1"))

	after, err := repo.GetThread("1")
	require.NoError(t, err)
	require.Zero(t, after.UnreadCount)

	msgs, err := repo.MessagesForThread("1")
	require.NoError(t, err)
	for _, m := range msgs {
		require.True(t, m.IsRead)
	}

	require.ErrorIs(t, repo.MarkThreadRead("missing"), messaging.ErrThreadNotFound)
}

func TestThread_MatchesQuery(t *testing.T) {
	thread := &messaging.Thread{
		Subject:          "Re: Transition support for JM",
		ParticipantNames: []string{"Bright Horizons Tutoring"},
		LastMessageAt:    time.Now(),
	}

	require.True(t, thread.MatchesQuery(""))
	require.True(t, thread.MatchesQuery("TRANSITION"))
	require.True(t, thread.MatchesQuery("horizons"))
	require.False(t, thread.MatchesQuery("pathway"))
}
