//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"groupbuy-service/internal/domain/listing"
	"groupbuy-service/internal/usecase/commands"

	"github.com/google/uuid"
)

var errSinkDown = errors.New("sink unavailable")

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []commands.ChatMessage
	err  error
}

func (n *recordingNotifier) Post(_ context.Context, msg commands.ChatMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
	return n.err
}

func (n *recordingNotifier) Messages() []commands.ChatMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]commands.ChatMessage(nil), n.msgs...)
}

type memoryTokenStore struct {
	mu     sync.Mutex
	drafts map[string]listing.Draft
	ttl    time.Duration
	now    func() time.Time
	err    error
}

func newMemoryTokenStore(now func() time.Time) *memoryTokenStore {
	return &memoryTokenStore{drafts: map[string]listing.Draft{}, ttl: 15 * time.Minute, now: now}
}

func (s *memoryTokenStore) Mint(_ context.Context, draft listing.Draft) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.drafts[token] = draft
	return token, s.now().Add(s.ttl), nil
}

func (s *memoryTokenStore) Redeem(_ context.Context, token string) (listing.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[token]
	if !ok {
		return listing.Draft{}, listing.ErrDraftTokenNotFound
	}
	delete(s.drafts, token)
	return d, nil
}

type savedObject struct {
	key         string
	contentType string
	data        []byte
}

type memoryProofStorage struct {
	saved []savedObject
	err   error
}

func (s *memoryProofStorage) Save(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	s.saved = append(s.saved, savedObject{key: key, contentType: contentType, data: buf.Bytes()})
	return "/uploads/" + key, nil
}
