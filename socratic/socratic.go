// Copyright (c) 2025 Eeraj Ar Rahman.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package socratic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EerajArRahman/hackathon-studytool/genai"
	"github.com/EerajArRahman/hackathon-studytool/models"
)

// Sentinel errors for session operations.
// Use errors.Is to check: errors.Is(err, socratic.ErrSessionNotFound)
var (
	ErrSessionNotFound = errors.New("socratic: session not found")
	ErrSessionComplete = errors.New("socratic: session already complete")
)

// DefaultTTL is how long an idle session survives before Sweep evicts it.
const DefaultTTL = 30 * time.Minute

// questionCount is K, the number of guided questions per session.
const questionCount = 5

// session is one in-flight guided dialogue. Its mutex serializes Reply calls
// for the same session id so two racing replies can never both consume the
// same question index.
type session struct {
	mu         sync.Mutex
	id         string
	topic      string
	questions  []string
	next       int
	pairs      []models.QA
	lastActive time.Time

	// evicted is set under mu before the store drops the session, so a
	// Reply that fetched the pointer before an Abandon or Sweep still
	// observes the eviction once it acquires the lock.
	evicted bool
}

func (s *session) complete() bool {
	return s.next >= len(s.questions)
}

// Store owns the in-memory session map. Sessions are created by Start,
// advanced by Reply, and removed by Abandon or by a TTL Sweep; completed
// sessions stay resident until swept so late replies get a definite
// "already complete" answer rather than "not found".
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	gen      genai.Generator
	local    *genai.Local
	dynamic  bool
	ttl      time.Duration
	now      func() time.Time
}

// Options configures a Store. The zero value gives the fixed-question
// variant with DefaultTTL.
type Options struct {
	// Dynamic asks the generator for topic-tailored questions on Start
	// instead of using the built-in template list. Generator failures
	// still land on the template list via the fallback wrapper.
	Dynamic bool

	// TTL overrides DefaultTTL when positive.
	TTL time.Duration
}

// NewStore creates a session store backed by gen.
func NewStore(gen genai.Generator, opts Options) *Store {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*session),
		gen:      gen,
		local:    genai.NewLocal(),
		dynamic:  opts.Dynamic,
		ttl:      ttl,
		now:      time.Now,
	}
}

// StartResult is what a freshly started session returns to the caller.
type StartResult struct {
	SessionID string
	Question  string
	Total     int
}

// ReplyResult is the outcome of recording one answer: either the next
// question (Done false) or the synthesized note (Done true).
type ReplyResult struct {
	Done         bool
	NextQuestion string
	Title        string
	Content      string
}

// Start allocates a new session for topic and returns its first question.
// In dynamic mode the question list comes from the generator; otherwise
// (and whenever generation fails) it is the built-in template list with the
// topic substituted in.
func (st *Store) Start(ctx context.Context, topic string) (StartResult, error) {
	questions, err := st.resolveQuestions(ctx, topic)
	if err != nil {
		return StartResult{}, err
	}

	s := &session{
		id:         uuid.NewString(),
		topic:      topic,
		questions:  questions,
		lastActive: st.now(),
	}

	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()

	return StartResult{SessionID: s.id, Question: questions[0], Total: len(questions)}, nil
}

// Reply records answer against the session's current question and advances
// it. Unknown ids return ErrSessionNotFound. Replies after the last
// question return ErrSessionComplete; the session is not idempotent on
// purpose, so clients learn they are out of sync. On the final answer the
// transcript is synthesized into a study note and returned with Done=true.
func (st *Store) Reply(ctx context.Context, id, answer string) (ReplyResult, error) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()
	if !ok {
		return ReplyResult{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.evicted {
		// Abandon or Sweep won the race between the map lookup above and
		// this lock; the session is gone.
		return ReplyResult{}, ErrSessionNotFound
	}
	if s.complete() {
		return ReplyResult{}, ErrSessionComplete
	}

	s.pairs = append(s.pairs, models.QA{
		Question: s.questions[s.next],
		Answer:   strings.TrimSpace(answer),
	})
	s.next++
	s.lastActive = st.now()

	if !s.complete() {
		return ReplyResult{NextQuestion: s.questions[s.next]}, nil
	}

	// Final answer recorded: synthesize the note. The generator is wrapped
	// with a deterministic fallback, so this cannot fail the reply.
	content, err := st.gen.Synthesize(ctx, s.topic, s.pairs)
	if err != nil {
		return ReplyResult{}, fmt.Errorf("socratic: synthesis failed: %w", err)
	}

	return ReplyResult{
		Done:    true,
		Title:   "Socratic notes: " + s.topic,
		Content: content,
	}, nil
}

// Abandon removes a session regardless of its progress. Unknown ids return
// ErrSessionNotFound.
func (st *Store) Abandon(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.mu.Lock()
	s.evicted = true
	s.mu.Unlock()
	delete(st.sessions, id)
	return nil
}

// Sweep evicts sessions idle longer than the store TTL and reports how many
// were removed. Meant to run periodically from the background scheduler.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		if now.Sub(s.lastActive) > st.ttl {
			s.evicted = true
			delete(st.sessions, id)
			removed++
		}
		s.mu.Unlock()
	}
	return removed
}

// Len reports the number of resident sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) resolveQuestions(ctx context.Context, topic string) ([]string, error) {
	if st.dynamic {
		return st.gen.Questions(ctx, topic, questionCount)
	}
	// Fixed variant: always the deterministic template list.
	return st.local.Questions(ctx, topic, questionCount)
}
