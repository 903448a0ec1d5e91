package services

import (
	"logistichub-console/internal/domain"
	"sync"
	"time"
)

// NoticeTTL is how long a transient operator notice stays visible.
const NoticeTTL = 5 * time.Second

// SessionIdleTTL is how long an untouched session is kept before Sweep drops it.
const SessionIdleTTL = 12 * time.Hour

type actionKey struct {
	consignmentID string
	hub           string
	action        domain.ActionKind
}

// ActionLedger remembers (consignment, hub, action) triples that succeeded in
// one operator session, so their controls stay disabled until backend data
// catches up. It lives as long as the session and is never persisted.
type ActionLedger struct {
	mu   sync.RWMutex
	done map[actionKey]struct{}
}

func NewActionLedger() *ActionLedger {
	return &ActionLedger{done: make(map[actionKey]struct{})}
}

func (l *ActionLedger) Record(consignmentID, hub string, action domain.ActionKind) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.done[actionKey{consignmentID, hub, action}] = struct{}{}
}

func (l *ActionLedger) Has(consignmentID, hub string, action domain.ActionKind) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.done[actionKey{consignmentID, hub, action}]
	return ok
}

func (l *ActionLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.done)
}

func (l *ActionLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.done)
}

// Notice is a transient, user-visible message.
type Notice struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NoticeBoard holds at most one notice, which expires NoticeTTL after it was
// posted or when the next action clears it.
type NoticeBoard struct {
	mu     sync.Mutex
	notice *Notice
	now    func() time.Time
}

func NewNoticeBoard(now func() time.Time) *NoticeBoard {
	if now == nil {
		now = time.Now
	}
	return &NoticeBoard{now: now}
}

func (b *NoticeBoard) Post(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notice = &Notice{Message: msg, ExpiresAt: b.now().Add(NoticeTTL)}
}

func (b *NoticeBoard) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notice = nil
}

func (b *NoticeBoard) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.notice == nil {
		return Notice{}, false
	}
	if !b.now().Before(b.notice.ExpiresAt) {
		b.notice = nil
		return Notice{}, false
	}
	return *b.notice, true
}

// Session is the per-operator UI state the browser used to hold: completed
// actions, the transient notice, and which consignment rows have a request in
// flight.
type Session struct {
	ID     string
	Ledger *ActionLedger
	Notice *NoticeBoard

	mu       sync.Mutex
	pending  map[string]struct{}
	lastSeen time.Time
}

func NewSession(id string, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		ID:       id,
		Ledger:   NewActionLedger(),
		Notice:   NewNoticeBoard(now),
		pending:  make(map[string]struct{}),
		lastSeen: now(),
	}
}

// beginAction claims the row for consignmentID; false means a request for it
// is already in flight.
func (s *Session) beginAction(consignmentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.pending[consignmentID]; busy {
		return false
	}
	s.pending[consignmentID] = struct{}{}
	return true
}

func (s *Session) endAction(consignmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, consignmentID)
}

func (s *Session) Pending(consignmentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.pending[consignmentID]
	return busy
}

// Evaluate gates c at selectedHub using this session's ledger and pending rows.
func (s *Session) Evaluate(c domain.Consignment, selectedHub string) ActionState {
	return EvaluateActions(c, selectedHub, s.Ledger).WithPending(s.Pending(c.ID))
}

func (s *Session) touch(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = t
}

func (s *Session) idleSince(t time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Sub(s.lastSeen)
}

// SessionStore indexes live sessions by ID.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      now,
	}
}

// Get returns the session for id, creating it on first use.
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = NewSession(id, s.now)
		s.sessions[id] = sess
		return sess
	}
	sess.touch(s.now())
	return sess
}

// Reset forgets everything recorded for id, as a full page reload would. The
// session is cleared in place so live subscribers holding it see the reset.
func (s *SessionStore) Reset(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return
	}
	sess.Ledger.Reset()
	sess.Notice.Clear()
	sess.touch(s.now())
}

// Keep marks sess as in use, re-registering it if a sweep dropped it.
func (s *SessionStore) Keep(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.touch(s.now())
	if _, ok := s.sessions[sess.ID]; !ok {
		s.sessions[sess.ID] = sess
	}
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than SessionIdleTTL and returns how many
// were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > SessionIdleTTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
