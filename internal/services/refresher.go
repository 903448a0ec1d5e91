package services

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultRefreshInterval is how often live dashboards are re-read.
const DefaultRefreshInterval = 30 * time.Second

// PushFunc receives every refreshed dashboard for a subscription, or the error
// that prevented loading it.
type PushFunc func(view *DashboardView, err error)

type subscription struct {
	ctx     context.Context
	session *Session
	hub     string
	date    string
	push    PushFunc
}

// Refresher periodically reloads the dashboard for every live subscriber.
// Ticks are not deduplicated: a slow reload can overlap the next one.
type Refresher struct {
	Dashboard *DashboardService
	Sessions  *SessionStore
	Interval  time.Duration

	mu   sync.Mutex
	next int
	subs map[int]*subscription
}

func NewRefresher(dashboard *DashboardService, sessions *SessionStore, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		Dashboard: dashboard,
		Sessions:  sessions,
		Interval:  interval,
		subs:      make(map[int]*subscription),
	}
}

// Subscribe registers push for sess's dashboard at hub and date. Reloads run
// with ctx's values, so it should carry the subscriber's credentials. The
// returned func unregisters it.
func (r *Refresher) Subscribe(ctx context.Context, sess *Session, hub, date string, push PushFunc) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++
	r.subs[id] = &subscription{ctx: ctx, session: sess, hub: hub, date: date, push: push}

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

func (r *Refresher) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Run ticks until ctx is done. Each tick reloads all subscriptions in the
// background and sweeps idle sessions.
func (r *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			go r.RefreshAll(ctx)
			if r.Sessions != nil {
				if n := r.Sessions.Sweep(); n > 0 {
					log.Printf("sessions swept removed=%d live=%d", n, r.Sessions.Len())
				}
			}
		}
	}
}

// RefreshAll reloads every current subscription once, concurrently. Sessions
// with a live subscription count as in use and survive the idle sweep.
func (r *Refresher) RefreshAll(ctx context.Context) {
	r.mu.Lock()
	subs := make([]*subscription, 0, len(r.subs))
	for _, s := range r.subs {
		subs = append(subs, s)
	}
	r.mu.Unlock()

	if r.Sessions != nil {
		for _, s := range subs {
			r.Sessions.Keep(s.session)
		}
	}

	var g errgroup.Group
	g.SetLimit(8)
	for _, s := range subs {
		s := s
		g.Go(func() error {
			loadCtx, cancel := context.WithCancel(s.ctx)
			defer cancel()
			stop := context.AfterFunc(ctx, cancel)
			defer stop()

			view, err := r.Dashboard.Load(loadCtx, s.session, s.hub, s.date)
			if err != nil {
				log.Printf("dashboard refresh failed hub=%q date=%q err=%v", s.hub, s.date, err)
			}
			s.push(view, err)
			return nil
		})
	}
	_ = g.Wait()
}
