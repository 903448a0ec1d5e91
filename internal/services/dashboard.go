package services

import (
	"context"
	"fmt"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/platform/obs"
	"logistichub-console/internal/ports"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DateToday    = "today"
	DateTomorrow = "tomorrow"

	DateLayout = "2006-01-02"
)

// ResolveTripDate turns a date option into a calendar day in now's location.
// Empty and "today" mean now's day, "tomorrow" the next one; anything else
// must be YYYY-MM-DD.
func ResolveTripDate(option string, now time.Time) (time.Time, error) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch strings.ToLower(strings.TrimSpace(option)) {
	case "", DateToday:
		return today, nil
	case DateTomorrow:
		return today.AddDate(0, 0, 1), nil
	}

	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(option), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, option)
	}
	return t, nil
}

// ConsignmentRow is one line of the hub dashboard.
type ConsignmentRow struct {
	Consignment domain.Consignment
	Actions     ActionState
}

// DashboardView is the hub dashboard for one hub and trip date.
type DashboardView struct {
	Hubs        []string
	SelectedHub string
	Date        time.Time
	Subtitle    string
	Rows        []ConsignmentRow
}

type DashboardService struct {
	Backend ports.LogisticsBackend
	Hubs    *HubDirectory
	Now     func() time.Time
}

func (s *DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Load fetches the hub list and, when hub is set, that hub's consignments for
// the resolved date. Both reads run concurrently. Rows are gated with sess.
func (s *DashboardService) Load(ctx context.Context, sess *Session, hub string, dateOption string) (_ *DashboardView, err error) {
	defer obs.Time(ctx, "dashboard.Load")(&err)

	date, err := ResolveTripDate(dateOption, s.now())
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	hub = strings.TrimSpace(hub)

	view := &DashboardView{
		SelectedHub: hub,
		Date:        date,
		Rows:        []ConsignmentRow{},
	}
	if hub != "" {
		view.Subtitle = fmt.Sprintf("Trips for %s at %s", date.Format(DateLayout), domain.FormatHubName(hub))
	}

	var consignments []domain.Consignment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hubs, err := s.hubs(gctx)
		if err != nil {
			return err
		}
		view.Hubs = hubs
		return nil
	})
	if hub != "" {
		g.Go(func() error {
			cs, err := s.Backend.ListConsignments(gctx, hub, date)
			if err != nil {
				return fmt.Errorf("list consignments at %q: %w", hub, err)
			}
			consignments = cs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	for _, c := range consignments {
		row := ConsignmentRow{Consignment: c}
		if sess != nil {
			row.Actions = sess.Evaluate(c, hub)
		} else {
			row.Actions = EvaluateActions(c, hub, nil)
		}
		view.Rows = append(view.Rows, row)
	}

	return view, nil
}

func (s *DashboardService) hubs(ctx context.Context) ([]string, error) {
	if s.Hubs != nil {
		return s.Hubs.List(ctx)
	}
	hubs, err := s.Backend.ListHubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hubs: %w", err)
	}
	return hubs, nil
}
