package services

import (
	"logistichub-console/internal/domain"
	"testing"
)

func strPtr(s string) *string { return &s }

func routeABC(current *string, status domain.Status) domain.Consignment {
	return domain.Consignment{
		ID:             "c1",
		OriginHub:      "A",
		DestinationHub: "C",
		CurrentHub:     current,
		RouteHubs:      domain.Route{"A", "B", "C"},
		Status:         status,
	}
}

func TestEvaluateActions(t *testing.T) {
	tests := []struct {
		name         string
		c            domain.Consignment
		hub          string
		wantArrival  string
		wantDepart   string
		arrivalOff   bool
		departureOff bool
	}{
		{
			name:         "before current hub",
			c:            routeABC(strPtr("B"), domain.StatusInTransit),
			hub:          "A",
			wantArrival:  LabelMarkArrival,
			wantDepart:   LabelMarkDeparture,
			arrivalOff:   true,
			departureOff: true,
		},
		{
			name:         "at current hub",
			c:            routeABC(strPtr("B"), domain.StatusInTransit),
			hub:          "B",
			wantArrival:  LabelMarkArrival,
			wantDepart:   LabelMarkDeparture,
			arrivalOff:   true,
			departureOff: false,
		},
		{
			name:         "after current hub at destination",
			c:            routeABC(strPtr("B"), domain.StatusInTransit),
			hub:          "C",
			wantArrival:  LabelMarkArrival,
			wantDepart:   LabelEndTrip,
			arrivalOff:   false,
			departureOff: false,
		},
		{
			name:         "not started at origin",
			c:            routeABC(nil, domain.StatusScheduled),
			hub:          "A",
			wantArrival:  LabelStartTrip,
			wantDepart:   LabelMarkDeparture,
			arrivalOff:   false,
			departureOff: false,
		},
		{
			name:         "started at origin",
			c:            routeABC(strPtr("A"), domain.StatusInTransit),
			hub:          "A",
			wantArrival:  LabelMarkArrival,
			wantDepart:   LabelMarkDeparture,
			arrivalOff:   true,
			departureOff: false,
		},
		{
			name:         "hub off route",
			c:            routeABC(strPtr("B"), domain.StatusInTransit),
			hub:          "Z",
			wantArrival:  LabelMarkArrival,
			wantDepart:   LabelMarkDeparture,
			arrivalOff:   false,
			departureOff: false,
		},
		{
			name:         "completed",
			c:            routeABC(strPtr("C"), domain.StatusCompleted),
			hub:          "C",
			wantArrival:  LabelMarkArrival,
			wantDepart:   LabelEndTrip,
			arrivalOff:   true,
			departureOff: true,
		},
		{
			name:         "cancelled before start",
			c:            routeABC(nil, domain.StatusCancelled),
			hub:          "A",
			wantArrival:  LabelStartTrip,
			wantDepart:   LabelMarkDeparture,
			arrivalOff:   true,
			departureOff: true,
		},
		{
			name:         "no hub selected",
			c:            routeABC(strPtr("B"), domain.StatusInTransit),
			hub:          "",
			wantArrival:  LabelMarkArrival,
			wantDepart:   LabelMarkDeparture,
			arrivalOff:   true,
			departureOff: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := EvaluateActions(tt.c, tt.hub, nil)

			if st.ArrivalLabel != tt.wantArrival {
				t.Errorf("arrival label = %q, want %q", st.ArrivalLabel, tt.wantArrival)
			}
			if st.DepartureLabel != tt.wantDepart {
				t.Errorf("departure label = %q, want %q", st.DepartureLabel, tt.wantDepart)
			}
			if st.ArrivalDisabled != tt.arrivalOff {
				t.Errorf("arrival disabled = %v, want %v", st.ArrivalDisabled, tt.arrivalOff)
			}
			if st.DepartureDisabled != tt.departureOff {
				t.Errorf("departure disabled = %v, want %v", st.DepartureDisabled, tt.departureOff)
			}
		})
	}
}

func TestEvaluateActionsUsesLedger(t *testing.T) {
	c := routeABC(strPtr("B"), domain.StatusInTransit)
	ledger := NewActionLedger()

	ledger.Record("c1", "C", domain.ActionArrival)

	st := EvaluateActions(c, "C", ledger)
	if !st.ArrivalDisabled {
		t.Fatalf("arrival at C should be disabled after a recorded arrival")
	}
	if st.DepartureDisabled {
		t.Fatalf("departure at C should stay enabled")
	}

	ledger.Record("c1", "C", domain.ActionDeparture)
	st = EvaluateActions(c, "C", ledger)
	if !st.DepartureDisabled {
		t.Fatalf("departure at C should be disabled after a recorded departure")
	}

	// Other consignments are unaffected.
	other := c
	other.ID = "c2"
	st = EvaluateActions(other, "C", ledger)
	if st.ArrivalDisabled || st.DepartureDisabled {
		t.Fatalf("ledger leaked across consignments: %+v", st)
	}
}

func TestActionStateWithPending(t *testing.T) {
	st := ActionState{ArrivalLabel: LabelMarkArrival, DepartureLabel: LabelMarkDeparture}

	got := st.WithPending(true)
	if !got.Pending || !got.ArrivalDisabled || !got.DepartureDisabled {
		t.Fatalf("pending state = %+v, want both disabled", got)
	}

	if got := st.WithPending(false); got != st {
		t.Fatalf("WithPending(false) changed state: %+v", got)
	}
}
