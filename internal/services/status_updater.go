package services

import (
	"context"
	"fmt"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/platform/obs"
	"logistichub-console/internal/ports"
	"strings"
)

const (
	msgSelectHub    = "Please select a hub first"
	msgActionFailed = "Failed to update status"
	msgBlocked      = "Action blocked"
)

// StatusUpdater sends arrival/departure requests for an operator session.
type StatusUpdater struct {
	Backend ports.LogisticsBackend
}

// Mark requests action for consignmentID at hub.
//
// On OK the triple is recorded in the session ledger. A BLOCKED verdict is
// returned as *ports.BlockedError and, like any other failure, posted to the
// session notice without touching the ledger. Only one request per
// consignment row may be in flight; a concurrent one fails with
// ErrActionPending.
func (u *StatusUpdater) Mark(
	ctx context.Context,
	sess *Session,
	consignmentID string,
	hub string,
	action domain.ActionKind,
) (_ domain.ActionResult, err error) {
	defer obs.Time(ctx, "status.Mark")(&err)

	hub = strings.TrimSpace(hub)
	if hub == "" {
		sess.Notice.Post(msgSelectHub)
		return domain.ActionResult{}, fmt.Errorf("mark %s: %w", action, ErrNoHubSelected)
	}

	if !sess.beginAction(consignmentID) {
		return domain.ActionResult{}, fmt.Errorf("mark %s on consignment %s: %w", action, consignmentID, ErrActionPending)
	}
	defer sess.endAction(consignmentID)

	sess.Notice.Clear()

	res, err := u.Backend.UpdateConsignmentStatus(ctx, consignmentID, hub, action)
	if err != nil {
		sess.Notice.Post(UserMessage(err, msgActionFailed))
		return domain.ActionResult{}, fmt.Errorf("mark %s on consignment %s at %q: %w", action, consignmentID, hub, err)
	}

	switch res.Status {
	case domain.ActionStatusOK:
		sess.Ledger.Record(consignmentID, hub, action)
		return res, nil

	case domain.ActionStatusBlocked:
		msg := strings.TrimSpace(res.Message)
		if msg == "" {
			msg = msgBlocked
		}
		sess.Notice.Post(msg)
		return res, &ports.BlockedError{Message: msg}
	}

	sess.Notice.Post(msgActionFailed)
	return res, fmt.Errorf("mark %s on consignment %s: unexpected backend status %q", action, consignmentID, res.Status)
}
