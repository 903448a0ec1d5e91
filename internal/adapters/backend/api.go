package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/platform/obs"
	"logistichub-console/internal/ports"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DateLayout is the backend's trip date format.
const DateLayout = "2006-01-02"

func (c *Client) ListHubs(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "backend.ListHubs")(&err)

	req, err := c.newRequest(ctx, http.MethodGet, "/hubs", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list hubs: %w", err)
	}

	var hubs []string
	if err := c.doJSON(req, &hubs); err != nil {
		return nil, fmt.Errorf("list hubs: %w", err)
	}
	if hubs == nil {
		hubs = []string{}
	}

	return hubs, nil
}

func (c *Client) ListConsignments(
	ctx context.Context,
	hub string,
	date time.Time,
) (_ []domain.Consignment, err error) {
	defer obs.Time(ctx, "backend.ListConsignments")(&err)

	hub = strings.TrimSpace(hub)
	if hub == "" {
		return nil, errors.New("list consignments: hub must be non-empty")
	}

	q := url.Values{}
	q.Set("date", date.Format(DateLayout))

	req, err := c.newRequest(ctx, http.MethodGet, "/consignments/"+url.PathEscape(hub), q, nil)
	if err != nil {
		return nil, fmt.Errorf("list consignments: %w", err)
	}

	var items []wireConsignment
	if err := c.doJSON(req, &items); err != nil {
		return nil, fmt.Errorf("list consignments at %q: %w", hub, err)
	}

	out := make([]domain.Consignment, 0, len(items))
	for _, item := range items {
		cons := item.toDomain()
		if err := cons.Validate(); err != nil {
			log.Printf("list consignments: inconsistent consignment: %v", err)
		}
		out = append(out, cons)
	}

	return out, nil
}

// Track returns ports.ErrNotFound for a 404 as well as for an empty or
// unrecognizable 2xx body.
func (c *Client) Track(ctx context.Context, trackingID string) (_ *domain.Tracking, err error) {
	defer obs.Time(ctx, "backend.Track")(&err)

	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, fmt.Errorf("track: %w", ports.ErrNotFound)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/track/"+url.PathEscape(trackingID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", trackingID, err)
	}

	body, err := c.do(req)
	if err != nil {
		var ae *ports.APIError
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			return nil, fmt.Errorf("track %q: %w", trackingID, ports.ErrNotFound)
		}
		return nil, fmt.Errorf("track %q: %w", trackingID, err)
	}

	var w wireTracking
	if len(body) == 0 || json.Unmarshal(body, &w) != nil || w.TrackingID == "" {
		return nil, fmt.Errorf("track %q: %w", trackingID, ports.ErrNotFound)
	}

	return w.toDomain(), nil
}

func (c *Client) CreateDelivery(ctx context.Context, d domain.DeliveryRequest) (_ *domain.Package, err error) {
	defer obs.Time(ctx, "backend.CreateDelivery")(&err)

	body := wireCreateRequest{
		Sender:        d.Sender,
		SenderEmail:   d.SenderEmail,
		Receiver:      d.Recipient,
		ReceiverEmail: d.RecipientEmail,
		Source:        d.Origin,
		Destination:   d.Destination,
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/create", nil, body)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	var resp wireCreateResponse
	if err := c.doJSON(req, &resp); err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	if resp.TrackingID == "" {
		return nil, errors.New("create delivery: response carries no tracking id")
	}

	return resp.toDomain(), nil
}

// UpdateConsignmentStatus reports a BLOCKED verdict through the returned
// result, not as an error; interpreting it is the caller's job.
func (c *Client) UpdateConsignmentStatus(
	ctx context.Context,
	consignmentID string,
	hub string,
	action domain.ActionKind,
) (_ domain.ActionResult, err error) {
	defer obs.Time(ctx, "backend.UpdateConsignmentStatus")(&err)

	q := url.Values{}
	q.Set("hubName", hub)
	q.Set("status", string(action))

	path := "/consignment/" + url.PathEscape(consignmentID) + "/update-status"
	req, err := c.newRequest(ctx, http.MethodPut, path, q, nil)
	if err != nil {
		return domain.ActionResult{}, fmt.Errorf("update consignment status: %w", err)
	}

	var resp wireUpdateStatusResponse
	if err := c.doJSON(req, &resp); err != nil {
		return domain.ActionResult{}, fmt.Errorf("update consignment %s status: %w", consignmentID, err)
	}

	res := domain.ActionResult{
		ConsignmentID: string(resp.ConsignmentID),
		Hub:           resp.Hub,
		Status:        strings.ToUpper(strings.TrimSpace(resp.Status)),
		Message:       resp.Message,
	}
	if res.ConsignmentID == "" {
		res.ConsignmentID = consignmentID
	}
	if res.Hub == "" {
		res.Hub = hub
	}

	return res, nil
}
