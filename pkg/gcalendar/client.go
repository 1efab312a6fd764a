package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	dateLayout        = "2006-01-02"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file. tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON, or from OAuth installed app JSON plus a saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: OAuth2 installed app credentials
	oauthConfig, oerr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if oerr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tok, err := ReadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no usable token at %s: %w", tokenPath, err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ReadToken loads an OAuth token saved by the auth helper.
func ReadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return &tok, nil
}

// SaveToken writes an OAuth token for later runs.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// UpsertEvent replaces the event with req.ID, inserting it when the calendar
// does not know the id yet.
func (c *Client) UpsertEvent(ctx context.Context, req UpsertEventRequest) (*Event, error) {
	if req.ID == "" {
		return nil, errors.New("event id is required")
	}
	calendarID := calendarOrDefault(req.CalendarID)
	event := toAPIEvent(req)

	saved, err := c.service.Events.Update(calendarID, req.ID, event).Context(ctx).Do()
	if isNotFound(err) {
		saved, err = c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert calendar event %s: %w", req.ID, err)
	}

	return &Event{
		ID:          saved.Id,
		Summary:     saved.Summary,
		Description: saved.Description,
		HtmlLink:    saved.HtmlLink,
		StartTime:   req.Start,
		EndTime:     req.End,
		AllDay:      req.AllDay,
		Source:      req.Source,
	}, nil
}

// ListEvents lists single events of a calendar, optionally limited to one source file.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarOrDefault(req.CalendarID)).
		Context(ctx).
		SingleEvents(true)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	if req.Source != "" {
		call = call.PrivateExtendedProperty(SourceProperty + "=" + req.Source)
	}

	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			events = append(events, fromAPIEvent(item))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event. Deleting an unknown id is not an error.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, id string) error {
	err := c.service.Events.Delete(calendarOrDefault(calendarID), id).Context(ctx).Do()
	if err != nil && !isNotFound(err) && !isGone(err) {
		return fmt.Errorf("failed to delete calendar event %s: %w", id, err)
	}
	return nil
}

func calendarOrDefault(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}

func toAPIEvent(req UpsertEventRequest) *calendar.Event {
	event := &calendar.Event{
		Id:          req.ID,
		Summary:     req.Summary,
		Description: req.Description,
		ColorId:     req.ColorID,
	}
	if req.AllDay {
		// Google expects an exclusive end date.
		event.Start = &calendar.EventDateTime{Date: req.Start.Format(dateLayout)}
		event.End = &calendar.EventDateTime{Date: req.End.AddDate(0, 0, 1).Format(dateLayout)}
	} else {
		event.Start = &calendar.EventDateTime{DateTime: req.Start.Format(time.RFC3339), TimeZone: req.Timezone}
		event.End = &calendar.EventDateTime{DateTime: req.End.Format(time.RFC3339), TimeZone: req.Timezone}
	}
	if req.Source != "" {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{SourceProperty: req.Source},
		}
	}
	return event
}

func fromAPIEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
	}
	if item.Start != nil {
		if item.Start.DateTime != "" {
			ev.StartTime, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		} else if item.Start.Date != "" {
			ev.StartTime, _ = time.Parse(dateLayout, item.Start.Date)
			ev.AllDay = true
		}
	}
	if item.End != nil {
		if item.End.DateTime != "" {
			ev.EndTime, _ = time.Parse(time.RFC3339, item.End.DateTime)
		} else if item.End.Date != "" {
			end, _ := time.Parse(dateLayout, item.End.Date)
			ev.EndTime = end.AddDate(0, 0, -1)
		}
	}
	if item.ExtendedProperties != nil {
		ev.Source = item.ExtendedProperties.Private[SourceProperty]
	}
	return ev
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}

func isGone(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusGone
}
