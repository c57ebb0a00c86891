package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventlane/eventlane-go/internal/model"
	"github.com/eventlane/eventlane-go/internal/repository"
)

var (
	ErrEmptyEvent    = errors.New("event payload is empty")
	ErrEmailRequired = errors.New("email is required")
	ErrEventNotFound = errors.New("event not found")
)

const dateLayout = "2006-01-02"

// EventStore is the persistence surface the event service needs.
type EventStore interface {
	Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	List(ctx context.Context, f repository.EventFilter) ([]model.Event, error)
	Join(ctx context.Context, id primitive.ObjectID, email string) (*model.Event, error)
}

// EventService handles event creation, listing, retrieval and joins.
type EventService struct {
	store EventStore
}

// NewEventService creates a new EventService.
func NewEventService(store EventStore) *EventService {
	return &EventService{store: store}
}

// Add persists an organizer-supplied document as-is, filling in the
// attendance defaults when absent.
func (s *EventService) Add(ctx context.Context, doc map[string]any) (primitive.ObjectID, error) {
	if len(doc) == 0 {
		return primitive.NilObjectID, ErrEmptyEvent
	}

	insert := bson.M(doc)
	if _, ok := insert["attendeeCount"]; !ok {
		insert["attendeeCount"] = 0
	}
	if _, ok := insert["joinedMembers"]; !ok {
		insert["joinedMembers"] = []string{}
	}

	return s.store.Create(ctx, insert)
}

// List returns events matching the optional owner email and date-range
// filter, ordered descending by the derived eventDate+eventTime key.
func (s *EventService) List(ctx context.Context, ownerEmail, filterByDate string) ([]model.Event, error) {
	f := repository.EventFilter{OwnerEmail: ownerEmail}
	if from, to, ok := dateWindow(filterByDate, time.Now()); ok {
		f.DateFrom = from
		f.DateTo = to
	}

	events, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].SortKey() > events[j].SortKey()
	})

	return events, nil
}

// Get retrieves a single event by id.
func (s *EventService) Get(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// Join records an attendance for the email and returns the updated event.
func (s *EventService) Join(ctx context.Context, id primitive.ObjectID, email string) (*model.Event, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	event, err := s.store.Join(ctx, id, email)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// dateWindow computes the [from, to) calendar-date window a filter name
// selects, relative to now. Unknown names select nothing.
func dateWindow(filter string, now time.Time) (from, to string, ok bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var start, end time.Time
	switch filter {
	case "thisWeek":
		// Most recent Sunday through the following Sunday.
		start = day.AddDate(0, 0, -int(day.Weekday()))
		end = start.AddDate(0, 0, 7)
	case "lastWeek":
		start = day.AddDate(0, 0, -7)
		end = day
	case "currentMonth":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0)
	case "lastMonth":
		end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start = end.AddDate(0, -1, 0)
	default:
		return "", "", false
	}

	return start.Format(dateLayout), end.Format(dateLayout), true
}
