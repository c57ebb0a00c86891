package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventlane/eventlane-go/internal/model"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

// EventFilter narrows a listing by owner email and/or a calendar-date
// window. Dates are YYYY-MM-DD strings compared lexicographically,
// DateFrom inclusive and DateTo exclusive. Zero values mean no restriction.
type EventFilter struct {
	OwnerEmail string
	DateFrom   string
	DateTo     string
}

// EventRepository handles event persistence operations.
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new EventRepository over the events collection.
func NewEventRepository(db *mongo.Database) *EventRepository {
	var coll *mongo.Collection
	if db != nil {
		coll = db.Collection("events")
	}
	return &EventRepository{coll: coll}
}

// Create inserts an event document as-is and returns the assigned id.
func (r *EventRepository) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// GetByID retrieves a single event by its id.
func (r *EventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	event := &model.Event{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// List returns all events matching the filter, in store order. Ordering
// by the derived datetime is the service layer's concern.
func (r *EventRepository) List(ctx context.Context, f EventFilter) ([]model.Event, error) {
	cursor, err := r.coll.Find(ctx, buildListFilter(f))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// Join records an attendance in one atomic document mutation: the
// attendee counter always increments, the member set only grows when
// the email is new. Repeated joins by the same member therefore inflate
// attendeeCount past the set size; that drift is the documented contract.
func (r *EventRepository) Join(ctx context.Context, id primitive.ObjectID, email string) (*model.Event, error) {
	update := bson.M{
		"$inc":      bson.M{"attendeeCount": 1},
		"$addToSet": bson.M{"joinedMembers": email},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	event := &model.Event{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func buildListFilter(f EventFilter) bson.M {
	filter := bson.M{}
	if f.OwnerEmail != "" {
		filter["email"] = f.OwnerEmail
	}
	if f.DateFrom != "" || f.DateTo != "" {
		dateRange := bson.M{}
		if f.DateFrom != "" {
			dateRange["$gte"] = f.DateFrom
		}
		if f.DateTo != "" {
			dateRange["$lt"] = f.DateTo
		}
		filter["eventDate"] = dateRange
	}
	return filter
}
