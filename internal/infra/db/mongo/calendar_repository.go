package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainavailability "stayquote/internal/domain/availability"
	"stayquote/internal/domain/shared/money"
)

var ErrConcurrentUpdate = errors.New("mongo: concurrent update detected")

type CalendarRepository struct {
	col *mongo.Collection
}

func NewCalendarRepository(db *mongo.Database) *CalendarRepository {
	return &CalendarRepository{col: db.Collection("agg_rate_calendar")}
}

func (r *CalendarRepository) Calendar(ctx context.Context, id domainavailability.PropertyID) (*domainavailability.RateCalendar, error) {
	var doc calendarDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainavailability.ErrCalendarNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *CalendarRepository) Save(ctx context.Context, cal *domainavailability.RateCalendar) error {
	doc := newCalendarDocument(cal)
	filter := bson.M{"_id": doc.ID, "version": cal.Version}
	doc.Version = cal.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	cal.Version = doc.Version
	return nil
}

type calendarDocument struct {
	ID                string             `bson:"_id"`
	BaseNightlyCents  int64              `bson:"base_nightly_cents"`
	Currency          string             `bson:"currency"`
	Overrides         []overrideDocument `bson:"overrides"`
	Blocked           []blockedDocument  `bson:"blocked"`
	MinStay           int                `bson:"min_stay"`
	MaxStay           int                `bson:"max_stay"`
	CleaningFeeCents  int64              `bson:"cleaning_fee_cents"`
	ServiceFeePercent float64            `bson:"service_fee_percent"`
	TaxPercent        float64            `bson:"tax_percent"`
	Version           int64              `bson:"version"`
}

type overrideDocument struct {
	Date    int64 `bson:"date"`
	Cents   int64 `bson:"cents"`
	Special bool  `bson:"special"`
}

type blockedDocument struct {
	Date   int64  `bson:"date"`
	Reason string `bson:"reason"`
}

func newCalendarDocument(cal *domainavailability.RateCalendar) calendarDocument {
	doc := calendarDocument{
		ID:                string(cal.PropertyID),
		BaseNightlyCents:  cal.BaseNightly.Amount,
		Currency:          cal.BaseNightly.Currency,
		MinStay:           cal.MinStay,
		MaxStay:           cal.MaxStay,
		CleaningFeeCents:  cal.CleaningFee.Amount,
		ServiceFeePercent: cal.ServiceFeePercent,
		TaxPercent:        cal.TaxPercent,
		Version:           cal.Version,
	}
	for _, o := range cal.Overrides {
		doc.Overrides = append(doc.Overrides, overrideDocument{Date: o.Date.UnixMilli(), Cents: o.Nightly.Amount, Special: o.Special})
	}
	for _, b := range cal.Blocked {
		doc.Blocked = append(doc.Blocked, blockedDocument{Date: b.Date.UnixMilli(), Reason: string(b.Reason)})
	}
	return doc
}

func (d calendarDocument) toAggregate() *domainavailability.RateCalendar {
	cal := &domainavailability.RateCalendar{
		PropertyID:        domainavailability.PropertyID(d.ID),
		BaseNightly:       money.Money{Amount: d.BaseNightlyCents, Currency: d.Currency},
		MinStay:           d.MinStay,
		MaxStay:           d.MaxStay,
		CleaningFee:       money.Money{Amount: d.CleaningFeeCents, Currency: d.Currency},
		ServiceFeePercent: d.ServiceFeePercent,
		TaxPercent:        d.TaxPercent,
		Version:           d.Version,
	}
	for _, o := range d.Overrides {
		cal.Overrides = append(cal.Overrides, domainavailability.RateOverride{
			Date:    timestampToTime(o.Date),
			Nightly: money.Money{Amount: o.Cents, Currency: d.Currency},
			Special: o.Special,
		})
	}
	for _, b := range d.Blocked {
		cal.Blocked = append(cal.Blocked, domainavailability.BlockedDate{
			Date:   timestampToTime(b.Date),
			Reason: domainavailability.BlockReason(b.Reason),
		})
	}
	return cal
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ domainavailability.Repository = (*CalendarRepository)(nil)
