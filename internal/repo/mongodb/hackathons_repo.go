package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/espritmobile/hackhub/internal/domain/hackathon"
	"github.com/espritmobile/hackhub/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HackathonsRepo struct {
	coll *mongo.Collection
	prom *observability.Prom
}

// constructor function

func NewHackathonsRepo(mdb *mongo.Database, prom *observability.Prom) *HackathonsRepo {
	return &HackathonsRepo{
		coll: mdb.Collection("hackathons"),
		prom: prom,
	}
}

func (r *HackathonsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *HackathonsRepo) Create(ctx context.Context, req hackathon.CreateHackathonRequest) (hackathon.Hackathon, error) {
	h := hackathon.NewFromCreateRequest(req)

	err := r.observe("hackathons.insert", func() error {
		_, err := r.coll.InsertOne(ctx, h)
		return err
	})

	if err != nil {
		return hackathon.Hackathon{}, err
	}

	return h, nil
}

func (r *HackathonsRepo) List(ctx context.Context) ([]hackathon.Hackathon, error) {
	out := make([]hackathon.Hackathon, 0)

	err := r.observe("hackathons.list", func() error {
		cursor, err := r.coll.Find(ctx, bson.M{})

		if err != nil {
			return err
		}

		defer cursor.Close(ctx)

		return cursor.All(ctx, &out)
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *HackathonsRepo) GetByID(ctx context.Context, id string) (hackathon.Hackathon, error) {
	var h hackathon.Hackathon

	err := r.observe("hackathons.get", func() error {
		return r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return hackathon.Hackathon{}, hackathon.ErrNotFound
		}

		return hackathon.Hackathon{}, err
	}

	return h, nil
}

func (r *HackathonsRepo) UpdatePartial(ctx context.Context, id string, req hackathon.UpdateHackathonRequest) (hackathon.Hackathon, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if req.Title != nil {
		set["title"] = *req.Title
	}

	if req.Description != nil {
		set["description"] = *req.Description
	}

	if req.Image != nil {
		set["image"] = *req.Image
	}

	if req.Status != nil {
		set["status"] = hackathon.Status(*req.Status)
	}

	var updated hackathon.Hackathon

	err := r.observe("hackathons.update", func() error {
		return r.coll.FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return hackathon.Hackathon{}, hackathon.ErrNotFound
		}

		return hackathon.Hackathon{}, err
	}

	return updated, nil
}

func (r *HackathonsRepo) Delete(ctx context.Context, id string) (hackathon.Hackathon, error) {
	var deleted hackathon.Hackathon

	err := r.observe("hackathons.delete", func() error {
		return r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return hackathon.Hackathon{}, hackathon.ErrNotFound
		}

		return hackathon.Hackathon{}, err
	}

	return deleted, nil
}

// AddParticipant appends userID as a single conditional update: the filter
// only matches while the hackathon is open and the user is not yet a member,
// so concurrent calls cannot produce a duplicate entry.
func (r *HackathonsRepo) AddParticipant(ctx context.Context, id, userID string) (hackathon.Hackathon, error) {
	filter := bson.M{
		"_id":          id,
		"status":       bson.M{"$in": bson.A{hackathon.StatusUpcoming, hackathon.StatusOngoing}},
		"participants": bson.M{"$ne": userID},
	}

	update := bson.M{
		"$addToSet": bson.M{"participants": userID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}

	var updated hackathon.Hackathon

	err := r.observe("hackathons.add_participant", func() error {
		return r.coll.FindOneAndUpdate(
			ctx,
			filter,
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
	})

	if err == nil {
		return updated, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return hackathon.Hackathon{}, err
	}

	// The guarded update matched nothing; fetch once to name the rule that
	// blocked it. The fetched state only informs the error message.
	h, err := r.GetByID(ctx, id)

	if err != nil {
		return hackathon.Hackathon{}, err
	}

	if rerr := h.CanParticipate(userID); rerr != nil {
		return hackathon.Hackathon{}, rerr
	}

	return hackathon.Hackathon{}, fmt.Errorf("hackathon %s changed concurrently", id)
}
