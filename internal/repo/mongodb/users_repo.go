package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/espritmobile/hackhub/internal/domain/user"
	"github.com/espritmobile/hackhub/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UsersRepo struct {
	coll *mongo.Collection
	prom *observability.Prom
}

func NewUsersRepo(mdb *mongo.Database, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{
		coll: mdb.Collection("users"),
		prom: prom,
	}
}

func (r *UsersRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *UsersRepo) Create(ctx context.Context, req user.CreateUserRequest, passwordHash string) (user.User, error) {
	u := user.NewFromCreateRequest(req, passwordHash)

	err := r.observe("users.insert", func() error {
		_, err := r.coll.InsertOne(ctx, u)
		return err
	})

	if err != nil {
		// the unique index on email is the source of truth for uniqueness
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrEmailTaken
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0)

	err := r.observe("users.list", func() error {
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

func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	var u user.User

	err := r.observe("users.get", func() error {
		return r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User

	err := r.observe("users.get_by_email", func() error {
		return r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

// UpdatePartial applies a patch; passwordHash is non-nil only when the caller
// re-hashed a newly supplied credential.
func (r *UsersRepo) UpdatePartial(ctx context.Context, id string, req user.UpdateUserRequest, passwordHash *string) (user.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if req.Name != nil {
		set["name"] = *req.Name
	}

	if req.Email != nil {
		set["email"] = *req.Email
	}

	if req.Age != nil {
		set["age"] = *req.Age
	}

	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}

	if passwordHash != nil {
		set["pwd"] = *passwordHash
	}

	var updated user.User

	err := r.observe("users.update", func() error {
		return r.coll.FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}

		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrEmailTaken
		}

		return user.User{}, err
	}

	return updated, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) (user.User, error) {
	var deleted user.User

	err := r.observe("users.delete", func() error {
		return r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return deleted, nil
}
