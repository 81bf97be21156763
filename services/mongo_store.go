package services

import (
	"context"
	"fmt"

	"EmoGoBackend/config"
	"EmoGoBackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore 基于 MongoDB 的记录存储
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Driver() string { return config.StoreDriverMongo }

func (s *MongoStore) collection(kind models.RecordKind) (*mongo.Collection, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
	return s.db.Collection(kind.Collection()), nil
}

func (s *MongoStore) Insert(ctx context.Context, kind models.RecordKind, record models.Record) (string, error) {
	coll, err := s.collection(kind)
	if err != nil {
		return "", err
	}
	if record.StoredID() == "" {
		record.Stamp(primitive.NewObjectID(), nowFunc())
	}

	res, err := coll.InsertOne(ctx, record)
	if err != nil {
		return "", classifyMongoError("insert "+kind.Collection(), err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return record.StoredID(), nil
}

func (s *MongoStore) FindAll(ctx context.Context, kind models.RecordKind, opts FindOptions) ([]models.Record, error) {
	coll, err := s.collection(kind)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, classifyMongoError("find "+kind.Collection(), err)
	}
	defer cursor.Close(ctx)

	records := make([]models.Record, 0)
	for cursor.Next(ctx) {
		rec := models.NewRecord(kind)
		if err := cursor.Decode(rec); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", kind.Collection(), err)
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, classifyMongoError("iterate "+kind.Collection(), err)
	}
	return records, nil
}

func (s *MongoStore) Count(ctx context.Context, kind models.RecordKind) (int64, error) {
	coll, err := s.collection(kind)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, classifyMongoError("count "+kind.Collection(), err)
	}
	return n, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return classifyMongoError("ping", s.db.Client().Ping(ctx, readpref.Primary()))
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
