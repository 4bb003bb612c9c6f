package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
)

// ClassMongoRepository stores classes in the "classes" collection.
type ClassMongoRepository struct {
	source collectionSource
	clock  clock.Clock
}

// NewClassMongoRepository constructs a MongoDB class repository.
func NewClassMongoRepository(source collectionSource, clk clock.Clock) *ClassMongoRepository {
	if clk == nil {
		clk = clock.Real{}
	}
	return &ClassMongoRepository{source: source, clock: clk}
}

func (r *ClassMongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	coll, err := r.source.Collection(ctx, classesCollection)
	if err != nil {
		return nil, fmt.Errorf("classes collection: %w", err)
	}
	return coll, nil
}

// List returns classes matching the filter, newest first.
func (r *ClassMongoRepository) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, classQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	var docs []classDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	classes := make([]models.Class, 0, len(docs))
	for _, doc := range docs {
		classes = append(classes, doc.model())
	}
	return classes, nil
}

// FindByID returns a class by its hex ObjectID.
func (r *ClassMongoRepository) FindByID(ctx context.Context, id string) (*models.Class, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, errClassNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var doc classDocument
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errClassNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	class := doc.model()
	return &class, nil
}

// Create validates and inserts a class, assigning its ID and creation time.
func (r *ClassMongoRepository) Create(ctx context.Context, class *models.Class) error {
	if err := validateDocument(class, "invalid class"); err != nil {
		return err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	class.CreatedAt = r.clock.Now()
	doc := newClassDocument(class)
	doc.ID = primitive.NewObjectID()
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	class.ID = doc.ID.Hex()
	return nil
}

// Update replaces the stored document, keeping its creation time.
func (r *ClassMongoRepository) Update(ctx context.Context, class *models.Class) error {
	oid, ok := parseObjectID(class.ID)
	if !ok {
		return errClassNotFound
	}
	if err := validateDocument(class, "invalid class"); err != nil {
		return err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	doc := newClassDocument(class)
	doc.ID = oid
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	if res.MatchedCount == 0 {
		return errClassNotFound
	}
	return nil
}

// Delete removes a class.
func (r *ClassMongoRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return errClassNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	if res.DeletedCount == 0 {
		return errClassNotFound
	}
	return nil
}
