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

// ResourceMongoRepository stores resources in the "resources" collection.
type ResourceMongoRepository struct {
	source collectionSource
	clock  clock.Clock
}

// NewResourceMongoRepository constructs a MongoDB resource repository.
func NewResourceMongoRepository(source collectionSource, clk clock.Clock) *ResourceMongoRepository {
	if clk == nil {
		clk = clock.Real{}
	}
	return &ResourceMongoRepository{source: source, clock: clk}
}

func (r *ResourceMongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	coll, err := r.source.Collection(ctx, resourcesCollection)
	if err != nil {
		return nil, fmt.Errorf("resources collection: %w", err)
	}
	return coll, nil
}

// List returns resources matching the filter, newest upload first.
func (r *ResourceMongoRepository) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := coll.Find(ctx, resourceQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	var docs []resourceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	resources := make([]models.Resource, 0, len(docs))
	for _, doc := range docs {
		resources = append(resources, doc.model())
	}
	return resources, nil
}

// FindByID returns a resource by its hex ObjectID.
func (r *ResourceMongoRepository) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, errResourceNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var doc resourceDocument
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errResourceNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	resource := doc.model()
	return &resource, nil
}

// Create validates and inserts a resource, assigning its ID and upload time.
func (r *ResourceMongoRepository) Create(ctx context.Context, resource *models.Resource) error {
	if err := validateDocument(resource, "invalid resource"); err != nil {
		return err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	resource.UploadedAt = r.clock.Now()
	doc := newResourceDocument(resource)
	doc.ID = primitive.NewObjectID()
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	resource.ID = doc.ID.Hex()
	return nil
}

// Update replaces the stored document, keeping its upload time.
func (r *ResourceMongoRepository) Update(ctx context.Context, resource *models.Resource) error {
	oid, ok := parseObjectID(resource.ID)
	if !ok {
		return errResourceNotFound
	}
	if err := validateDocument(resource, "invalid resource"); err != nil {
		return err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	doc := newResourceDocument(resource)
	doc.ID = oid
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if res.MatchedCount == 0 {
		return errResourceNotFound
	}
	return nil
}

// Delete removes a resource.
func (r *ResourceMongoRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return errResourceNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if res.DeletedCount == 0 {
		return errResourceNotFound
	}
	return nil
}
