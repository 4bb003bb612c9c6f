package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
)

const (
	resourcesCollection = "resources"
	classesCollection   = "classes"
)

// collectionSource hands out collections from a lazily connected database.
type collectionSource interface {
	Collection(ctx context.Context, name string) (*mongo.Collection, error)
}

type resourceDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	SubjectCode string             `bson:"subjectCode,omitempty"`
	Header      string             `bson:"header,omitempty"`
	University  string             `bson:"university"`
	Scheme      string             `bson:"scheme,omitempty"`
	College     string             `bson:"college,omitempty"`
	Branch      string             `bson:"branch,omitempty"`
	Semester    string             `bson:"semester,omitempty"`
	Type        string             `bson:"type"`
	FileURL     string             `bson:"fileUrl"`
	UploadedAt  time.Time          `bson:"uploadedAt"`
}

func newResourceDocument(r *models.Resource) resourceDocument {
	return resourceDocument{
		Name:        r.Name,
		SubjectCode: r.SubjectCode,
		Header:      r.Header,
		University:  string(r.University),
		Scheme:      string(r.Scheme),
		College:     r.College,
		Branch:      string(r.Branch),
		Semester:    string(r.Semester),
		Type:        string(r.Type),
		FileURL:     r.FileURL,
		UploadedAt:  r.UploadedAt,
	}
}

func (d resourceDocument) model() models.Resource {
	return models.Resource{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		SubjectCode: d.SubjectCode,
		Header:      d.Header,
		University:  models.University(d.University),
		Scheme:      models.Scheme(d.Scheme),
		College:     d.College,
		Branch:      models.Branch(d.Branch),
		Semester:    models.Semester(d.Semester),
		Type:        models.ResourceType(d.Type),
		FileURL:     d.FileURL,
		UploadedAt:  d.UploadedAt.UTC(),
	}
}

type classDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Status     string             `bson:"status"`
	Schedule   string             `bson:"schedule"`
	Time       string             `bson:"time"`
	University string             `bson:"university"`
	College    string             `bson:"college,omitempty"`
	Branch     string             `bson:"branch"`
	Semester   string             `bson:"semester"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func newClassDocument(c *models.Class) classDocument {
	return classDocument{
		Name:       c.Name,
		Status:     string(c.Status),
		Schedule:   c.Schedule,
		Time:       c.Time,
		University: string(c.University),
		College:    c.College,
		Branch:     string(c.Branch),
		Semester:   string(c.Semester),
		CreatedAt:  c.CreatedAt,
	}
}

func (d classDocument) model() models.Class {
	return models.Class{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Status:     models.ClassStatus(d.Status),
		Schedule:   d.Schedule,
		Time:       d.Time,
		University: models.University(d.University),
		College:    d.College,
		Branch:     models.Branch(d.Branch),
		Semester:   models.Semester(d.Semester),
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

// equalityFilter builds a bson filter from the set fields, skipping "all".
func equalityFilter(pairs ...string) bson.M {
	filter := bson.M{}
	for i := 0; i+1 < len(pairs); i += 2 {
		value := pairs[i+1]
		if value == "" || value == models.FilterAll {
			continue
		}
		filter[pairs[i]] = value
	}
	return filter
}

func resourceQuery(f models.ResourceFilter) bson.M {
	return equalityFilter("university", f.University, "branch", f.Branch, "semester", f.Semester, "type", f.Type)
}

func classQuery(f models.ClassFilter) bson.M {
	return equalityFilter("university", f.University, "branch", f.Branch, "semester", f.Semester, "status", f.Status)
}

// parseObjectID reports ok=false for ids that cannot name a stored document.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
