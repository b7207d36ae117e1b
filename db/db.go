package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"archetypeagent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("assessment not found")

// extractDBName parses the database name from the URI, defaulting to "archetypes"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "archetypes"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "archetypes"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
// and returns the named database
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(extractDBName(uri)), nil
}

// AssessmentArchive keeps exported assessments in a Mongo collection
type AssessmentArchive struct {
	coll *mongo.Collection
}

func NewAssessmentArchive(coll *mongo.Collection) *AssessmentArchive {
	return &AssessmentArchive{coll: coll}
}

// Save inserts an assessment. Assessments are immutable so an id is written once.
func (a *AssessmentArchive) Save(ctx context.Context, assessment models.Assessment) error {
	if _, err := a.coll.InsertOne(ctx, assessment); err != nil {
		return fmt.Errorf("archive assessment %s: %w", assessment.ID, err)
	}
	return nil
}

// Find loads an assessment by id
func (a *AssessmentArchive) Find(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find assessment %s: %w", id, err)
	}
	return &assessment, nil
}
