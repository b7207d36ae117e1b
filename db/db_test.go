package db

import (
	"context"
	"testing"
	"time"

	"archetypeagent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestExtractDBName(t *testing.T) {
	assert.Equal(t, "profiles", extractDBName("mongodb://localhost:27017/profiles"))
	assert.Equal(t, "archetypes", extractDBName("mongodb://localhost:27017/"))
	assert.Equal(t, "archetypes", extractDBName("mongodb://localhost:27017"))
}

func TestAssessmentArchive(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		archive := NewAssessmentArchive(mt.Coll)

		err := archive.Save(context.Background(), models.Assessment{ID: "a1", Model: "archetype", CreatedAt: time.Now()})
		require.NoError(mt, err)
	})

	mt.Run("save duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		archive := NewAssessmentArchive(mt.Coll)

		err := archive.Save(context.Background(), models.Assessment{ID: "a1"})
		require.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})

	mt.Run("find", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "a1"},
			{Key: "model", Value: "jungian"},
			{Key: "freeText", Value: "vivid dreams"},
		}))
		archive := NewAssessmentArchive(mt.Coll)

		got, err := archive.Find(context.Background(), "a1")
		require.NoError(mt, err)
		assert.Equal(mt, "a1", got.ID)
		assert.Equal(mt, "jungian", got.Model)
		assert.Equal(mt, "vivid dreams", got.FreeText)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		archive := NewAssessmentArchive(mt.Coll)

		_, err := archive.Find(context.Background(), "nope")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
