package repositories

import (
	"context"
	"fmt"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/utils"
	"realestate-listings/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertyDocumentRepository struct {
	collection Collection
	name       string
	ping       func(ctx context.Context) error
}

// NewPropertyDocumentRepository stores attribute documents in the named collection of db.
func NewPropertyDocumentRepository(db *mongo.Database, collection string) DocumentPropertyStore {
	mdb := database.NewMongoDatabase(db)
	return &propertyDocumentRepository{
		collection: mdb.GetCollection(collection),
		name:       collection,
		ping:       mdb.Ping,
	}
}

// NewPropertyDocumentRepositoryWithCollection is used when the caller already
// holds a collection handle.
func NewPropertyDocumentRepositoryWithCollection(collection Collection, name string) DocumentPropertyStore {
	return &propertyDocumentRepository{collection: collection, name: name}
}

func (r *propertyDocumentRepository) observe(op string, start time.Time, err error) {
	utils.RecordMongoOperationDuration(op, r.name, start)
	if err != nil {
		utils.RecordMongoError(op, r.name)
	}
}

func (r *propertyDocumentRepository) Insert(ctx context.Context, doc *models.PropertyDocument) (string, error) {
	backRef, err := models.CanonicalID(doc.BackRef)
	if err != nil {
		return "", err
	}
	doc.BackRef = backRef
	for key := range doc.Extra {
		if models.IsReservedDocumentKey(key) {
			return "", fmt.Errorf("attribute key %q is reserved: %w", key, apperrors.ErrInvalidInput)
		}
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	start := time.Now()
	_, err = r.collection.InsertOne(ctx, doc)
	r.observe("insert", start, err)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: %v", apperrors.ErrConstraintViolation, err)
		}
		return "", err
	}
	return doc.ID.Hex(), nil
}

func (r *propertyDocumentRepository) FindByBackRef(ctx context.Context, propertyID string) (*models.PropertyDocument, error) {
	backRef, err := models.CanonicalID(propertyID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	var doc models.PropertyDocument
	err = r.collection.FindOne(ctx, bson.M{models.KeyBackRef: backRef}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		r.observe("find_one", start, nil)
		return nil, nil
	}
	r.observe("find_one", start, err)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *propertyDocumentRepository) FindByBackRefs(ctx context.Context, propertyIDs []string) (map[string]*models.PropertyDocument, error) {
	docs := make(map[string]*models.PropertyDocument, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return docs, nil
	}
	refs := make([]string, 0, len(propertyIDs))
	for _, id := range propertyIDs {
		backRef, err := models.CanonicalID(id)
		if err != nil {
			return nil, err
		}
		refs = append(refs, backRef)
	}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{models.KeyBackRef: bson.M{"$in": refs}})
	if err != nil {
		r.observe("find", start, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var found []models.PropertyDocument
	err = cursor.All(ctx, &found)
	r.observe("find", start, err)
	if err != nil {
		return nil, err
	}
	for i := range found {
		docs[found[i].BackRef] = &found[i]
	}
	return docs, nil
}

func (r *propertyDocumentRepository) UpdateByBackRef(ctx context.Context, propertyID string, attrs models.Attributes) (bool, error) {
	backRef, err := models.CanonicalID(propertyID)
	if err != nil {
		return false, err
	}
	fields := attrs.Fields()
	for key := range fields {
		if models.IsReservedDocumentKey(key) {
			return false, fmt.Errorf("attribute key %q is reserved: %w", key, apperrors.ErrInvalidInput)
		}
	}
	if len(fields) == 0 {
		doc, err := r.FindByBackRef(ctx, backRef)
		return doc != nil, err
	}

	start := time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{models.KeyBackRef: backRef}, bson.M{"$set": fields})
	r.observe("update_one", start, err)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *propertyDocumentRepository) DeleteByBackRef(ctx context.Context, propertyID string) (bool, error) {
	backRef, err := models.CanonicalID(propertyID)
	if err != nil {
		return false, err
	}
	start := time.Now()
	res, err := r.collection.DeleteOne(ctx, bson.M{models.KeyBackRef: backRef})
	r.observe("delete_one", start, err)
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *propertyDocumentRepository) ListBackRefs(ctx context.Context, cursor models.SweepCursor, limit int) ([]models.DocumentStamp, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, models.KeyBackRef: 1, models.KeyCreatedAt: 1}).
		SetSort(bson.D{{Key: models.KeyCreatedAt, Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	start := time.Now()
	c, err := r.collection.Find(ctx, sweepFilter(cursor), opts)
	if err != nil {
		r.observe("list_back_refs", start, err)
		return nil, err
	}
	defer c.Close(ctx)

	var stamps []models.DocumentStamp
	err = c.All(ctx, &stamps)
	r.observe("list_back_refs", start, err)
	if err != nil {
		return nil, err
	}
	return stamps, nil
}

func sweepFilter(cursor models.SweepCursor) bson.M {
	if cursor.BeforeID.IsZero() {
		return bson.M{models.KeyCreatedAt: bson.M{"$lt": cursor.Before}}
	}
	return bson.M{"$or": bson.A{
		bson.M{models.KeyCreatedAt: bson.M{"$lt": cursor.Before}},
		bson.M{models.KeyCreatedAt: cursor.Before, "_id": bson.M{"$lt": cursor.BeforeID}},
	}}
}

func (r *propertyDocumentRepository) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}
