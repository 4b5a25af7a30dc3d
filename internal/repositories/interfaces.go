//go:generate mockgen -destination=../mocks/repositories_mock.go -package=mocks realestate-listings/internal/repositories RelationalPropertyStore,DocumentPropertyStore,PropertyCache,EntityLocker,UserRepository
//go:generate mockgen -destination=../mocks/collection_mock.go -package=mocks realestate-listings/internal/repositories Collection

package repositories

import (
	"context"
	"time"

	"realestate-listings/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RelationalPropertyStore owns the authoritative property rows and the write
// intents recorded alongside them.
type RelationalPropertyStore interface {
	// Insert writes rec and, when intent is non-nil, the intent in one transaction.
	Insert(ctx context.Context, rec *models.PropertyRecord, intent *models.WriteIntent) error
	// Get returns nil, nil when no row exists.
	Get(ctx context.Context, id string) (*models.PropertyRecord, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.PropertyRecord, error)
	// Update returns nil, nil when no row exists.
	Update(ctx context.Context, id string, upd models.RecordUpdate) (*models.PropertyRecord, error)
	// Delete removes the row together with any intents for it.
	Delete(ctx context.Context, id string) (bool, error)
	Filter(ctx context.Context, filter models.SearchFilter) ([]models.PropertyRecord, error)
	// LinkDocument sets the document reference and clears the create intent.
	LinkDocument(ctx context.Context, id, documentRef string) error
	AddIntent(ctx context.Context, intent *models.WriteIntent) error
	ClearIntent(ctx context.Context, propertyID string, op models.IntentOperation) error
	// ResolveIntent deletes the row and its intents only if the given intent
	// is still present, reporting whether it was.
	ResolveIntent(ctx context.Context, propertyID string, op models.IntentOperation) (bool, error)
	StaleIntents(ctx context.Context, before time.Time, limit int) ([]models.WriteIntent, error)
	// ExistingIDs returns the subset of ids that have a row.
	ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error)
	Ping(ctx context.Context) error
}

// DocumentPropertyStore owns the attribute documents keyed by back-reference.
type DocumentPropertyStore interface {
	Insert(ctx context.Context, doc *models.PropertyDocument) (string, error)
	// FindByBackRef returns nil, nil when no document exists.
	FindByBackRef(ctx context.Context, propertyID string) (*models.PropertyDocument, error)
	FindByBackRefs(ctx context.Context, propertyIDs []string) (map[string]*models.PropertyDocument, error)
	UpdateByBackRef(ctx context.Context, propertyID string, attrs models.Attributes) (bool, error)
	DeleteByBackRef(ctx context.Context, propertyID string) (bool, error)
	// ListBackRefs pages through documents positioned before cursor, newest first.
	ListBackRefs(ctx context.Context, cursor models.SweepCursor, limit int) ([]models.DocumentStamp, error)
	Ping(ctx context.Context) error
}

// Collection is the subset of *mongo.Collection the document store uses.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// PropertyCache is the read-through cache for composed entities. A fill
// reads the generation before loading from the stores and passes it to the
// setter, which refuses the write once an invalidation has moved it on.
type PropertyCache interface {
	// GetProperty returns nil, nil on a miss.
	GetProperty(ctx context.Context, id string) (*models.PropertyEntity, error)
	PropertyGeneration(ctx context.Context, id string) (string, error)
	// SetProperty reports false when the generation is stale.
	SetProperty(ctx context.Context, entity *models.PropertyEntity, generation string) (bool, error)
	// GetOwnerListing reports a miss with ok == false.
	GetOwnerListing(ctx context.Context, ownerID string) (entities []models.PropertyEntity, ok bool, err error)
	OwnerListingGeneration(ctx context.Context, ownerID string) (string, error)
	SetOwnerListing(ctx context.Context, ownerID, generation string, entities []models.PropertyEntity) (bool, error)
	InvalidateProperty(ctx context.Context, id string) error
	InvalidateOwnerListing(ctx context.Context, ownerID string) error
	Ping(ctx context.Context) error
}

// EntityLocker serializes writes to the same property across processes.
type EntityLocker interface {
	// Lock returns ErrEntityBusy when another holder owns the lock.
	Lock(ctx context.Context, id string) (release func(context.Context) error, err error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
