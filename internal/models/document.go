package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" bson:"lng" validate:"gte=-180,lte=180"`
}

type Location struct {
	Address       string      `json:"address" bson:"address" validate:"required,max=500"`
	StreetAddress string      `json:"street_address,omitempty" bson:"street_address,omitempty" validate:"max=500"`
	Coordinates   Coordinates `json:"coordinates" bson:"coordinates"`
}

type Details struct {
	Bedrooms          *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms         *int     `json:"bathrooms,omitempty" bson:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Kitchens          *int     `json:"kitchens,omitempty" bson:"kitchens,omitempty" validate:"omitempty,gte=0"`
	Lounges           *int     `json:"lounges,omitempty" bson:"lounges,omitempty" validate:"omitempty,gte=0"`
	DiningRooms       *int     `json:"dining_rooms,omitempty" bson:"dining_rooms,omitempty" validate:"omitempty,gte=0"`
	Offices           *int     `json:"offices,omitempty" bson:"offices,omitempty" validate:"omitempty,gte=0"`
	ErfSizeM2         *int     `json:"erf_size_m2,omitempty" bson:"erf_size_m2,omitempty" validate:"omitempty,gte=0"`
	FloorSizeM2       *int     `json:"floor_size_m2,omitempty" bson:"floor_size_m2,omitempty" validate:"omitempty,gte=0"`
	LeasePeriodMonths *int     `json:"lease_period_months,omitempty" bson:"lease_period_months,omitempty" validate:"omitempty,gte=0"`
	DepositRequired   *float64 `json:"deposit_required,omitempty" bson:"deposit_required,omitempty" validate:"omitempty,gte=0"`
	OccupationDate    string   `json:"occupation_date,omitempty" bson:"occupation_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type Amenities struct {
	PetsAllowed         bool `json:"pets_allowed" bson:"pets_allowed"`
	Furnished           bool `json:"furnished" bson:"furnished"`
	TemperatureControls int  `json:"temperature_controls" bson:"temperature_controls" validate:"gte=0"`
}

type Features struct {
	Pool                  bool `json:"pool" bson:"pool"`
	Balcony               bool `json:"balcony" bson:"balcony"`
	Flatlet               bool `json:"flatlet" bson:"flatlet"`
	Retirement            bool `json:"retirement" bson:"retirement"`
	Repossessed           bool `json:"repossessed" bson:"repossessed"`
	OnShow                bool `json:"on_show" bson:"on_show"`
	SecurityEstateCluster bool `json:"security_estate_cluster" bson:"security_estate_cluster"`
}

type ExternalFeatures struct {
	Parking int `json:"parking" bson:"parking" validate:"gte=0"`
	Gardens int `json:"gardens" bson:"gardens" validate:"gte=0"`
}

type PointOfInterest struct {
	Name       string  `json:"name" bson:"name" validate:"required,max=255"`
	DistanceKm float64 `json:"distance_km" bson:"distance_km" validate:"gte=0"`
}

type PointsOfInterest struct {
	Education []PointOfInterest `json:"education" bson:"education" validate:"dive"`
	Health    []PointOfInterest `json:"health" bson:"health" validate:"dive"`
	Shopping  []PointOfInterest `json:"shopping" bson:"shopping" validate:"dive"`
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type MediaItem struct {
	URL  string    `json:"url" bson:"url" validate:"required,url"`
	Type MediaType `json:"type" bson:"type" validate:"required,oneof=image video"`
}

// Attribute group keys recognized in the document.
const (
	KeyLocation         = "location"
	KeyDetails          = "details"
	KeyAmenities        = "amenities"
	KeyFeatures         = "features"
	KeyExternalFeatures = "external_features"
	KeyPointsOfInterest = "points_of_interest"
	KeyMedia            = "media"
)

// Document bookkeeping keys, never writable through attributes.
const (
	KeyDocumentID = "_id"
	KeyBackRef    = "property_id"
	KeyOwnerID    = "owner_id"
	KeyCreatedAt  = "created_at"
)

var recognizedKeys = []string{
	KeyLocation, KeyDetails, KeyAmenities, KeyFeatures,
	KeyExternalFeatures, KeyPointsOfInterest, KeyMedia,
}

// IsReservedDocumentKey reports whether key belongs to document bookkeeping.
func IsReservedDocumentKey(key string) bool {
	switch key {
	case KeyDocumentID, KeyBackRef, KeyOwnerID, KeyCreatedAt:
		return true
	}
	return false
}

// Attributes is the variable-shape part of a listing. Recognized groups are
// typed; a nil group means "not present". Unrecognized keys are kept in Extra.
type Attributes struct {
	Location         *Location              `json:"location,omitempty"`
	Details          *Details               `json:"details,omitempty"`
	Amenities        *Amenities             `json:"amenities,omitempty"`
	Features         *Features              `json:"features,omitempty"`
	ExternalFeatures *ExternalFeatures      `json:"external_features,omitempty"`
	PointsOfInterest *PointsOfInterest      `json:"points_of_interest,omitempty"`
	Media            []MediaItem            `json:"media,omitempty" validate:"dive"`
	Extra            map[string]interface{} `json:"-"`
}

type attributesJSON Attributes

func (a *Attributes) UnmarshalJSON(data []byte) error {
	var known attributesJSON
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range recognizedKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		known.Extra = raw
	}
	*a = Attributes(known)
	return nil
}

func (a Attributes) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(attributesJSON(a))
	if err != nil {
		return nil, err
	}
	if len(a.Extra) == 0 {
		return known, nil
	}
	out := make(map[string]json.RawMessage, len(a.Extra)+len(recognizedKeys))
	for k, v := range a.Extra {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = b
	}
	var knownFields map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownFields); err != nil {
		return nil, err
	}
	for k, v := range knownFields {
		out[k] = v
	}
	return json.Marshal(out)
}

// Keys lists the top-level keys present in a.
func (a Attributes) Keys() []string {
	return keysOf(a.Fields())
}

func keysOf(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Fields flattens the present groups and extras into a key/value map, the
// shape of a document $set.
func (a Attributes) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, len(a.Extra)+len(recognizedKeys))
	for k, v := range a.Extra {
		fields[k] = v
	}
	if a.Location != nil {
		fields[KeyLocation] = a.Location
	}
	if a.Details != nil {
		fields[KeyDetails] = a.Details
	}
	if a.Amenities != nil {
		fields[KeyAmenities] = a.Amenities
	}
	if a.Features != nil {
		fields[KeyFeatures] = a.Features
	}
	if a.ExternalFeatures != nil {
		fields[KeyExternalFeatures] = a.ExternalFeatures
	}
	if a.PointsOfInterest != nil {
		fields[KeyPointsOfInterest] = a.PointsOfInterest
	}
	if a.Media != nil {
		fields[KeyMedia] = a.Media
	}
	return fields
}

// IsEmpty reports whether no group or extra key is present.
func (a Attributes) IsEmpty() bool {
	return len(a.Fields()) == 0
}

// Merge applies patch on top of a: present groups replace whole groups,
// extra keys are overwritten one by one.
func (a Attributes) Merge(patch Attributes) Attributes {
	out := a
	if patch.Location != nil {
		out.Location = patch.Location
	}
	if patch.Details != nil {
		out.Details = patch.Details
	}
	if patch.Amenities != nil {
		out.Amenities = patch.Amenities
	}
	if patch.Features != nil {
		out.Features = patch.Features
	}
	if patch.ExternalFeatures != nil {
		out.ExternalFeatures = patch.ExternalFeatures
	}
	if patch.PointsOfInterest != nil {
		out.PointsOfInterest = patch.PointsOfInterest
	}
	if patch.Media != nil {
		out.Media = patch.Media
	}
	if len(patch.Extra) > 0 {
		extra := make(map[string]interface{}, len(a.Extra)+len(patch.Extra))
		for k, v := range a.Extra {
			extra[k] = v
		}
		for k, v := range patch.Extra {
			extra[k] = v
		}
		out.Extra = extra
	}
	return out
}

// PropertyDocument is the stored shape in the document collection.
type PropertyDocument struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty"`
	BackRef          string                 `bson:"property_id"`
	OwnerID          string                 `bson:"owner_id,omitempty"`
	CreatedAt        time.Time              `bson:"created_at"`
	Location         *Location              `bson:"location,omitempty"`
	Details          *Details               `bson:"details,omitempty"`
	Amenities        *Amenities             `bson:"amenities,omitempty"`
	Features         *Features              `bson:"features,omitempty"`
	ExternalFeatures *ExternalFeatures      `bson:"external_features,omitempty"`
	PointsOfInterest *PointsOfInterest      `bson:"points_of_interest,omitempty"`
	Media            []MediaItem            `bson:"media,omitempty"`
	Extra            map[string]interface{} `bson:",inline"`
}

// NewPropertyDocument builds the document for a new entity. The owner is a
// redundant copy; the relational record stays authoritative for it.
func NewPropertyDocument(propertyID, ownerID string, attrs Attributes, now time.Time) *PropertyDocument {
	return &PropertyDocument{
		BackRef:          propertyID,
		OwnerID:          ownerID,
		CreatedAt:        now,
		Location:         attrs.Location,
		Details:          attrs.Details,
		Amenities:        attrs.Amenities,
		Features:         attrs.Features,
		ExternalFeatures: attrs.ExternalFeatures,
		PointsOfInterest: attrs.PointsOfInterest,
		Media:            attrs.Media,
		Extra:            attrs.Extra,
	}
}

// Attributes returns the attribute view of the document.
func (d *PropertyDocument) Attributes() Attributes {
	return Attributes{
		Location:         d.Location,
		Details:          d.Details,
		Amenities:        d.Amenities,
		Features:         d.Features,
		ExternalFeatures: d.ExternalFeatures,
		PointsOfInterest: d.PointsOfInterest,
		Media:            d.Media,
		Extra:            plainExtra(d.Extra),
	}
}

// plainExtra converts driver-specific containers decoded into the inline map
// into plain maps and slices so the attributes encode as ordinary JSON.
func plainExtra(extra map[string]interface{}) map[string]interface{} {
	if len(extra) == 0 {
		return nil
	}
	return plainMap(extra)
}

func plainMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case primitive.M:
		return plainMap(val)
	case map[string]interface{}:
		return plainMap(val)
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plainValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// DocumentStamp identifies a document by back-reference and creation time.
type DocumentStamp struct {
	ID        primitive.ObjectID `bson:"_id"`
	BackRef   string             `bson:"property_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Cursor positions the next page of a newest-first walk right after s.
func (s DocumentStamp) Cursor() SweepCursor {
	return SweepCursor{Before: s.CreatedAt, BeforeID: s.ID}
}

// SweepCursor positions a newest-first walk over documents ordered by
// (created_at, _id). With a zero BeforeID everything created at Before is
// excluded; otherwise documents created at Before continue below BeforeID.
type SweepCursor struct {
	Before   time.Time
	BeforeID primitive.ObjectID
}
