package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"realestate-listings/internal/auth"
	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/middleware"
	"realestate-listings/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const testSecret = "handler-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeProperties keeps entities in a map and records the last calls. rows
// holds owners of properties that have a row but no readable entity.
type fakeProperties struct {
	entities    map[string]*models.PropertyEntity
	rows        map[string]string
	lastOwner   string
	lastPartial map[string]interface{}
	lastFilter  models.SearchFilter
}

func newFakeProperties() *fakeProperties {
	return &fakeProperties{entities: make(map[string]*models.PropertyEntity), rows: make(map[string]string)}
}

func (f *fakeProperties) Create(ctx context.Context, ownerID string, fields models.PropertyFields, attrs models.Attributes) (*models.PropertyEntity, error) {
	f.lastOwner = ownerID
	e := &models.PropertyEntity{
		ID:           models.NewID(),
		OwnerID:      ownerID,
		Title:        fields.Title,
		PropertyType: fields.PropertyType,
		Price:        fields.Price,
		Status:       models.StatusAvailable,
		Attributes:   attrs,
	}
	f.entities[e.ID] = e
	return e, nil
}

func (f *fakeProperties) Get(ctx context.Context, id string) (*models.PropertyEntity, error) {
	if _, err := models.CanonicalID(id); err != nil {
		return nil, err
	}
	return f.entities[id], nil
}

func (f *fakeProperties) OwnerOf(ctx context.Context, id string) (string, error) {
	if _, err := models.CanonicalID(id); err != nil {
		return "", err
	}
	if e := f.entities[id]; e != nil {
		return e.OwnerID, nil
	}
	return f.rows[id], nil
}

func (f *fakeProperties) ListByOwner(ctx context.Context, ownerID string) ([]models.PropertyEntity, error) {
	out := []models.PropertyEntity{}
	for _, e := range f.entities {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeProperties) Update(ctx context.Context, id string, partial map[string]interface{}) (*models.PropertyEntity, error) {
	f.lastPartial = partial
	e := f.entities[id]
	if e != nil {
		if title, ok := partial["title"].(string); ok {
			e.Title = title
		}
	}
	return e, nil
}

func (f *fakeProperties) Delete(ctx context.Context, id string) (bool, error) {
	_, ok := f.entities[id]
	_, row := f.rows[id]
	delete(f.entities, id)
	delete(f.rows, id)
	return ok || row, nil
}

func (f *fakeProperties) Search(ctx context.Context, filter models.SearchFilter) ([]models.PropertyEntity, error) {
	f.lastFilter = filter
	return []models.PropertyEntity{}, nil
}

func newTestRouter(props PropertyManager) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := NewPropertyHandler(props)
	g := r.Group("/api/properties")
	g.GET("/search", h.SearchProperties)
	g.GET("/user/:user_id", h.ListByOwner)
	g.GET("/:id", h.GetPropertyByID)
	protected := g.Group("")
	protected.Use(middleware.AuthMiddleware(testSecret))
	protected.POST("", h.CreateProperty)
	protected.PUT("/:id", h.UpdateProperty)
	protected.DELETE("/:id", h.DeleteProperty)
	return r
}

func bearer(t *testing.T, user models.CurrentUser) string {
	t.Helper()
	token, err := auth.GenerateJWT(user, testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token.Token
}

func do(r *gin.Engine, method, path, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePropertyUsesCurrentUser(t *testing.T) {
	props := newFakeProperties()
	r := newTestRouter(props)
	owner := models.CurrentUser{ID: models.NewID(), Email: "o@example.com", Role: models.RoleOwner}

	body := `{"title":"Lakeview","property_type":"house","price":200000.00,
		"attributes":{"location":{"address":"12 Lake Rd","coordinates":{"lat":1,"lng":2}},"view":"lake"}}`
	w := do(r, http.MethodPost, "/api/properties", body, bearer(t, owner))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if props.lastOwner != owner.ID {
		t.Fatalf("owner = %s, want %s", props.lastOwner, owner.ID)
	}

	var got models.PropertyEntity
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Attributes.Location == nil || got.Attributes.Location.Address != "12 Lake Rd" || got.Attributes.Extra["view"] != "lake" {
		t.Fatalf("attributes = %+v", got.Attributes)
	}

	if w := do(r, http.MethodPost, "/api/properties", body, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create status = %d", w.Code)
	}
}

func TestUpdateAndDeleteRequireOwnerOrAdmin(t *testing.T) {
	props := newFakeProperties()
	r := newTestRouter(props)
	owner := models.CurrentUser{ID: models.NewID(), Role: models.RoleOwner}
	stranger := models.CurrentUser{ID: models.NewID(), Role: models.RoleAgent}
	admin := models.CurrentUser{ID: models.NewID(), Role: models.RoleAdmin}

	e, _ := props.Create(context.Background(), owner.ID, models.PropertyFields{Title: "A", PropertyType: models.PropertyTypeLand, Price: decimal.NewFromInt(1)}, models.Attributes{})
	path := "/api/properties/" + e.ID

	if w := do(r, http.MethodPut, path, `{"title":"B"}`, bearer(t, stranger)); w.Code != http.StatusForbidden {
		t.Fatalf("stranger update status = %d", w.Code)
	}
	w := do(r, http.MethodPut, path, `{"title":"B","price":12.5}`, bearer(t, owner))
	if w.Code != http.StatusOK {
		t.Fatalf("owner update status = %d: %s", w.Code, w.Body.String())
	}
	if _, ok := props.lastPartial["price"].(json.Number); !ok {
		t.Fatalf("price decoded as %T, want json.Number", props.lastPartial["price"])
	}

	if w := do(r, http.MethodDelete, path, "", bearer(t, stranger)); w.Code != http.StatusForbidden {
		t.Fatalf("stranger delete status = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, path, "", bearer(t, admin)); w.Code != http.StatusNoContent {
		t.Fatalf("admin delete status = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, path, "", bearer(t, admin)); w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", w.Code)
	}
}

func TestOwnerCanDeleteRowWithoutDocument(t *testing.T) {
	props := newFakeProperties()
	r := newTestRouter(props)
	owner := models.CurrentUser{ID: models.NewID(), Role: models.RoleOwner}
	stranger := models.CurrentUser{ID: models.NewID(), Role: models.RoleAgent}
	id := models.NewID()
	props.rows[id] = owner.ID
	path := "/api/properties/" + id

	if w := do(r, http.MethodGet, path, "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("read of incomplete property status = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, path, "", bearer(t, stranger)); w.Code != http.StatusForbidden {
		t.Fatalf("stranger delete status = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, path, "", bearer(t, owner)); w.Code != http.StatusNoContent {
		t.Fatalf("owner delete status = %d: %s", w.Code, w.Body.String())
	}
}

func TestGetPropertyStatuses(t *testing.T) {
	r := newTestRouter(newFakeProperties())

	if w := do(r, http.MethodGet, "/api/properties/"+models.NewID(), "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d", w.Code)
	}
	w := do(r, http.MethodGet, "/api/properties/not-a-uuid", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), apperrors.ErrCodeInvalidParameters) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestSearchParsesQuery(t *testing.T) {
	props := newFakeProperties()
	r := newTestRouter(props)

	w := do(r, http.MethodGet, "/api/properties/search?property_type=House&min_price=100000&location=lake", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	f := props.lastFilter
	if f.PropertyType == nil || *f.PropertyType != models.PropertyTypeHouse || f.MinPrice == nil || !f.MinPrice.Equal(decimal.NewFromInt(100000)) || f.Location != "lake" {
		t.Fatalf("filter = %+v", f)
	}

	if w := do(r, http.MethodGet, "/api/properties/search?max_price=cheap", "", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad price status = %d", w.Code)
	}
}
