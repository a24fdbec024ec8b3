package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"limoapi/internal/repositories"
)

func serviceTestRouter(repo repositories.ServiceRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := ServiceHandler{Repo: repo, Dev: true}
	r.POST("/api/services", h.Create)
	r.PUT("/api/services/:id", h.Update)
	r.GET("/api/services/slug/:slug", h.GetBySlug)
	return r
}

func TestServiceCreate_SlugTakenIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM services WHERE slug = \?`).
		WithArgs("weddings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	r := serviceTestRouter(repositories.ServiceRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/services",
		strings.NewReader(`{"slug":"weddings","title":"Weddings"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestServiceCreate_RejectsBadSlug(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	r := serviceTestRouter(repositories.ServiceRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/services",
		strings.NewReader(`{"slug":"Not A Slug","title":"Weddings"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestServiceUpdate_NullDescriptionClearsIt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM services s WHERE s\.id = \?`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "title", "description", "image", "is_active", "created_at", "booking_count",
		}).AddRow("s1", "weddings", "Weddings", "Old copy", "", true, time.Now(), 0))
	mock.ExpectExec(`UPDATE services SET description=\? WHERE id=\?`).
		WithArgs(nil, "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM services s WHERE s\.id = \?`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "title", "description", "image", "is_active", "created_at", "booking_count",
		}).AddRow("s1", "weddings", "Weddings", "", "", true, time.Now(), 0))

	r := serviceTestRouter(repositories.ServiceRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/services/s1",
		strings.NewReader(`{"description":null}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestServiceGetBySlug_InactiveHiddenFromPublic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM services s WHERE s\.slug = \? AND s\.is_active = 1`).
		WithArgs("retired").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "title", "description", "image", "is_active", "created_at", "booking_count",
		}))

	r := serviceTestRouter(repositories.ServiceRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services/slug/retired", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
