package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Stsam98/employee-service/internal/models"
)

// mockEmployeeService is a mock implementation of EmployeeService
type mockEmployeeService struct {
	employee  *models.Employee
	employees []models.Employee
	err       error
}

func (m *mockEmployeeService) Create(ctx context.Context, payload map[string]any) (*models.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employee, nil
}

func (m *mockEmployeeService) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employee, nil
}

func (m *mockEmployeeService) GetAll(ctx context.Context) ([]models.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employees, nil
}

func (m *mockEmployeeService) GetByName(ctx context.Context, name string) (*models.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employee, nil
}

func (m *mockEmployeeService) Update(ctx context.Context, id int, payload map[string]any) (*models.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employee, nil
}

func (m *mockEmployeeService) Delete(ctx context.Context, id int) error {
	return m.err
}

// passthroughAuth stands in for the auth middleware in handler tests
func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func setupEmployeeRouter(svc EmployeeService) chi.Router {
	handler := NewEmployeeHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	handler.RegisterRoutes(r, passthroughAuth)
	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		city := "Berlin"
		svc := &mockEmployeeService{
			employee: &models.Employee{ID: 1, Name: "Ann", Surname: "Lee", Position: "Engineer", City: &city},
		}
		r := setupEmployeeRouter(svc)

		body := bytes.NewBufferString(`{"name":"Ann","surname":"Lee","position":"Engineer","city":"Berlin"}`)
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got models.Employee
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 1, got.ID)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("validation failure carries field names", func(t *testing.T) {
		svc := &mockEmployeeService{
			err: &models.ValidationError{Kind: models.MissingFields, Fields: []string{"surname"}},
		}
		r := setupEmployeeRouter(svc)

		body := bytes.NewBufferString(`{"name":"Ann","position":"Engineer"}`)
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var got struct {
			Error  string   `json:"error"`
			Fields []string `json:"fields"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "missing required fields", got.Error)
		assert.Equal(t, []string{"surname"}, got.Fields)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{})

		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{not json`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc := &mockEmployeeService{
			employees: []models.Employee{
				{ID: 1, Name: "Ann", Surname: "Lee", Position: "Engineer"},
				{ID: 2, Name: "Bob", Surname: "Ray", Position: "Manager"},
			},
		}
		r := setupEmployeeRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.Employee
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("empty list renders as array", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{})

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockEmployeeService{
			employee: &models.Employee{ID: 1, Name: "Ann", Surname: "Lee", Position: "Engineer"},
		}
		r := setupEmployeeRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/employees/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		// City must render as JSON null when unset
		var got map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		v, ok := got["city"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("not found", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{err: models.ErrEmployeeNotFound})

		req := httptest.NewRequest(http.MethodGet, "/employees/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{})

		req := httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockEmployeeService{
			employee: &models.Employee{ID: 1, Name: "Ann", Surname: "Lee", Position: "Engineer"},
		}
		r := setupEmployeeRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/employees/by-name/Ann", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{err: models.ErrEmployeeNotFound})

		req := httptest.NewRequest(http.MethodGet, "/employees/by-name/Ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("updated via PATCH", func(t *testing.T) {
		city := "Porto"
		svc := &mockEmployeeService{
			employee: &models.Employee{ID: 4, Name: "Ann", Surname: "Lee", Position: "Engineer", City: &city},
		}
		r := setupEmployeeRouter(svc)

		body := bytes.NewBufferString(`{"city":"Porto"}`)
		req := httptest.NewRequest(http.MethodPatch, "/employees/4", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Employee
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.NotNil(t, got.City)
		assert.Equal(t, "Porto", *got.City)
	})

	t.Run("updated via PUT", func(t *testing.T) {
		svc := &mockEmployeeService{
			employee: &models.Employee{ID: 4, Name: "Ann", Surname: "Lee", Position: "Lead"},
		}
		r := setupEmployeeRouter(svc)

		body := bytes.NewBufferString(`{"position":"Lead"}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/4", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{err: models.ErrEmployeeNotFound})

		body := bytes.NewBufferString(`{"city":"Porto"}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/99", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := &mockEmployeeService{
			err: &models.ValidationError{Kind: models.InvalidFieldTypes, Fields: []string{"position"}},
		}
		r := setupEmployeeRouter(svc)

		body := bytes.NewBufferString(`{"position":7}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/4", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "position")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{})

		req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"deleted"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		r := setupEmployeeRouter(&mockEmployeeService{err: models.ErrEmployeeNotFound})

		req := httptest.NewRequest(http.MethodDelete, "/employees/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
