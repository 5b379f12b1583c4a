package profiles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &Service{Repo: NewMemoryRepo()}
	handler := NewHandler(svc)

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

func TestCreateThenGetProfile(t *testing.T) {
	router := newTestRouter()

	payload := `{"name":"Ada","age":36,"bio":"Engineer","imageUrl":"http://localhost:8080/uploads/a.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created ProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id, got empty")
	}
	if created.Age != 36 {
		t.Fatalf("expected age 36, got %v", created.Age)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/profiles/"+created.ID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	var fetched ProfileResponse
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, fetched.ID)
	}
	if fetched.Name != "Ada" {
		t.Fatalf("expected name Ada, got %s", fetched.Name)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	cases := []struct {
		name        string
		payload     string
		wantStatus  int
		wantMissing string
	}{
		{"missing name", `{"age":30,"bio":"b","imageUrl":"u"}`, http.StatusBadRequest, "name"},
		{"empty name", `{"name":"  ","age":30,"bio":"b","imageUrl":"u"}`, http.StatusBadRequest, "name"},
		{"missing age", `{"name":"n","bio":"b","imageUrl":"u"}`, http.StatusBadRequest, "age"},
		{"missing bio", `{"name":"n","age":30,"imageUrl":"u"}`, http.StatusBadRequest, "bio"},
		{"missing imageUrl", `{"name":"n","age":30,"bio":"b"}`, http.StatusBadRequest, "imageUrl"},
		{"zero age is valid", `{"name":"n","age":0,"bio":"b","imageUrl":"u"}`, http.StatusCreated, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter()

			req := httptest.NewRequest(http.MethodPost, "/api/profiles", strings.NewReader(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.wantStatus, resp.Code, resp.Body.String())
			}
			if tc.wantMissing == "" {
				return
			}

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details struct {
						Fields []string `json:"fields"`
					} `json:"details"`
				} `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error.Code != "validation_error" {
				t.Fatalf("expected code validation_error, got %s", body.Error.Code)
			}
			found := false
			for _, f := range body.Error.Details.Fields {
				if f == tc.wantMissing {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %s in missing fields, got %v", tc.wantMissing, body.Error.Details.Fields)
			}
		})
	}
}

func TestCreateProfileRejectsMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/profiles", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/does-not-exist", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Fatalf("expected code not_found, got %s", body.Error.Code)
	}
}
