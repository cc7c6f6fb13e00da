package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestUserFlow_CRUD(t *testing.T) {
	app := setupApp(t)

	// Create
	rec := app.request("POST", "/api/v1/users", `{"email":"Bob@Test.com","password":"secret123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	userID := user["id"].(string)
	if user["email"] != "bob@test.com" {
		t.Errorf("expected lowercased email, got %v", user["email"])
	}
	if _, ok := user["password"]; ok {
		t.Error("expected password to be omitted from response")
	}

	// Read
	rec = app.request("GET", "/api/v1/users/"+userID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Update
	rec = app.request("PUT", "/api/v1/users/"+userID, `{"email":"bobby@test.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user = parseJSON(t, rec)["user"].(map[string]interface{})
	if user["email"] != "bobby@test.com" {
		t.Errorf("expected updated email, got %v", user["email"])
	}

	// Delete
	rec = app.request("DELETE", "/api/v1/users/"+userID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/users/"+userID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestUserFlow_DuplicateEmail(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/users", `{"email":"dup@test.com","password":"secret123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/users", `{"email":"DUP@test.com","password":"other456"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
}

func TestUserFlow_List(t *testing.T) {
	app := setupApp(t)

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"email":"user%d@test.com","password":"secret123"}`, i)
		rec := app.request("POST", "/api/v1/users", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/users?page=1&page_size=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 3 {
		t.Errorf("expected 3 total items, got %v", result["total_items"])
	}
	if len(result["data"].([]interface{})) != 2 {
		t.Errorf("expected 2 users on page, got %d", len(result["data"].([]interface{})))
	}
}
