package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kayotadakota/cat-exhibition/config"
	"github.com/kayotadakota/cat-exhibition/database"
	"github.com/kayotadakota/cat-exhibition/models"
	v1 "github.com/kayotadakota/cat-exhibition/routes/v1"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.JWTSecret = "test-secret"

	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Breed{}, &models.Cat{}, &models.Rating{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	r := gin.New()
	v1.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+"/api/v1"+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func registerAndLogin(t *testing.T, baseURL, username string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": "password"}
	if status, body := doReq(t, baseURL, "POST", "/user/register", "", creds); status != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d body=%s", username, status, body)
	}

	status, body := doReq(t, baseURL, "POST", "/user/login", "", creds)
	if status != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", username, status, body)
	}

	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &auth); err != nil || auth.Token == "" {
		t.Fatalf("login %s: no token in %s", username, body)
	}
	return auth.Token
}

func TestHTTP_EndToEnd_CatLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// An empty exhibition lists as an empty array
	{
		status, body := doReq(t, ts.URL, "GET", "/cats", "", nil)
		if status != http.StatusOK {
			t.Fatalf("expected 200 for empty cat list, got %d", status)
		}
		var list []json.RawMessage
		if err := json.Unmarshal(body, &list); err != nil || len(list) != 0 {
			t.Fatalf("expected empty array, got %s", body)
		}
	}

	tokenA := registerAndLogin(t, ts.URL, "alice")
	tokenB := registerAndLogin(t, ts.URL, "bob")

	// Registering the same username again is a 400
	{
		creds := map[string]string{"username": "alice", "password": "password"}
		status, _ := doReq(t, ts.URL, "POST", "/user/register", "", creds)
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400 for duplicate username, got %d", status)
		}
	}

	// Unauthenticated cat creation is rejected
	{
		payload := map[string]any{"name": "Stray", "age": 10, "color": "grey", "breed": "siamese"}
		status, _ := doReq(t, ts.URL, "POST", "/cat/add", "", payload)
		if status != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", status)
		}
	}

	// Alice adds a cat
	var catID string
	{
		payload := map[string]any{"name": "Cathy", "age": 37, "color": "grey", "breed": "Scottish Fold", "description": "lovely cat"}
		status, body := doReq(t, ts.URL, "POST", "/cat/add", tokenA, payload)
		if status != http.StatusCreated {
			t.Fatalf("expected 201 creating cat, got %d body=%s", status, body)
		}

		var cat struct {
			ID            string  `json:"id"`
			Breed         string  `json:"breed"`
			Owner         string  `json:"owner"`
			AverageRating float64 `json:"average_rating"`
		}
		if err := json.Unmarshal(body, &cat); err != nil {
			t.Fatalf("decode cat: %v", err)
		}
		if cat.Breed != "scottish fold" {
			t.Errorf("expected lowercased breed, got %q", cat.Breed)
		}
		if cat.Owner != "alice" {
			t.Errorf("expected owner alice, got %q", cat.Owner)
		}
		if cat.AverageRating != 0.0 {
			t.Errorf("expected average 0.0 on a fresh cat, got %v", cat.AverageRating)
		}
		catID = cat.ID
	}

	// The breed was auto-created
	{
		status, body := doReq(t, ts.URL, "GET", "/breeds", "", nil)
		if status != http.StatusOK {
			t.Fatalf("expected 200 listing breeds, got %d", status)
		}
		var breeds []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(body, &breeds); err != nil {
			t.Fatalf("decode breeds: %v", err)
		}
		if len(breeds) != 1 || breeds[0].Name != "scottish fold" {
			t.Fatalf("expected the auto-created breed, got %s", body)
		}

		// Filtering by the breed finds the cat; an unknown id is a 404
		status, _ = doReq(t, ts.URL, "GET", "/cats/breed/"+breeds[0].ID, "", nil)
		if status != http.StatusOK {
			t.Errorf("expected 200 filtering by known breed, got %d", status)
		}
		status, _ = doReq(t, ts.URL, "GET", "/cats/breed/no-such-breed", "", nil)
		if status != http.StatusNotFound {
			t.Errorf("expected 404 for unknown breed id, got %d", status)
		}
	}

	// Bob rates Alice's cat once, the second attempt is a duplicate
	{
		payload := map[string]any{"cat": catID, "value": 8.0}
		status, body := doReq(t, ts.URL, "POST", "/cat/rate", tokenB, payload)
		if status != http.StatusAccepted {
			t.Fatalf("expected 202 on first rating, got %d body=%s", status, body)
		}

		status, body = doReq(t, ts.URL, "POST", "/cat/rate", tokenB, payload)
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400 on duplicate rating, got %d", status)
		}
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error != "You've already rated this cat." {
			t.Errorf("expected duplicate-rating business message, got %s", body)
		}
	}

	// Out-of-range values are rejected
	{
		payload := map[string]any{"cat": catID, "value": 11.0}
		if status, _ := doReq(t, ts.URL, "POST", "/cat/rate", tokenB, payload); status != http.StatusBadRequest {
			t.Errorf("expected 400 for out-of-range rating, got %d", status)
		}
	}

	// The average shows up on the details read
	{
		status, body := doReq(t, ts.URL, "GET", "/cat/details/"+catID, "", nil)
		if status != http.StatusOK {
			t.Fatalf("expected 200 for details, got %d", status)
		}
		var cat struct {
			AverageRating float64 `json:"average_rating"`
		}
		if err := json.Unmarshal(body, &cat); err != nil {
			t.Fatalf("decode cat: %v", err)
		}
		if cat.AverageRating != 8.0 {
			t.Errorf("expected average 8.0, got %v", cat.AverageRating)
		}
	}

	// Alice may rename her cat, Bob may not
	{
		payload := map[string]string{"name": "kristine"}
		status, body := doReq(t, ts.URL, "PUT", "/cat/details/"+catID, tokenA, payload)
		if status != http.StatusOK {
			t.Fatalf("expected 200 for owner update, got %d body=%s", status, body)
		}
		var cat struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(body, &cat); err != nil || cat.Name != "kristine" {
			t.Fatalf("expected renamed cat, got %s", body)
		}

		status, _ = doReq(t, ts.URL, "PUT", "/cat/details/"+catID, tokenB, map[string]string{"name": "bob's cat"})
		if status != http.StatusForbidden {
			t.Fatalf("expected 403 for non-owner update, got %d", status)
		}
	}

	// The user list shows ownership
	{
		status, body := doReq(t, ts.URL, "GET", "/users", "", nil)
		if status != http.StatusOK {
			t.Fatalf("expected 200 listing users, got %d", status)
		}
		var list []struct {
			Username  string            `json:"username"`
			Ownership []json.RawMessage `json:"ownership"`
		}
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("decode users: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 users, got %d", len(list))
		}
		for _, user := range list {
			switch user.Username {
			case "alice":
				if len(user.Ownership) != 1 {
					t.Errorf("expected alice to own 1 cat, got %d", len(user.Ownership))
				}
			case "bob":
				if len(user.Ownership) != 0 {
					t.Errorf("expected bob to own no cats, got %d", len(user.Ownership))
				}
			}
		}
	}

	// Deletion is owner-only and removes the record
	{
		status, _ := doReq(t, ts.URL, "DELETE", "/cat/details/"+catID, tokenB, nil)
		if status != http.StatusForbidden {
			t.Fatalf("expected 403 for non-owner delete, got %d", status)
		}

		status, _ = doReq(t, ts.URL, "DELETE", "/cat/details/"+catID, tokenA, nil)
		if status != http.StatusNoContent {
			t.Fatalf("expected 204 for owner delete, got %d", status)
		}

		status, _ = doReq(t, ts.URL, "GET", "/cat/details/"+catID, "", nil)
		if status != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", status)
		}
	}
}

func TestHTTP_InvalidAge(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts.URL, "carol")

	payload := map[string]any{"name": "Old Timer", "age": 241, "color": "white", "breed": "persian"}
	status, _ := doReq(t, ts.URL, "POST", "/cat/add", token, payload)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for age out of range, got %d", status)
	}
}

func TestHTTP_Ping(t *testing.T) {
	ts := newTestServer(t)

	status, body := doReq(t, ts.URL, "GET", "/ping", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from ping, got %d body=%s", status, body)
	}
}
