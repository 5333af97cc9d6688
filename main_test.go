package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestNewApp(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:newapp?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	assert.NoError(t, err)

	app, err := NewApp(db, nil, "http://localhost:8000", bcrypt.MinCost)
	assert.NoError(t, err)

	// --- Root Endpoint ---
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rootResp map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&rootResp))
	assert.Equal(t, "200 OK", rootResp["RESPONSE"])
	resp.Body.Close()

	// --- Health Endpoint ---
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(bodyBytes), "\"status\":\"healthy\"")
	resp.Body.Close()

	// --- Guarded Endpoint Without a Token ---
	req = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// --- Public Route Wiring ---
	req = httptest.NewRequest(http.MethodGet, "/api/trainer/locations", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
