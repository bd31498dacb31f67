// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/forewind/internal/auth"
	"github.com/thatcatcamp/forewind/internal/backup"
	"github.com/thatcatcamp/forewind/internal/db"
	"github.com/thatcatcamp/forewind/internal/middleware"
	"github.com/thatcatcamp/forewind/internal/models"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("FOREWIND_JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = database.AutoMigrate(models.All()...)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	db.SetDB(database)
	t.Cleanup(func() { db.SetDB(nil) })
	return database
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	database := setupHandlerTestDB(t)
	middleware.ClearPaletteCache()

	s := NewServer(zerolog.Nop(), database, Options{RateLimit: 1000})
	t.Cleanup(s.Close)

	r := gin.New()
	s.Setup(r)
	return r, database
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodePalette(t *testing.T, w *httptest.ResponseRecorder) *palette.Palette {
	t.Helper()
	p := palette.New()
	if err := json.Unmarshal(w.Body.Bytes(), p); err != nil {
		t.Fatalf("response is not a palette: %v\n%s", err, w.Body.String())
	}
	return p
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"forewind"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers should be set")
	}
}

func TestListPalettes(t *testing.T) {
	r, database := setupRouter(t)
	store.CreatePalette(database, "campfire", "warm", palette.FromStrings([]string{"primary"}, map[string]string{"primary": "#f59e0b"}))

	w := do(r, "GET", "/palettes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var body struct {
		Palettes []paletteSummary `json:"palettes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Palettes[0].Name != "default" {
		t.Errorf("Expected default preset first, got %s", body.Palettes[0].Name)
	}
	last := body.Palettes[len(body.Palettes)-1]
	if last.Name != "campfire" || last.Source != "stored" || last.Description != "warm" {
		t.Errorf("Expected stored palette last, got %+v", last)
	}
}

func TestGetPalette(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		name   string
		path   string
		status int
		want   string
	}{
		{"hex", "/palettes/rose", http.StatusOK, "#"},
		{"channels", "/palettes/rose?format=channels", http.StatusOK, " "},
		{"bad format", "/palettes/rose?format=cmyk", http.StatusBadRequest, ""},
		{"unknown", "/palettes/nowhere", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "GET", tt.path, "")
			if w.Code != tt.status {
				t.Fatalf("Expected status %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}
			p := decodePalette(t, w)
			primary, ok := p.Get("primary")
			if !ok {
				t.Fatal("primary missing from response")
			}
			scale := primary.(*palette.ShadeMap)
			if scale.Len() != 12 {
				t.Errorf("Expected 12 shades, got %d", scale.Len())
			}
			v, _ := scale.Get("500")
			if !strings.Contains(v, tt.want) {
				t.Errorf("primary 500 = %q, expected it to contain %q", v, tt.want)
			}
		})
	}
}

func TestPaletteCSS(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, "GET", "/palettes/default/css", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Expected text/css, got %s", ct)
	}

	css := w.Body.String()
	for _, want := range []string{
		":root {",
		"  --body-bg-light: 255 255 255;",
		"  --color-primary-500: ",
		"  --color-primary: ",
		"@keyframes fade-in-down",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS should contain %q", want)
		}
	}
}

func TestPreview(t *testing.T) {
	r, database := setupRouter(t)
	store.CreatePalette(database, "campfire", `<script>alert(1)</script><b>Warm</b> tones`,
		palette.FromStrings([]string{"primary"}, map[string]string{"primary": "#f59e0b"}))

	w := do(r, "GET", "/palettes/campfire/preview", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()

	if strings.Contains(body, "<script>") {
		t.Error("description should be sanitized")
	}
	if !strings.Contains(body, "<b>Warm</b> tones") {
		t.Error("safe description markup should be kept")
	}
	if !strings.Contains(body, "<h2>primary</h2>") {
		t.Error("preview should list the primary scale")
	}
	if !strings.Contains(body, "rgb(var(--color-primary-950))") {
		t.Error("swatches should reference root variables")
	}
	if !strings.Contains(body, `<html class="">`) {
		t.Error("light mode should leave the root class empty")
	}

	do(r, "POST", "/api/mode/toggle", "")
	w = do(r, "GET", "/palettes/campfire/preview", "")
	if !strings.Contains(w.Body.String(), `<html class="dark">`) {
		t.Error("dark mode should set the dark class")
	}
}

func TestExpandAPI(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, "POST", "/api/expand", `{"palette": {"danger": "#f43f5e", "white": "white"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	p := decodePalette(t, w)
	danger, _ := p.Get("danger")
	if v, _ := danger.(*palette.ShadeMap).Get("50"); v != "#fee8ec" {
		t.Errorf("danger 50 = %q, want #fee8ec", v)
	}
	if white, _ := p.Get("white"); white != palette.Literal("white") {
		t.Errorf("white should pass through, got %v", white)
	}

	for name, body := range map[string]string{
		"invalid color":     `{"palette": {"primary": "#12"}}`,
		"malformed channel": `{"palette": {"primary": "rgb(..., 10, 10)"}}`,
		"missing":           `{"format": "hex"}`,
		"bad format":        `{"palette": {"primary": "#1680E4"}, "format": "cmyk"}`,
	} {
		t.Run(name, func(t *testing.T) {
			if w := do(r, "POST", "/api/expand", body); w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestProjectAPI(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, "POST", "/api/project", `{"palette": {"primary": "#1680E4"}, "mode": "indirection", "alpha": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"color-primary-500":"rgb(var(--color-primary-500)/<alpha-value>)"`) {
		t.Errorf("unexpected projection: %s", w.Body.String())
	}

	w = do(r, "POST", "/api/project", `{"palette": {"primary": "#1680E4"}, "nested": true, "prefix": "brand"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	p := decodePalette(t, w)
	primary, _ := p.Get("primary")
	if v, _ := primary.(*palette.ShadeMap).Get(palette.Default); v != "var(--brand-primary)" {
		t.Errorf("nested DEFAULT = %q", v)
	}

	if w := do(r, "POST", "/api/project", `{"palette": {"primary": "#1680E4"}, "separator": "_"}`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a bad separator, got %d", w.Code)
	}
}

func TestBuildAPI(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, "POST", "/api/build", `{"palette": {"primary": "#1680E4"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Config map[string]any `json:"config"`
		CSS    string         `json:"css"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Config["darkMode"] != "class" {
		t.Errorf("darkMode = %v", body.Config["darkMode"])
	}
	if !strings.Contains(body.CSS, "--color-primary-500: 22 128 228;") {
		t.Errorf("css should hold root variables: %s", body.CSS)
	}

	w = do(r, "POST", "/api/build", `{"plugins": [{"name": "@tailwindcss/forms"}]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 without the class strategy, got %d", w.Code)
	}
}

func TestModeAPI(t *testing.T) {
	r, _ := setupRouter(t)

	steps := []struct {
		method, path, body string
		status             int
		want               string
	}{
		{"GET", "/api/mode", "", http.StatusOK, `"mode":"light"`},
		{"POST", "/api/mode/toggle", "", http.StatusOK, `"class":"dark"`},
		{"GET", "/api/mode", "", http.StatusOK, `"mode":"dark"`},
		{"POST", "/api/mode", `{"mode": "light"}`, http.StatusOK, `"mode":"light"`},
		{"POST", "/api/mode", `{"mode": "sepia"}`, http.StatusBadRequest, ""},
		{"POST", "/api/mode", `{"mode": "dark"}`, http.StatusOK, `"mode":"dark"`},
		{"DELETE", "/api/mode", "", http.StatusOK, `"mode":"light"`},
	}

	for _, step := range steps {
		w := do(r, step.method, step.path, step.body)
		if w.Code != step.status {
			t.Fatalf("%s %s: expected status %d, got %d", step.method, step.path, step.status, w.Code)
		}
		if !strings.Contains(w.Body.String(), step.want) {
			t.Errorf("%s %s: body %s should contain %s", step.method, step.path, w.Body.String(), step.want)
		}
	}
}

func TestProtectedPaletteRoutes(t *testing.T) {
	r, database := setupRouter(t)

	token, err := auth.IssueToken(database, "test")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	bearer := "Bearer " + token
	body := `{"name": "campfire", "description": "warm", "palette": {"primary": "#f59e0b"}}`

	if w := do(r, "POST", "/api/palettes", body); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}

	if w := do(r, "POST", "/api/palettes", body, "Authorization", bearer); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(r, "GET", "/palettes/campfire", ""); w.Code != http.StatusOK {
		t.Errorf("saved palette should resolve, got %d", w.Code)
	}

	conflicts := []string{
		body,
		`{"name": "rose", "palette": {"primary": "#f59e0b"}}`,
	}
	for _, b := range conflicts {
		if w := do(r, "POST", "/api/palettes", b, "Authorization", bearer); w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d for %s", w.Code, b)
		}
	}

	bad := `{"name": "broken", "palette": {"x;}</style>": "#000000"}}`
	if w := do(r, "POST", "/api/palettes", bad, "Authorization", bearer); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unsafe color name, got %d", w.Code)
	}

	update := `{"palette": {"primary": "#10b981"}}`
	if w := do(r, "PUT", "/api/palettes/campfire", update, "Authorization", bearer); w.Code != http.StatusOK {
		t.Errorf("Expected 200 on update, got %d", w.Code)
	}
	w := do(r, "GET", "/palettes/campfire", "")
	primary, _ := decodePalette(t, w).Get("primary")
	if v, _ := primary.(*palette.ShadeMap).Get("500"); v != "#10b981" {
		t.Errorf("update should invalidate the cache, primary 500 = %q", v)
	}

	export := do(r, "GET", "/api/palettes/export", "", "Authorization", bearer)
	if export.Code != http.StatusOK {
		t.Fatalf("Expected 200 on export, got %d", export.Code)
	}
	bundle, err := backup.ReadBundle(export.Body)
	if err != nil {
		t.Fatalf("export is not a readable bundle: %v", err)
	}
	if len(bundle.Palettes) != 1 || bundle.Palettes[0].Name != "campfire" {
		t.Errorf("unexpected export: %+v", bundle.Palettes)
	}

	if w := do(r, "DELETE", "/api/palettes/campfire", "", "Authorization", bearer); w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	if w := do(r, "DELETE", "/api/palettes/campfire", "", "Authorization", bearer); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", w.Code)
	}
	if w := do(r, "GET", "/palettes/campfire", ""); w.Code != http.StatusNotFound {
		t.Errorf("deleted palette should not resolve, got %d", w.Code)
	}
}

func TestAPIRateLimit(t *testing.T) {
	database := setupHandlerTestDB(t)
	s := NewServer(zerolog.Nop(), database, Options{RateLimit: 2})
	t.Cleanup(s.Close)
	r := gin.New()
	s.Setup(r)

	for i := 0; i < 2; i++ {
		if w := do(r, "GET", "/api/mode", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d should pass, got %d", i, w.Code)
		}
	}
	if w := do(r, "GET", "/api/mode", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", w.Code)
	}
	if w := do(r, "GET", "/health", ""); w.Code != http.StatusOK {
		t.Errorf("health should not be limited, got %d", w.Code)
	}
}
