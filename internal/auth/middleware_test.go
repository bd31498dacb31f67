package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/forewind/internal/db"
	"github.com/thatcatcamp/forewind/internal/models"
	"github.com/thatcatcamp/forewind/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
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

func runMiddleware(header string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/palettes", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	RequireToken()(c)
	return c, w
}

func TestRequireTokenWithValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database := setupAuthTestDB(t)

	token, err := IssueToken(database, "ci")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	c, _ := runMiddleware("Bearer " + token)
	if c.IsAborted() {
		t.Error("Middleware should not abort with valid token")
	}

	claims, exists := c.Get("token")
	if !exists {
		t.Fatal("Claims should be set in context")
	}
	if claims.(*Claims).Name != "ci" {
		t.Errorf("Expected claims for ci, got %s", claims.(*Claims).Name)
	}
}

func TestRequireTokenWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupAuthTestDB(t)

	c, w := runMiddleware("")
	if !c.IsAborted() {
		t.Error("Middleware should abort without token")
	}
	if w.Code != 401 {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRequireTokenRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database := setupAuthTestDB(t)

	revoked, _ := IssueToken(database, "old")
	claims, _ := ValidateToken(revoked)
	store.RevokeToken(database, claims.ID)

	// Signed correctly but never recorded
	unknown, _, _ := GenerateToken("stray")

	tests := []struct {
		name   string
		header string
	}{
		{"malformed", "Bearer not-a-jwt"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"revoked", "Bearer " + revoked},
		{"unrecorded", "Bearer " + unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := runMiddleware(tt.header)
			if !c.IsAborted() {
				t.Error("Middleware should abort")
			}
			if w.Code != 401 {
				t.Errorf("Expected status 401, got %d", w.Code)
			}
		})
	}
}
