package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubTokenizer struct {
	claims map[string]interface{}
}

func (s stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", nil
}

func (s stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return s.claims, nil
}

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Authoriz(stubTokenizer{claims: map[string]interface{}{"sub": "ops"}}))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Subject(c))
	})

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"No header", "", http.StatusUnauthorized, ""},
		{"Wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"Empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"Rejected token", "Bearer bad", http.StatusUnauthorized, ""},
		{"Valid token", "Bearer good", http.StatusOK, "ops"},
		{"Scheme is case insensitive", "bearer good", http.StatusOK, "ops"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestSubjectWithoutClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", Subject(c))
}
