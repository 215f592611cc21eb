package testutils

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite sends in-process requests to a wired router.
// Headers go out with every request.
type HTTPTestSuite struct {
	Router  *gin.Engine
	Headers map[string]string
}

func SetupHTTPTest(router *gin.Engine) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: router, Headers: make(map[string]string)}
}

// MakeRequest JSON-encodes body when it is non-nil. A body that cannot be
// encoded is a bug in the test, so it panics.
func (h *HTTPTestSuite) MakeRequest(method, target string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, target, &payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.Router.ServeHTTP(w, req)
	return w
}

// AssertJSONResponse fails the test now on a status mismatch, then decodes into target
func AssertJSONResponse(t testing.TB, w *httptest.ResponseRecorder, status int, target interface{}) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"))
	if target != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks status and that the "error" field contains message
func AssertErrorResponse(t testing.TB, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	if message != "" {
		assert.Contains(t, body.Error, message)
	}
}

func AssertStatus(t testing.TB, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
}
