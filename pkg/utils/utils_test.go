package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"afyajirani-backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestStringConversions(t *testing.T) {
	assert.Equal(t, uint64(42), StringToUint64("42"))
	assert.Equal(t, uint64(0), StringToUint64("abc"))
	assert.Equal(t, uint64(0), StringToUint64("-3"))
	assert.Equal(t, 7, StringToInt("", 7))
	assert.Equal(t, 7, StringToInt("x", 7))
	assert.Equal(t, 14, StringToInt("14", 7))
}

func TestCleanTextStripsMarkup(t *testing.T) {
	assert.Equal(t, "patient's cough & fever", CleanText("patient's cough & fever"))
	assert.Equal(t, "fever and vomiting", CleanText("  <b>fever</b> and <script>alert(1)</script>vomiting "))
}

func TestErrorResponseUsesKindStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	ErrorResponse(c, apperr.Validation("Invite code not found"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Invite code not found", body.Message)
}
