package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func getWithParam(handler gin.HandlerFunc, key, value string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products/x", nil)
	c.Params = gin.Params{{Key: key, Value: value}}

	handler(c)
	return w
}

func TestProductEndpoint_GetByID_InvalidID(t *testing.T) {
	h := &productHandler{logger: zerolog.Nop()}

	w := getWithParam(h.getByID, "id", "not-a-number")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid product id"}`, w.Body.String())
}

func TestProductEndpoint_GetByCategory_InvalidID(t *testing.T) {
	h := &productHandler{logger: zerolog.Nop()}

	w := getWithParam(h.getByCategory, "categoryId", "gold")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid category id"}`, w.Body.String())
}
