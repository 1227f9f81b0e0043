package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, r Response) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, Send(c, r))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestSend_OmitsUnsetFields(t *testing.T) {
	tests := []struct {
		name       string
		response   Response
		wantCode   int
		wantKeys   []string
		forbidKeys []string
	}{
		{
			name:       "message only",
			response:   Response{StatusCode: http.StatusOK, Message: "done"},
			wantCode:   http.StatusOK,
			wantKeys:   []string{"message"},
			forbidKeys: []string{"error", "data", "statusCode"},
		},
		{
			name:       "error only",
			response:   Response{StatusCode: http.StatusInternalServerError, Error: "boom"},
			wantCode:   http.StatusInternalServerError,
			wantKeys:   []string{"error"},
			forbidKeys: []string{"message", "data"},
		},
		{
			name:       "data only",
			response:   Response{StatusCode: http.StatusOK, Data: []int{1, 2}},
			wantCode:   http.StatusOK,
			wantKeys:   []string{"data"},
			forbidKeys: []string{"message", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, decoded := send(t, tt.response)

			assert.Equal(t, tt.wantCode, rec.Code)
			for _, k := range tt.wantKeys {
				assert.Contains(t, decoded, k)
			}
			for _, k := range tt.forbidKeys {
				assert.NotContains(t, decoded, k, "unset fields must be omitted, not null")
			}
		})
	}
}

func TestNew_DefaultsTo200(t *testing.T) {
	assert.Equal(t, http.StatusOK, New().StatusCode)
}
