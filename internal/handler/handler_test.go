package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// doRequest runs a handler directly against a JSON request body and returns
// the recorder plus the decoded response body.
func doRequest(t *testing.T, e *echo.Echo, method, target, body string, h echo.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func messagesOf(t *testing.T, decoded map[string]interface{}) []string {
	t.Helper()

	raw, ok := decoded["messages"].([]interface{})
	require.True(t, ok, "expected messages list in %v", decoded)

	msgs := make([]string, 0, len(raw))
	for _, m := range raw {
		msgs = append(msgs, m.(string))
	}
	return msgs
}
