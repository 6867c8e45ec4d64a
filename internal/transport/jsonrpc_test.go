package transport

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"reconcile_project","params":{"project_id":"p1"},"id":7}`)
	req, err := ParseRequest(body)
	require.NoError(t, err)
	require.Equal(t, "reconcile_project", req.Method)
	require.Equal(t, json.RawMessage(`{"project_id":"p1"}`), req.Params)
	require.False(t, req.IsNotification())
}

func TestParseRequest_Notification(t *testing.T) {
	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	req, err := ParseRequest(body)
	require.NoError(t, err)
	require.True(t, req.IsNotification())
}

func TestParseRequest_MissingMethod(t *testing.T) {
	body := bytes.NewBufferString(`{"jsonrpc":"2.0","id":1}`)
	_, err := ParseRequest(body)
	require.Error(t, err)
}

func TestParseRequest_WrongVersion(t *testing.T) {
	body := bytes.NewBufferString(`{"jsonrpc":"1.0","method":"ping","id":1}`)
	_, err := ParseRequest(body)
	require.Error(t, err)
}

func TestWriteResult(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResult(rec, 7, map[string]string{"status": "ok"})

	require.Equal(t, 200, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2.0", resp.JSONRPC)
	require.Nil(t, resp.Error)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 1, ErrInvalidParams, "bad params", map[string]string{"code": "INVALID_INPUT"})

	require.Equal(t, 200, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	require.Equal(t, ErrInvalidParams, resp.Error.Code)
	require.Equal(t, "bad params", resp.Error.Message)
}
