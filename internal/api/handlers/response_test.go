package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"занято"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"A1"}`},
		{name: "empty", body: ``, wantErr: true},
		{name: "unknown field", body: `{"title":"A1"}`, wantErr: true},
		{name: "trailing data", body: `{"name":"A1"}{"name":"A2"}`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload

			err := DecodeJSON(r, &dst)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "A1", dst.Name)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("6F1C2A9E-3F5B-4A8E-9A59-0D3C1C2B7E10")
	require.NoError(t, err)
	assert.Equal(t, "6f1c2a9e-3f5b-4a8e-9a59-0d3c1c2b7e10", id)

	_, err = ParseID("42")
	assert.Error(t, err)
}
