package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailAPIDeliverer_Success(t *testing.T) {
	var received map[string]string
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer server.Close()

	d := NewMailAPIDeliverer(MailAPIConfig{
		BaseURL: server.URL,
		APIKey:  "secret-key",
		From:    "Blood Donation System <noreply@example.com>",
	})

	err := d.Deliver(context.Background(), "maria@example.com", "Subject", "<p>Hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-key", authHeader)
	assert.Equal(t, "Blood Donation System <noreply@example.com>", received["from"])
	assert.Equal(t, "maria@example.com", received["to"])
	assert.Equal(t, "Subject", received["subject"])
	assert.Equal(t, "<p>Hi</p>", received["html"])
}

func TestMailAPIDeliverer_ErrorCarriesDiagnostic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	d := NewMailAPIDeliverer(MailAPIConfig{BaseURL: server.URL, APIKey: "k", From: "x"})

	err := d.Deliver(context.Background(), "maria@example.com", "Subject", "<p>Hi</p>")
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestMailAPIDeliverer_ConnectionRefused(t *testing.T) {
	d := NewMailAPIDeliverer(MailAPIConfig{BaseURL: "http://127.0.0.1:1", APIKey: "k", From: "x"})

	err := d.Deliver(context.Background(), "maria@example.com", "Subject", "<p>Hi</p>")
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}
