package alerts_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadlec/stockwatch/pkg/alerts"
)

func TestSlackNotifier_Name(t *testing.T) {
	n := alerts.NewSlackNotifier("https://hooks.slack.com/test", "#test")
	assert.Equal(t, "slack", n.Name())
}

func TestSlackNotifier_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, http.MethodPost, r.Method)

		err := json.NewDecoder(r.Body).Decode(&received)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := alerts.NewSlackNotifier(server.URL, "#stock-alerts")
	notification := alerts.Notification{
		Subject:     "LOW STOCK ALERT - 1 CRITICAL, 2 WARNING",
		Body:        "details",
		NewCritical: []alerts.Line{{SKU: "A", Stock: 3}},
		NewWarning:  []alerts.Line{{SKU: "B", Stock: 14}, {SKU: "C", Stock: 16}},
	}

	err := n.Send(context.Background(), notification)
	require.NoError(t, err)
	assert.Equal(t, "#stock-alerts", received["channel"])

	attachments, ok := received["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 1)

	attachment, ok := attachments[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", attachment["color"])
	assert.Equal(t, "LOW STOCK ALERT - 1 CRITICAL, 2 WARNING", attachment["title"])
	assert.Equal(t, "stockwatch", attachment["footer"])
}

func TestSlackNotifier_WarningOnlyIsOrange(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := alerts.NewSlackNotifier(server.URL, "")
	err := n.Send(context.Background(), alerts.Notification{
		Subject:    "LOW STOCK ALERT - 0 CRITICAL, 1 WARNING",
		NewWarning: []alerts.Line{{SKU: "B", Stock: 14}},
	})
	require.NoError(t, err)

	attachments := received["attachments"].([]any)
	attachment := attachments[0].(map[string]any)
	assert.Equal(t, "#ff9900", attachment["color"])
}

func TestSlackNotifier_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := alerts.NewSlackNotifier(server.URL, "#test")
	err := n.Send(context.Background(), alerts.Notification{Subject: "LOW STOCK ALERT"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
