package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taxtech-ae/einvoice-assistant/internal/config"
	"github.com/taxtech-ae/einvoice-assistant/internal/core"
	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
	"github.com/taxtech-ae/einvoice-assistant/internal/store"
)

// newTestServer wires the full service against a throwaway database and the
// synthetic dataset. No API key is configured, so answers come from the
// offline canned responses.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	dbStore, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbStore.Close() })

	logger := zap.NewNop()
	chatService := core.NewChatService(
		dbStore,
		core.NewClassifier(),
		core.NewAssembler(),
		core.NewProducer("", time.Second, logger),
		dataset.Synthetic(),
		core.Defaults{Model: "gpt-3.5-turbo", Temperature: 0.7},
		logger,
	)

	server := httptest.NewServer(NewRouter(NewAPIHandler(chatService, logger)))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(encoded))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func signupAndLogin(t *testing.T, server *httptest.Server, userID string) string {
	t.Helper()
	creds := map[string]string{"user_id": userID, "password": "s3cret"}

	resp := postJSON(t, server.URL+"/api/signup", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/login", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server := newTestServer(t)
	signupAndLogin(t, server, "user-1")

	resp := postJSON(t, server.URL+"/api/login", "", map[string]string{
		"user_id": "user-1", "password": "wrong",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredForQuery(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/query", "", map[string]string{"query": "total vat"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStatelessQuery(t *testing.T) {
	server := newTestServer(t)
	token := signupAndLogin(t, server, "user-1")

	resp := postJSON(t, server.URL+"/api/query", token, map[string]string{
		"query": "Show me the distribution of invoices by emirate",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result core.TurnResult
	decode(t, resp, &result)

	assert.True(t, result.Answer.Success)
	assert.NotEmpty(t, result.Answer.ResponseText)
	assert.Equal(t, "distribution", result.Answer.VisualizationType)
	assert.Equal(t, dataset.TableInvoices, result.QueryContext.PrimaryTable)
	require.NotNil(t, result.Chart)
	assert.False(t, result.Chart.Demo)
}

func TestQueryWithTableOverride(t *testing.T) {
	server := newTestServer(t)
	token := signupAndLogin(t, server, "user-1")

	resp := postJSON(t, server.URL+"/api/query", token, map[string]string{
		"query": "compliance scores",
		"table": "taxpayers",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result core.TurnResult
	decode(t, resp, &result)
	assert.Equal(t, dataset.TableTaxpayers, result.QueryContext.PrimaryTable)
}

func TestQueryWithDomainOverride(t *testing.T) {
	server := newTestServer(t)
	token := signupAndLogin(t, server, "user-1")

	// No domain keyword matches, so without the filter all four domains apply.
	resp := postJSON(t, server.URL+"/api/query", token, map[string]string{
		"query": "tell me about invoices",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result core.TurnResult
	decode(t, resp, &result)
	require.Len(t, result.QueryContext.RelevantDomains, 4)

	resp = postJSON(t, server.URL+"/api/query", token, map[string]string{
		"query":  "tell me about invoices",
		"domain": "fraud_detection",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &result)
	assert.Equal(t, []string{"fraud_detection"}, result.QueryContext.RelevantDomains)
	assert.Equal(t, "fraud_detection", result.QueryContext.PrimaryDomain)
	assert.Equal(t, "distribution", result.Answer.VisualizationType)
}

func TestChatLifecycle(t *testing.T) {
	server := newTestServer(t)
	token := signupAndLogin(t, server, "user-1")

	// Create a chat with a first message; the title derives from it.
	resp := postJSON(t, server.URL+"/api/chats", token, map[string]any{
		"first_message": map[string]string{"query": "What is the total VAT collected in Dubai?"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created CreateChatResponse
	decode(t, resp, &created)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.Title)
	assert.Equal(t, "What is the total VAT collected in Dubai?", *created.Title)
	require.Len(t, created.Messages, 2)
	assert.Equal(t, "user", created.Messages[0].Sender)
	assert.Equal(t, "model", created.Messages[1].Sender)
	assert.NotEmpty(t, created.Messages[1].Content)

	// Listing shows the chat.
	resp = getJSON(t, server.URL+"/api/chats", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chats []store.Chat
	decode(t, resp, &chats)
	require.Len(t, chats, 1)

	// Follow-up message returns the stored model reply.
	resp = postJSON(t, fmt.Sprintf("%s/api/chats/%s/messages", server.URL, created.ID), token, map[string]string{
		"content": "What are the most common anomaly types?",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reply store.Message
	decode(t, resp, &reply)
	assert.Equal(t, "model", reply.Sender)
	assert.NotEmpty(t, reply.Content)

	// Details return all four messages in order.
	resp = getJSON(t, fmt.Sprintf("%s/api/chats/%s", server.URL, created.ID), token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var details GetChatDetailsResponse
	decode(t, resp, &details)
	require.Len(t, details.Messages, 4)

	// Negative feedback on the model reply.
	resp = postJSON(t, fmt.Sprintf("%s/api/messages/%s/feedback", server.URL, reply.ID), token, map[string]bool{
		"negative": true,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestChatOwnershipIsEnforced(t *testing.T) {
	server := newTestServer(t)
	tokenA := signupAndLogin(t, server, "user-a")
	tokenB := signupAndLogin(t, server, "user-b")

	resp := postJSON(t, server.URL+"/api/chats", tokenA, map[string]any{})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created CreateChatResponse
	decode(t, resp, &created)

	resp = getJSON(t, fmt.Sprintf("%s/api/chats/%s", server.URL, created.ID), tokenB)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestArabicQueryIsWrappedRTL(t *testing.T) {
	server := newTestServer(t)
	token := signupAndLogin(t, server, "user-1")

	resp := postJSON(t, server.URL+"/api/chats", token, map[string]any{
		"first_message": map[string]string{"query": "أظهر لي توزيع الفواتير حسب الإمارة"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created CreateChatResponse
	decode(t, resp, &created)
	require.Len(t, created.Messages, 2)
	assert.Equal(t, "ar", created.Messages[1].Language)
	assert.Contains(t, created.Messages[1].Content, `<div dir="rtl">`)
}

func TestExamplesLocalization(t *testing.T) {
	server := newTestServer(t)

	var body struct {
		Questions []string `json:"questions"`
	}

	resp := getJSON(t, server.URL+"/api/examples", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.NotEmpty(t, body.Questions)
	english := body.Questions[0]

	resp = getJSON(t, server.URL+"/api/examples?lang=ar", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.NotEmpty(t, body.Questions)
	assert.NotEqual(t, english, body.Questions[0])
}

func TestTableAndDomainOptions(t *testing.T) {
	server := newTestServer(t)

	var tables struct {
		Tables []core.Option `json:"tables"`
	}
	resp := getJSON(t, server.URL+"/api/tables", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &tables)
	require.Len(t, tables.Tables, 5) // "All" + four tables
	assert.Equal(t, "All", tables.Tables[0].Value)
	assert.Equal(t, dataset.TableInvoices, tables.Tables[1].Value)

	var domains struct {
		Domains []core.Option `json:"domains"`
	}
	resp = getJSON(t, server.URL+"/api/domains?lang=ar", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &domains)
	require.Len(t, domains.Domains, 5)
	assert.Equal(t, "جميع المجالات", domains.Domains[0].Label)
}
