package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divvy-app/divvy/internal/models"
	"github.com/divvy-app/divvy/internal/service"
	"github.com/divvy-app/divvy/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	tracker, err := service.NewTracker(context.Background(), storage.NewMemoryStore())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(tracker).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestAddAndListMembers(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/members", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]string](t, resp)
	assert.Equal(t, "Alice", created["name"])

	// Duplicate registration is idempotent.
	resp = postJSON(t, srv.URL+"/api/members", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/members", map[string]string{"name": "Bob"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	listResp, err := http.Get(srv.URL + "/api/members")
	require.NoError(t, err)
	names := decode[[]string](t, listResp)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestAddMemberValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "missing name", body: map[string]string{}},
		{name: "blank name", body: map[string]string{"name": "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/members", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[map[string]string](t, resp)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAddExpenseAndBalances(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		resp := postJSON(t, srv.URL+"/api/members", map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := postJSON(t, srv.URL+"/api/expenses", map[string]any{
		"description": "Dinner",
		"amount":      30.0,
		"paid_by":     "Alice",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	exp := decode[models.Expense](t, resp)
	assert.NotEmpty(t, exp.ID)
	assert.Len(t, exp.Splits, 3)

	balResp, err := http.Get(srv.URL + "/api/balances")
	require.NoError(t, err)
	balances := decode[[]models.MemberBalance](t, balResp)
	require.Len(t, balances, 3)
	assert.Equal(t, "Alice", balances[0].Name)
	assert.InDelta(t, 20.0, balances[0].NetBalance, 0.01)
	assert.InDelta(t, -10.0, balances[1].NetBalance, 0.01)
	assert.InDelta(t, -10.0, balances[2].NetBalance, 0.01)
}

func TestAddExpenseSplitModes(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/expenses", map[string]any{
		"description": "Movie tickets",
		"amount":      20.0,
		"paid_by":     "Bob",
		"split":       map[string]any{"mode": "subset", "names": []string{"Alice", "Bob"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	exp := decode[models.Expense](t, resp)
	assert.Len(t, exp.Splits, 2)

	resp = postJSON(t, srv.URL+"/api/expenses", map[string]any{
		"description": "Groceries",
		"amount":      100.0,
		"paid_by":     "Carol",
		"split": map[string]any{
			"mode":   "manual",
			"shares": map[string]float64{"Alice": 25.0, "Bob": 35.0, "Carol": 40.0},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	exp = decode[models.Expense](t, resp)
	assert.Len(t, exp.Splits, 3)

	listResp, err := http.Get(srv.URL + "/api/expenses")
	require.NoError(t, err)
	expenses := decode[[]models.Expense](t, listResp)
	require.Len(t, expenses, 2)
	// Ledger order: first recorded comes first.
	assert.Equal(t, "Movie tickets", expenses[0].Description)
	assert.Equal(t, "Groceries", expenses[1].Description)
}

func TestAddExpenseValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/members", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing required fields",
			body: map[string]any{"description": "Dinner"},
		},
		{
			name: "manual split mismatch",
			body: map[string]any{
				"description": "Dinner",
				"amount":      30.00,
				"paid_by":     "Alice",
				"split": map[string]any{
					"mode":   "manual",
					"shares": map[string]float64{"Alice": 15.00, "Bob": 14.99},
				},
			},
		},
		{
			name: "empty subset",
			body: map[string]any{
				"description": "Dinner",
				"amount":      30.00,
				"paid_by":     "Alice",
				"split":       map[string]any{"mode": "subset", "names": []string{}},
			},
		},
		{
			name: "negative amount",
			body: map[string]any{
				"description": "Dinner",
				"amount":      -30.00,
				"paid_by":     "Alice",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/expenses", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[map[string]string](t, resp)
			assert.NotEmpty(t, body["error"])
		})
	}

	// Failed records never dirty the ledger.
	listResp, err := http.Get(srv.URL + "/api/expenses")
	require.NoError(t, err)
	expenses := decode[[]models.Expense](t, listResp)
	assert.Empty(t, expenses)
}

func TestSettlements(t *testing.T) {
	srv := newTestServer(t)

	// Empty group settles trivially.
	resp, err := http.Get(srv.URL + "/api/settlements")
	require.NoError(t, err)
	transfers := decode[[]models.Transfer](t, resp)
	assert.Empty(t, transfers)

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		r := postJSON(t, srv.URL+"/api/members", map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, r.StatusCode)
		r.Body.Close()
	}
	r := postJSON(t, srv.URL+"/api/expenses", map[string]any{
		"description": "Dinner",
		"amount":      30.0,
		"paid_by":     "Alice",
	})
	require.Equal(t, http.StatusCreated, r.StatusCode)
	r.Body.Close()

	resp, err = http.Get(srv.URL + "/api/settlements")
	require.NoError(t, err)
	transfers = decode[[]models.Transfer](t, resp)
	require.Len(t, transfers, 2)
	assert.Equal(t, models.Transfer{From: "Bob", To: "Alice", Amount: 10}, transfers[0])
	assert.Equal(t, models.Transfer{From: "Carol", To: "Alice", Amount: 10}, transfers[1])
}
