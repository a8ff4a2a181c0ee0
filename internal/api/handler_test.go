package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/api"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/mocks"
)

const apiKey = "secret-key"

func newServer(t *testing.T) (*httptest.Server, *mocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(svc), api.NewMiddleware(true, apiKey)))
	t.Cleanup(srv.Close)

	return srv, svc
}

func do(t *testing.T, method, url string, key string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	if key != "" {
		req.Header.Set("X-Api-Key", key)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestHandler_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/sync", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/contracts/pending", "wrong")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Sync(t *testing.T) {
	t.Parallel()

	srv, svc := newServer(t)

	runID := uuid.Must(uuid.NewV4())
	started := time.Date(2024, time.September, 10, 9, 0, 0, 0, time.UTC)

	svc.EXPECT().Run(gomock.Any(), true).Return(entity.RunSummary{
		RunID:      runID,
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Fetched:    2,
		Outcomes:   map[entity.Outcome]int{entity.OutcomeCreated: 1, entity.OutcomeNoop: 1},
		Cards:      []entity.CardCreated{{LegalName: "Alfa", TaxID: "1", CardID: "900", ContractModel: "Acessórias"}},
	}, nil)

	resp := do(t, http.MethodPost, srv.URL+"/api/sync", apiKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.SyncResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, runID, body.RunID)
	require.Equal(t, 2, body.Fetched)
	require.Equal(t, map[string]int{"created": 1, "noop": 1}, body.Outcomes)
	require.Equal(t, []api.CardCreated{{LegalName: "Alfa", TaxID: "1", CardID: "900", ContractModel: "Acessórias"}}, body.Cards)
}

func TestHandler_SyncConflict(t *testing.T) {
	t.Parallel()

	srv, svc := newServer(t)

	svc.EXPECT().Run(gomock.Any(), true).Return(entity.RunSummary{}, entity.ErrRunInProgress)

	resp := do(t, http.MethodPost, srv.URL+"/api/sync", apiKey)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, entity.ErrRunInProgress.Error(), body.Description)
}

func TestHandler_Reconciliations(t *testing.T) {
	t.Parallel()

	srv, svc := newServer(t)

	runID := uuid.Must(uuid.NewV4())

	svc.EXPECT().Reconciliations(gomock.Any(), entity.ReconciliationFilter{
		TaxID:   "12.345.678/0001-90",
		Outcome: entity.OutcomeFailed,
		RunID:   runID,
		Limit:   500,
		Offset:  10,
	}).Return([]entity.Reconciliation{{RecordHash: "abc", Outcome: entity.OutcomeFailed, Error: "no result from crm"}}, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/reconciliations?taxId=12.345.678/0001-90&outcome=failed&runId="+
		runID.String()+"&limit=1000&offset=10", apiKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ReconciliationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Reconciliations, 1)
	require.Equal(t, "abc", body.Reconciliations[0].RecordHash)
	require.Equal(t, "failed", body.Reconciliations[0].Outcome)
}

func TestHandler_ReconciliationsBadFilter(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	for _, q := range []string{"outcome=maybe", "runId=nope", "limit=-1", "offset=x"} {
		resp := do(t, http.MethodGet, srv.URL+"/api/reconciliations?"+q, apiKey)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestHandler_PendingContracts(t *testing.T) {
	t.Parallel()

	srv, svc := newServer(t)

	svc.EXPECT().ListPending(gomock.Any()).Return([]entity.CachedContract{{
		Hash:   "abc",
		Record: entity.ContractRecord{LegalName: "Alfa", TaxID: "1", ContractModel: "Acessórias"},
	}}, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/contracts/pending", apiKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.PendingContractsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, []api.PendingContract{{Hash: "abc", LegalName: "Alfa", TaxID: "1", ContractModel: "Acessórias"}}, body.Contracts)

	svc.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("cache dir missing"))

	resp = do(t, http.MethodGet, srv.URL+"/api/contracts/pending", apiKey)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
