package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

// @title Abertura de Base API
// @version 1.0
// @description Reconciles contract emails into Bitrix24 companies and smart-process cards
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	Run(ctx context.Context, fetch bool) (entity.RunSummary, error)
	ListPending(ctx context.Context) ([]entity.CachedContract, error)
	Reconciliations(ctx context.Context, filter entity.ReconciliationFilter) ([]entity.Reconciliation, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "Serviço funcionando!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Serviço funcionando!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Serviço indisponível")
		return
	}
}

type CardCreated struct {
	LegalName     string `json:"razaoSocial"`
	TaxID         string `json:"cnpj"`
	CardID        string `json:"cardId"`
	ContractModel string `json:"modeloDeContrato"`
}

type SyncResponse struct {
	RunID      uuid.UUID      `json:"runId"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Fetched    int            `json:"fetched"`
	Outcomes   map[string]int `json:"outcomes"`
	Cards      []CardCreated  `json:"cards"`
}

// Sync runs a reconciliation pass
// @Summary Run reconciliation
// @Description Polls the contracts mailbox, then reconciles every pending contract with the CRM
// @Tags sync
// @Produce json
// @Success 200 {object} SyncResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 409 {object} ErrorResponse "A run is already in progress"
// @Failure 500 {object} ErrorResponse "Run failed"
// @Router /sync [post]
// @Security ApiKeyAuth
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.Run(ctx, true)
	if err != nil {
		if errors.Is(err, entity.ErrRunInProgress) {
			SendJSONErr(ctx, w, http.StatusConflict, err, "Sincronização já em andamento")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Falha na sincronização")

		return
	}

	SendJSON(ctx, w, http.StatusOK, summaryToAPI(summary))
}

func summaryToAPI(s entity.RunSummary) SyncResponse {
	resp := SyncResponse{
		RunID:      s.RunID,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Fetched:    s.Fetched,
		Outcomes:   make(map[string]int, len(s.Outcomes)),
		Cards:      make([]CardCreated, 0, len(s.Cards)),
	}

	for o, n := range s.Outcomes {
		resp.Outcomes[string(o)] = n
	}

	for _, c := range s.Cards {
		resp.Cards = append(resp.Cards, CardCreated(c))
	}

	return resp
}

type Reconciliation struct {
	ID            uuid.UUID `json:"id"`
	RunID         uuid.UUID `json:"runId"`
	RecordHash    string    `json:"recordHash"`
	TaxID         string    `json:"cnpj"`
	ContractModel string    `json:"modeloDeContrato"`
	Outcome       string    `json:"outcome"`
	CompanyID     string    `json:"companyId,omitempty"`
	CardID        string    `json:"cardId,omitempty"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ReconciliationsResponse struct {
	Reconciliations []Reconciliation `json:"reconciliations"`
}

// Reconciliations lists ledger entries
// @Summary List reconciliations
// @Description Lists reconciliation ledger entries, newest first
// @Tags sync
// @Produce json
// @Param taxId query string false "CNPJ"
// @Param outcome query string false "Outcome" Enums(noop, created, upgraded, card_exists, no_upgrade, skipped, failed)
// @Param runId query string false "Run id"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} ReconciliationsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Failed to list reconciliations"
// @Router /reconciliations [get]
// @Security ApiKeyAuth
func (h *Handler) Reconciliations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseReconciliationFilter(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Filtro inválido")
		return
	}

	recs, err := h.s.Reconciliations(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Falha ao listar reconciliações")
		return
	}

	resp := ReconciliationsResponse{Reconciliations: make([]Reconciliation, 0, len(recs))}

	for _, rec := range recs {
		resp.Reconciliations = append(resp.Reconciliations, Reconciliation{
			ID:            rec.ID,
			RunID:         rec.RunID,
			RecordHash:    rec.RecordHash,
			TaxID:         rec.TaxID,
			ContractModel: rec.ContractModel,
			Outcome:       string(rec.Outcome),
			CompanyID:     rec.CompanyID,
			CardID:        rec.CardID,
			Error:         rec.Error,
			CreatedAt:     rec.CreatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func parseReconciliationFilter(q url.Values) (entity.ReconciliationFilter, error) {
	const maxLimit uint64 = 500

	filter := entity.ReconciliationFilter{
		TaxID:   q.Get("taxId"),
		Outcome: entity.Outcome(q.Get("outcome")),
	}

	if filter.Outcome != "" && !filter.Outcome.Valid() {
		return entity.ReconciliationFilter{}, fmt.Errorf("unknown outcome %q", filter.Outcome)
	}

	if v := q.Get("runId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			return entity.ReconciliationFilter{}, fmt.Errorf("invalid runId: %w", err)
		}

		filter.RunID = id
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entity.ReconciliationFilter{}, fmt.Errorf("invalid limit: %w", err)
		}

		filter.Limit = min(limit, maxLimit)
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entity.ReconciliationFilter{}, fmt.Errorf("invalid offset: %w", err)
		}

		filter.Offset = offset
	}

	return filter, nil
}

type PendingContract struct {
	Hash          string `json:"hash"`
	LegalName     string `json:"razaoSocial"`
	TaxID         string `json:"cnpj"`
	ContractModel string `json:"modeloDeContrato"`
}

type PendingContractsResponse struct {
	Contracts []PendingContract `json:"contracts"`
}

// PendingContracts lists cached contracts awaiting reconciliation
// @Summary List pending contracts
// @Description Lists cached contracts without a terminal reconciliation outcome
// @Tags sync
// @Produce json
// @Success 200 {object} PendingContractsResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Failed to list pending contracts"
// @Router /contracts/pending [get]
// @Security ApiKeyAuth
func (h *Handler) PendingContracts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pending, err := h.s.ListPending(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Falha ao listar contratos pendentes")
		return
	}

	resp := PendingContractsResponse{Contracts: make([]PendingContract, 0, len(pending))}

	for _, c := range pending {
		resp.Contracts = append(resp.Contracts, PendingContract{
			Hash:          c.Hash,
			LegalName:     c.Record.LegalName,
			TaxID:         c.Record.TaxID,
			ContractModel: c.Record.ContractModel,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
