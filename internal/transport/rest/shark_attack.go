package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/facts-mng/internal/domain"
	"github.com/heartmarshall/facts-mng/internal/service/sharkattack"
)

const maxBodyBytes = 1 << 20

// sharkAttackService defines the operations served by SharkAttackHandler.
type sharkAttackService interface {
	List(ctx context.Context, input sharkattack.ListInput) (*sharkattack.ListResult, error)
	Get(ctx context.Context, id, organizationID string) (*domain.SharkAttack, error)
	ByCountry(ctx context.Context, country string) ([]domain.CountryAttack, error)
	Stats(ctx context.Context, recordLimit int) (domain.Stats, error)
	Import(ctx context.Context) (*sharkattack.ImportResult, error)
	Create(ctx context.Context, input sharkattack.CreateInput) (*domain.SharkAttack, error)
	Update(ctx context.Context, input sharkattack.UpdateInput) (*domain.SharkAttack, error)
	Delete(ctx context.Context, input sharkattack.DeleteInput) (*domain.CommandResult, error)
}

// SharkAttackHandler serves the /api/shark-attacks endpoints.
type SharkAttackHandler struct {
	svc sharkAttackService
	log *slog.Logger
}

// NewSharkAttackHandler creates a SharkAttackHandler.
func NewSharkAttackHandler(svc sharkAttackService, logger *slog.Logger) *SharkAttackHandler {
	return &SharkAttackHandler{svc: svc, log: logger.With("handler", "shark_attack")}
}

type updateRequest struct {
	Input sharkattack.AttackInput `json:"input"`
	Merge bool                    `json:"merge"`
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

// List handles GET /api/shark-attacks.
func (h *SharkAttackHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r.URL.Query())
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/shark-attacks/{id}. An absent attack is a 200 null.
func (h *SharkAttackHandler) Get(w http.ResponseWriter, r *http.Request) {
	attack, err := h.svc.Get(r.Context(), r.PathValue("id"), r.URL.Query().Get("organizationId"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, attack)
}

// Stats handles GET /api/shark-attacks/stats.
func (h *SharkAttackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r.URL.Query(), "recordLimit")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	stats, err := h.svc.Stats(r.Context(), limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ByCountry handles GET /api/shark-attacks/by-country/{country}.
func (h *SharkAttackHandler) ByCountry(w http.ResponseWriter, r *http.Request) {
	attacks, err := h.svc.ByCountry(r.Context(), r.PathValue("country"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, attacks)
}

// Create handles POST /api/shark-attacks.
func (h *SharkAttackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sharkattack.CreateInput
	if !decodeBody(w, r, &req) {
		return
	}

	attack, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, attack)
}

// Update handles PUT /api/shark-attacks/{id}.
func (h *SharkAttackHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	attack, err := h.svc.Update(r.Context(), sharkattack.UpdateInput{
		ID:    r.PathValue("id"),
		Input: req.Input,
		Merge: req.Merge,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, attack)
}

// Delete handles POST /api/shark-attacks/delete.
func (h *SharkAttackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Delete(r.Context(), sharkattack.DeleteInput{IDs: req.IDs})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Import handles POST /api/shark-attacks/import.
func (h *SharkAttackHandler) Import(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Import(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// decodeBody decodes a JSON body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeBadRequest(w, "invalid request body")
		return false
	}
	return true
}

func parseListInput(q url.Values) (sharkattack.ListInput, error) {
	var (
		in  sharkattack.ListInput
		err error
	)

	in.Filter = domain.SharkAttackFilter{
		Name:           q.Get("name"),
		Country:        q.Get("country"),
		Type:           q.Get("type"),
		OrganizationID: q.Get("organizationId"),
	}
	if q.Has("year") {
		year, err := intParam(q, "year")
		if err != nil {
			return in, err
		}
		in.Filter.Year = &year
	}
	if q.Has("active") {
		active, err := boolParam(q, "active")
		if err != nil {
			return in, err
		}
		in.Filter.Active = &active
	}

	if in.Pagination.Page, err = intParam(q, "page"); err != nil {
		return in, err
	}
	if in.Pagination.Count, err = intParam(q, "count"); err != nil {
		return in, err
	}
	if in.Pagination.QueryTotalResultCount, err = boolParam(q, "queryTotalResultCount"); err != nil {
		return in, err
	}

	in.Sort.Field = q.Get("sortField")
	if in.Sort.Asc, err = boolParam(q, "sortAsc"); err != nil {
		return in, err
	}
	return in, nil
}

func intParam(q url.Values, name string) (int, error) {
	s := q.Get(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &paramError{name: name, want: "an integer"}
	}
	return n, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	s := q.Get(name)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &paramError{name: name, want: "a boolean"}
	}
	return b, nil
}

type paramError struct {
	name string
	want string
}

func (e *paramError) Error() string {
	return "query parameter " + e.name + " must be " + e.want
}
