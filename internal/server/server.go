package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-compare/internal/comparison"
	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/format"
	"github.com/iwvelando/mortgage-compare/pkg/loans"
	"github.com/iwvelando/mortgage-compare/pkg/output"
	"github.com/iwvelando/mortgage-compare/pkg/validation"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	language    language.Tag
	formatter   *format.Formatter
}

// NewHandler constructs the HTTP handler that serves the web UI and comparison API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, lang language.Tag) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if lang == language.Und {
		lang = language.Japanese
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		language:    lang,
		formatter:   format.NewFormatter(lang),
	}

	mux := http.NewServeMux()

	// Default values for a newly added entry
	mux.HandleFunc("/api/defaults", h.handleDefaults)

	// Single entry calculation
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Calculate every entry of the comparison
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Lenders file serialization for downloads
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

// inputValue accepts a JSON number or string so form fields can be posted as
// typed, e.g. "3,000万円".
type inputValue string

func (v *inputValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = inputValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a number or string, got %s", data)
	}
	*v = inputValue(n.String())
	return nil
}

type entryRequest struct {
	ID              string      `json:"id"`
	Name            *inputValue `json:"name"`
	RateType        *inputValue `json:"rateType"`
	BaseRate        *inputValue `json:"baseRate"`
	Over35YearsRate *inputValue `json:"over35YearsRate"`
	InsuranceRate   *inputValue `json:"insuranceRate"`
	LoanAmount      *inputValue `json:"loanAmount"`
	LoanTerm        *inputValue `json:"loanTerm"`
}

type compareRequest struct {
	Entries []entryRequest `json:"entries"`
}

type entryResponse struct {
	comparison.LoanEntry
	Display *entryDisplay          `json:"display,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Details validation.FieldErrors `json:"details,omitempty"`
}

type entryDisplay struct {
	RateType       string `json:"rateType"`
	AppliedRate    string `json:"appliedRate"`
	LoanAmount     string `json:"loanAmount"`
	LoanTerm       string `json:"loanTerm"`
	MonthlyPayment string `json:"monthlyPayment"`
	TotalPayment   string `json:"totalPayment"`
	TotalInterest  string `json:"totalInterest"`
}

type compareResponse struct {
	Entries  []entryResponse `json:"entries"`
	BestID   string          `json:"bestId,omitempty"`
	CSV      string          `json:"csv"`
	Warnings []string        `json:"warnings,omitempty"`
	Duration string          `json:"duration"`
}

type errorResponse struct {
	Error   string                 `json:"error"`
	Details validation.FieldErrors `json:"details,omitempty"`
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, comparison.NewEntry())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req entryRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}

	c, inputErrs := h.buildComparison([]entryRequest{req})
	if inputErrs[0] != nil {
		h.respondInvalid(w, inputErrs[0], op)
		return
	}

	entry, err := c.Calculate(0)
	if err != nil {
		h.respondInvalid(w, err, op)
		return
	}

	h.logger.Info("entry calculated",
		zap.String("op", op),
		zap.String("id", entry.ID),
		zap.Int64("monthlyPayment", entry.MonthlyPayment),
	)
	h.writeJSON(w, http.StatusOK, h.present(entry, nil))
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompare"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req compareRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}
	if len(req.Entries) == 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "at least one entry is required", op)
		return
	}

	c, errs := h.buildComparison(req.Entries)
	for i := range errs {
		if errs[i] != nil {
			continue
		}
		if _, err := c.Calculate(i); err != nil {
			errs[i] = err
		}
	}

	entries := c.Entries()
	rows := output.Rows(entries, errs)
	csvText, err := output.CsvString(rows)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}
	response := compareResponse{
		Entries:  make([]entryResponse, len(entries)),
		CSV:      csvText,
		Warnings: c.Warnings(),
	}
	for i, entry := range entries {
		response.Entries[i] = h.present(entry, errs[i])
	}
	if best := output.Best(rows); best >= 0 {
		response.BestID = entries[best].ID
	}

	elapsed := time.Since(start)
	response.Duration = elapsed.String()

	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.Int("entries", len(entries)),
		zap.Int("warnings", len(response.Warnings)),
		zap.Duration("duration", elapsed),
	)
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req compareRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}

	c, errs := h.buildComparison(req.Entries)
	for _, err := range errs {
		if err != nil {
			h.respondInvalid(w, err, op)
			return
		}
	}

	conf := config.Configuration{
		Lenders: c.Entries(),
		Output:  config.OutputConfig{Language: h.language.String()},
	}
	yamlBytes, err := yaml.Marshal(conf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode lenders: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// buildComparison starts every requested entry from the defaults and applies
// the posted fields through the comparison's update command. The returned
// slice holds the input error for each entry, if any.
func (h *handler) buildComparison(requests []entryRequest) (*comparison.Comparison, []error) {
	seed := make([]comparison.LoanEntry, len(requests))
	for i, req := range requests {
		seed[i] = comparison.NewEntry()
		if id := strings.TrimSpace(req.ID); id != "" {
			seed[i].ID = id
		}
	}
	c := comparison.FromEntries(h.logger, seed)

	errs := make([]error, len(requests))
	for i, req := range requests {
		fields := []struct {
			field comparison.Field
			value *inputValue
		}{
			{comparison.FieldName, req.Name},
			{comparison.FieldRateType, req.RateType},
			{comparison.FieldBaseRate, req.BaseRate},
			{comparison.FieldOver35YearsRate, req.Over35YearsRate},
			{comparison.FieldInsuranceRate, req.InsuranceRate},
			{comparison.FieldLoanAmount, req.LoanAmount},
			{comparison.FieldLoanTerm, req.LoanTerm},
		}

		var fieldErrs validation.FieldErrors
		for _, f := range fields {
			if f.value == nil {
				continue
			}
			if err := c.Update(i, f.field, string(*f.value)); err != nil {
				fieldErrs = append(fieldErrs, toFieldErrors(string(f.field), err)...)
			}
		}
		if len(fieldErrs) > 0 {
			errs[i] = fieldErrs
		}
	}
	return c, errs
}

func (h *handler) present(entry comparison.LoanEntry, err error) entryResponse {
	resp := entryResponse{LoanEntry: entry}
	if err != nil {
		resp.Error = err.Error()
		resp.Details = toFieldErrors("", err)
		return resp
	}
	if entry.Calculated() {
		resp.Display = &entryDisplay{
			RateType:       entry.RateType.Label(),
			AppliedRate:    format.Rate(entry.BaseRate, entry.Over35YearsRate, entry.InsuranceRate),
			LoanAmount:     h.formatter.LoanAmount(entry.LoanAmount),
			LoanTerm:       fmt.Sprintf("%d年", entry.LoanTerm),
			MonthlyPayment: h.formatter.Yen(entry.MonthlyPayment),
			TotalPayment:   h.formatter.ManYen(entry.TotalPayment),
			TotalInterest:  h.formatter.ManYen(entry.TotalInterest),
		}
	}
	return resp
}

// toFieldErrors flattens the error kinds produced while parsing, validating
// and calculating an entry. field names the input when err does not.
func toFieldErrors(field string, err error) validation.FieldErrors {
	var list validation.FieldErrors
	if errors.As(err, &list) {
		return list
	}

	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return validation.FieldErrors{*fieldErr}
	}

	var inputErr *loans.InputError
	if errors.As(err, &inputErr) {
		return validation.FieldErrors{{Field: inputErr.Field, Message: inputErr.Reason}}
	}

	if field != "" {
		return validation.FieldErrors{{Field: field, Message: err.Error()}}
	}
	return nil
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondInvalid(w http.ResponseWriter, err error, op string) {
	status := http.StatusBadRequest
	if !errors.Is(err, loans.ErrInvalidInput) {
		status = http.StatusInternalServerError
	}

	h.logger.Warn("entry rejected",
		zap.String("op", op),
		zap.Int("status", status),
		zap.Error(err),
	)
	h.writeJSON(w, status, errorResponse{
		Error:   err.Error(),
		Details: toFieldErrors("", err),
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
