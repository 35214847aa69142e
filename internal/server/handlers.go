package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/bigshift/internal/bignum"
	"github.com/agbru/bigshift/internal/logging"
)

// ShiftRequest is the body of POST /v1/shift. Value accepts any literal
// understood by big.Int.SetString with base 0 ("0x..", "0b..", decimal).
type ShiftRequest struct {
	Value string `json:"value"`
	Shift *uint  `json:"shift"`
}

// ShiftResponse is returned by POST /v1/shift. On overflow Value and Words
// hold the unchanged input.
type ShiftResponse struct {
	Value  string   `json:"value"`
	Words  []string `json:"words"`
	Len    int      `json:"len"`
	Status string   `json:"status"`
	Code   int      `json:"code"`
	Error  string   `json:"error,omitempty"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Number  uint32 `json:"number"`
}

// ErrorResponse is the body of every 4xx/5xx reply other than overflow.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleShift(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "use POST")
		return
	}

	_, span := tracer.Start(r.Context(), "server.shift")
	defer span.End()

	var req ShiftRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.config.Security.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request too large", err.Error())
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Shift == nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", `missing field "shift"`)
		return
	}
	shift := *req.Shift

	x, ok := new(big.Int).SetString(strings.TrimSpace(req.Value), 0)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid value", fmt.Sprintf("cannot parse %q as an integer", req.Value))
		return
	}
	span.SetAttributes(shiftBitsAttr(shift), attribute.Int("value.bitlen", x.BitLen()))

	z, err := bignum.FromBig(x)
	switch {
	case errors.Is(err, bignum.ErrOverflow):
		s.writeError(w, http.StatusUnprocessableEntity, "value too large", err.Error())
		return
	case err != nil:
		s.writeError(w, http.StatusBadRequest, "invalid value", err.Error())
		return
	}

	err = s.shifter.ShiftLeft(&z, shift)
	status, known := bignum.StatusOf(err)
	if !known {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("shift failed", err, logging.Uint("shift", shift))
		s.writeError(w, http.StatusInternalServerError, "internal error", "shift failed")
		return
	}
	s.metrics.ObserveShift(status, shift)
	span.SetAttributes(attribute.String("shift.status", status.String()))

	resp := newShiftResponse(&z, status)
	code := http.StatusOK
	if err != nil {
		resp.Error = err.Error()
		code = http.StatusUnprocessableEntity
		s.logger.Debug("shift overflow", logging.Uint("shift", shift), logging.Int("bitlen", z.BitLen()))
	}
	writeJSON(w, code, resp)
}

// shiftBitsAttr records the shift amount in decimal. Amounts above
// math.MaxInt64 are legal requests and do not fit an int64 attribute.
func shiftBitsAttr(shift uint) attribute.KeyValue {
	return attribute.String("shift.bits", strconv.FormatUint(uint64(shift), 10))
}

func newShiftResponse(z *bignum.Nat, status bignum.Status) ShiftResponse {
	words := make([]string, z.Len())
	for i := range words {
		words[i] = fmt.Sprintf("0x%016x", z.Word(i))
	}
	return ShiftResponse{
		Value:  "0x" + z.Big().Text(16),
		Words:  words,
		Len:    z.Len(),
		Status: status.String(),
		Code:   int(status),
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "use GET")
		return
	}
	writeJSON(w, http.StatusOK, VersionResponse{Version: s.config.Version, Number: s.config.VersionNumber})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "use GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "use GET")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) writeError(w http.ResponseWriter, code int, errMsg, message string) {
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", errors.New(message), logging.Int("code", code))
	}
	writeJSON(w, code, ErrorResponse{Error: errMsg, Message: message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
