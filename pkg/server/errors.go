package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
	"github.com/elphtools/kmesh/pkg/serializer"
)

// ErrorResponse represents error responses on the wire
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// writeError writes error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code kerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeStructuredError maps a structured error to an HTTP response,
// preserving its code and context.
func (s *Server) writeStructuredError(w http.ResponseWriter, r *http.Request, err error) {
	code := kerrors.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case kerrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case kerrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case kerrors.ErrCodeMethodNotAllowed:
		status = http.StatusMethodNotAllowed
	case "":
		code = kerrors.ErrCodeInternal
	}

	var details map[string]any
	message := err.Error()
	var se *kerrors.StructuredError
	if errors.As(err, &se) {
		details = se.Context
		message = se.Message
	}

	s.writeError(w, r, status, code, message, status >= http.StatusInternalServerError, details)
}
