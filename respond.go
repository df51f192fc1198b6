package guardrail

import (
	"encoding/json"
	"net/http"
	"sort"
)

// ViolationPayload is the wire form of a single violation.
type ViolationPayload struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// ErrorPayload is the uniform wire shape for every validation failure,
// regardless of whether it originated from body, path, query or
// service-layer validation.
type ErrorPayload struct {
	Violations []ViolationPayload `json:"violations"`
}

// Respond maps a non-empty outcome to an HTTP status and payload. The
// violation list is sorted by field name, keeping the original evaluation
// order within a field, so rendering the same outcome twice is
// byte-identical. Calling Respond on a valid outcome is a caller bug; it
// returns an empty payload.
func Respond(outcome Outcome) (int, ErrorPayload) {
	violations := outcome.Violations()
	payload := ErrorPayload{Violations: make([]ViolationPayload, 0, len(violations))}
	for _, v := range violations {
		payload.Violations = append(payload.Violations, ViolationPayload{
			FieldName: v.Field,
			Message:   v.Message,
		})
	}
	sort.SliceStable(payload.Violations, func(i, j int) bool {
		return payload.Violations[i].FieldName < payload.Violations[j].FieldName
	})
	return http.StatusBadRequest, payload
}

// WriteError renders an error to a plain net/http response writer.
// Validation failures become the uniform 400 violations payload; anything
// else (schema errors included) is a generic 500 so configuration bugs are
// never downgraded to client errors.
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if verr := AsValidationError(err); verr != nil {
		status, payload := Respond(verr.Outcome())
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
}
