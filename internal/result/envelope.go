package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/innergy-tools/workorders/internal/model"
)

// SuccessEnvelope is the output shape for a completed run.
type SuccessEnvelope struct {
	Success    bool              `json:"success"`
	WorkOrders []json.RawMessage `json:"workOrders"`
	Count      int               `json:"count"`
}

// FailureEnvelope is the output shape for a failed run.
type FailureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Success builds the success envelope. A nil item list renders as [] and
// count 0, never as null.
func Success(items []json.RawMessage) SuccessEnvelope {
	if items == nil {
		items = make([]json.RawMessage, 0)
	}
	return SuccessEnvelope{
		Success:    true,
		WorkOrders: items,
		Count:      len(items),
	}
}

// Failure builds the failure envelope for any error reaching the
// entrypoint boundary.
func Failure(err error) FailureEnvelope {
	return FailureEnvelope{
		Success: false,
		Message: FailureMessage(err),
	}
}

// FailureMessage maps an error onto the user-visible message:
//
//   - HTTP status failures → "API error: <code>"
//   - network, timeout, and parse failures → "Request error: <description>"
//   - everything else (missing env file, missing API_KEY, unknown) → the
//     raw error description
func FailureMessage(err error) string {
	var re *model.RunError
	if !errors.As(err, &re) {
		return err.Error()
	}

	switch re.Kind {
	case model.KindHTTPStatus:
		return fmt.Sprintf("API error: %d", re.StatusCode)
	case model.KindNetwork, model.KindTimeout, model.KindParse:
		return fmt.Sprintf("Request error: %s", re.Error())
	default:
		return re.Error()
	}
}

// Render writes the envelope to w as pretty-printed JSON with 2-space
// indentation, followed by a newline.
func Render(w io.Writer, envelope any) error {
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result envelope: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
