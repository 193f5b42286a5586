// Package classifier maps provider error bodies to the codes shown to shop operators.
package classifier

import (
	"encoding/json"
	"errors"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
)

type Code string

const (
	CodePickup                     Code = "pickup"
	CodeDelivery                   Code = "delivery"
	CodeItemSets                   Code = "item_sets"
	CodeValidationError            Code = "validation_error"
	CodeDeliveryAddressLookupError Code = "delivery_address_lookup_error"
)

// Checked in this order, the first match wins.
var validationCodes = []Code{CodePickup, CodeDelivery, CodeItemSets}

var topLevelCodes = []Code{CodeValidationError, CodeDeliveryAddressLookupError}

type errorBody struct {
	ErrorCode        string                     `json:"error_code"`
	Message          string                     `json:"message"`
	ValidationErrors map[string]json.RawMessage `json:"validation_errors"`
}

// Classify returns the code for a provider error body.
// Validation sub-kinds take precedence over the top level error code.
func Classify(body []byte) (Code, bool) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return "", false
	}

	for _, code := range validationCodes {
		if _, ok := eb.ValidationErrors[string(code)]; ok {
			return code, true
		}
	}

	for _, code := range topLevelCodes {
		if eb.ErrorCode == string(code) {
			return code, true
		}
	}

	return "", false
}

// Unrecognized returns the raw error code of the body, or its message when there is no code.
func Unrecognized(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.ErrorCode != "" {
		return eb.ErrorCode
	}
	return eb.Message
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Notice is the outcome of an operator action as passed back to the UI.
type Notice struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
}

func Success() Notice {
	return Notice{Status: StatusSuccess}
}

// NoticeFromError builds a failed notice. Provider errors carry the classified code,
// or the raw code when it is not recognized.
func NoticeFromError(err error) Notice {
	n := Notice{Status: StatusFailed}

	var apiErr *entities.APIError
	if !errors.As(err, &apiErr) {
		return n
	}

	if code, ok := Classify(apiErr.Body); ok {
		n.Code = string(code)
		return n
	}
	n.Code = Unrecognized(apiErr.Body)
	return n
}
