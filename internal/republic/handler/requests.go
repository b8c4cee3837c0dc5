package handler

import (
	"encoding/json"
	"net/http"
	"time"

	dErrors "republic/pkg/domain-errors"
	"republic/pkg/platform/httputil"
)

type setupRequest struct {
	Name  string `json:"name"`
	Motto string `json:"motto"`
}

type preambleRequest struct {
	Preamble string `json:"preamble"`
}

type articleRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type billRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

type amendBillRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type debatePointRequest struct {
	Side string `json:"side"`
	Text string `json:"text"`
}

type concludeRequest struct {
	Decision   string `json:"decision"`
	Conclusion string `json:"conclusion"`
}

type repealRequest struct {
	Reason string `json:"reason"`
}

type caseRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	RelatedLawID *string `json:"relatedLawId"`
	Department   string  `json:"department"`
}

type verdictRequest struct {
	Verdict  string `json:"verdict"`
	Notes    string `json:"notes"`
	Sentence string `json:"sentence"`
}

type orderRequest struct {
	Title      string     `json:"title"`
	Department string     `json:"department"`
	Priority   string     `json:"priority"`
	Deadline   *time.Time `json:"deadline"`
}

type activityRequest struct {
	Type string `json:"type"`
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// decode parses the JSON body into T. Malformed JSON is the only HTTP-level
// body validation; domain guards live in the service.
func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON body"))
		var zero T
		return zero, false
	}
	return req, true
}
