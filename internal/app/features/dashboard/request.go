// internal/app/features/dashboard/request.go
package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/academicdash/internal/app/system/inputval"
)

const maxBodyBytes = 1 << 20

// flexInt accepts a JSON number or a numeric string ("15").
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enrollment must be an integer, got %s", string(b))
	}
	*f = flexInt(n)
	return nil
}

// cohortRequest selects the students of one major and enrollment.
// A missing field means "any".
type cohortRequest struct {
	Major      string   `json:"major" validate:"max=64"`
	Enrollment *flexInt `json:"enrollment" validate:"omitempty,gte=0"`
}

func (c cohortRequest) enrollment() *int {
	if c.Enrollment == nil {
		return nil
	}
	n := int(*c.Enrollment)
	return &n
}

// enrollmentToken is the enrollment as it appears inside a student code.
func (c cohortRequest) enrollmentToken() string {
	if c.Enrollment == nil {
		return ""
	}
	return strconv.Itoa(int(*c.Enrollment))
}

// decodeCohort reads and validates the JSON body. An empty body is an
// empty request. Non-nil fields describe why the body was rejected.
func decodeCohort(w http.ResponseWriter, r *http.Request) (cohortRequest, map[string]string) {
	var req cohortRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, inputval.Struct(req)
		}
		return req, map[string]string{"detail": err.Error()}
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return req, map[string]string{"detail": "request body must contain a single JSON object"}
	}
	return req, inputval.Struct(req)
}

// chartQuery holds the query parameters of the new-chart endpoint.
type chartQuery struct {
	Major    string `query:"major" validate:"max=64"`
	Enroll   string `query:"enroll" validate:"max=32"`
	Semester string `query:"semester" validate:"max=32"`
	Year     string `query:"year" validate:"max=16"`
}

func parseChartQuery(r *http.Request) (chartQuery, map[string]string) {
	q := r.URL.Query()
	cq := chartQuery{
		Major:    q.Get("major"),
		Enroll:   q.Get("enroll"),
		Semester: q.Get("semester"),
		Year:     q.Get("year"),
	}
	return cq, inputval.Struct(cq)
}
