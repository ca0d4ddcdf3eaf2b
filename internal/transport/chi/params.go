package chi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/loksabha/internal/domain/election"
)

const maxBodyBytes = 1 << 20

// filterBody is the POST body shared by the record endpoints.
// Fields stay loosely typed: clients send year as a number or a string.
// Values that are empty, null or of the wrong type mean "not set".
type filterBody struct {
	Year      any `json:"year"`
	PCName    any `json:"PC_name"`
	StateName any `json:"state_name"`
}

// decodeBody reads a JSON object into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxBodyBytes {
		return errors.New("request body too large")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// decodeQuery builds an election query from a filter body. Only a body
// that is not a JSON object is an error; unusable filter values widen the match.
func decodeQuery(r *http.Request) (election.Query, error) {
	var body filterBody
	if err := decodeBody(r, &body); err != nil {
		return election.Query{}, err
	}

	return election.Query{
		Year:      optionalYear(body.Year),
		PCName:    optionalString(body.PCName),
		StateName: optionalString(body.StateName),
	}, nil
}

func optionalYear(v any) int {
	year, err := election.ParseYear(v)
	if err != nil {
		return 0
	}
	return year
}

// bindPieChart reads the optional pieChart query parameter. Any non-empty
// value other than 0 or false turns pie mode on.
func bindPieChart(r *http.Request) (bool, error) {
	var pie *string
	if err := runtime.BindQueryParameter("form", true, false, "pieChart", r.URL.Query(), &pie); err != nil {
		return false, fmt.Errorf("pieChart: %w", err)
	}
	if pie == nil {
		return false, nil
	}
	v := strings.TrimSpace(*pie)
	return v != "" && v != "0" && !strings.EqualFold(v, "false"), nil
}

// bindPartyName reads the optional partyName query parameter.
func bindPartyName(r *http.Request) (string, bool, error) {
	var party *string
	if err := runtime.BindQueryParameter("form", true, false, "partyName", r.URL.Query(), &party); err != nil {
		return "", false, fmt.Errorf("partyName: %w", err)
	}
	if party == nil {
		return "", false, nil
	}
	return *party, true, nil
}

func optionalString(v any) string {
	s, _ := v.(string)
	return s
}
