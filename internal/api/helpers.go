package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/mcamargo/lexgym/internal/errors"
	"github.com/mcamargo/lexgym/internal/logger"
)

// maxBodySize bounds request bodies; the largest legitimate payload is a
// full backup import.
const maxBodySize = 10 << 20

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads and decodes a request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, errors.NewBadRequestError("failed to read request body")
	}
	if len(body) == 0 {
		return nil, errors.NewBadRequestError("empty request body")
	}
	return body, nil
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
