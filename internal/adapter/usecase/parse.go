package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"campaign-studio/internal/core/domain"
)

var ErrMalformedResult = errors.New("malformed campaign JSON")

// ParseResult decodes the model reply into a CampaignResult. The reply must
// be a single JSON object carrying every key in resultKeys with the right
// type; a surrounding markdown fence is tolerated. Any note supplied by the
// model is discarded.
func ParseResult(raw string) (*domain.CampaignResult, error) {
	body := stripFence(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedResult)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}

	var missing []string
	for _, key := range resultKeys {
		v, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedResult, strings.Join(missing, ", "))
	}

	var res domain.CampaignResult
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}
	res.Note = ""
	return &res, nil
}

// stripFence removes a ```json ... ``` wrapper if the model added one.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
