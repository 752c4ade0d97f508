package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/hlog"

	"github.com/radio-t/speech-budget/internal/content"
)

// jsonAPI validates strings on both decode and encode
var jsonAPI = sonic.ConfigStd

// text formats accepted by the validate endpoint
const (
	formatText = "text"
	formatHTML = "html"
)

// validateRequest is the body of POST /validate_audio_length.
// A missing text is validated as an empty string.
type validateRequest struct {
	Text   *string `json:"text"`
	Format string  `json:"format"`
}

// unmodifiedResponse is returned when the text already fits
type unmodifiedResponse struct {
	Modified           bool    `json:"modified"`
	Text               string  `json:"text"`
	Duration           float64 `json:"duration"`
	MaxAllowedDuration float64 `json:"max_allowed_duration"`
}

// modifiedResponse is returned when the text went through shortening
type modifiedResponse struct {
	Modified           bool    `json:"modified"`
	Text               string  `json:"text"`
	OriginalDuration   float64 `json:"original_duration"`
	NewDuration        float64 `json:"new_duration"`
	MaxAllowedDuration float64 `json:"max_allowed_duration"`
}

// handleValidate measures the submitted text and shortens it when it is too long to speak.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	text, err := s.decodeText(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	res := s.Validator.Validate(ctx, text)

	if !res.Modified {
		writeJSON(w, r, http.StatusOK, &unmodifiedResponse{
			Modified:           false,
			Text:               res.Text,
			Duration:           res.Duration,
			MaxAllowedDuration: res.MaxAllowedDuration,
		})
		return
	}

	writeJSON(w, r, http.StatusOK, &modifiedResponse{
		Modified:           true,
		Text:               res.Text,
		OriginalDuration:   res.OriginalDuration,
		NewDuration:        res.Duration,
		MaxAllowedDuration: res.MaxAllowedDuration,
	})
}

// decodeText reads the request body and returns the text to validate
func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", ErrRequestTooLarge
		}
		return "", ErrInvalidRequestBody
	}

	// strings must be valid UTF-8 to be echoed back as JSON
	if !utf8.Valid(body) {
		return "", ErrInvalidRequestBody
	}

	var req validateRequest
	if err := jsonAPI.Unmarshal(body, &req); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("failed to decode request")
		return "", ErrInvalidRequestBody
	}

	var text string
	if req.Text != nil {
		text = *req.Text
	}

	switch req.Format {
	case "", formatText:
		return text, nil
	case formatHTML:
		plain, err := content.PlainText(text)
		if err != nil {
			return "", ErrInvalidRequestBody
		}
		return plain, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(data, '\n'))
}
