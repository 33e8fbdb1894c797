package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/participant-tracker/internal/config"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/utils"
	"github.com/MKhiriev/participant-tracker/models"
)

const apiKeyHeader = "X-API-Key"

type httpProgressSource struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPProgressSource constructs an HTTP/REST implementation of
// [ProgressSource]. It normalises and validates the base URL from
// cfg.HTTPAddress, bounds every call with cfg.RequestTimeout and attaches
// cfg.APIKey as X-API-Key when it is set.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPProgressSource(cfg config.Adapter, logger *logger.Logger) (ProgressSource, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.APIKey != "" {
		client.SetHeader(apiKeyHeader, cfg.APIKey)
	}

	logger.Info().Str("base_url", baseURL).Dur("timeout", cfg.RequestTimeout).Msg("progress service adapter created")

	return &httpProgressSource{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ReadAll implements [ProgressSource]. It GETs /progress and decodes the
// JSON array of rows.
func (h *httpProgressSource) ReadAll(ctx context.Context) ([]models.ProgressRow, error) {
	log := logger.FromContext(ctx).With().Str("func", "httpProgressSource.ReadAll").Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/progress")
	if err != nil {
		log.Err(err).Msg("progress read request failed")
		return nil, fmt.Errorf("read progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("progress service returned an error")
		return nil, err
	}

	rows := make([]models.ProgressRow, 0)
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		log.Err(err).Msg("progress response could not be decoded")
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if rows == nil {
		rows = make([]models.ProgressRow, 0)
	}

	log.Debug().Int("rows", len(rows)).Msg("progress rows read")
	return rows, nil
}

// UpsertMedals implements [ProgressSource]. It PUTs the four medal flags to
// /progress/{studentID}.
func (h *httpProgressSource) UpsertMedals(ctx context.Context, studentID string, medals models.Medals) error {
	log := logger.FromContext(ctx).With().Str("func", "httpProgressSource.UpsertMedals").Logger()

	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return ErrEmptyStudentID
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("studentId", studentID).
		SetBody(medals).
		Put("/progress/{studentId}")
	if err != nil {
		log.Err(err).Msg("medal upsert request failed")
		return fmt.Errorf("upsert medals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("progress service rejected medal upsert")
		return err
	}

	log.Debug().Str("student_id", studentID).Int("medals", medals.Count()).Msg("medals upserted")
	return nil
}
