// Package client talks to the camera-control backend's JSON API: stream
// status, live FWHM measurements, star selection, and camera
// configuration.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/starwell/focustop/internal/model"
)

const requestTimeout = 5 * time.Second

// APIError is a failure reported by the backend itself, as opposed to a
// transport failure.
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s: %s", e.Endpoint, e.Message)
}

// Client is the HTTP client for the camera backend. Safe for concurrent
// use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Entry
}

// New creates a client for the backend at baseURL.
func New(baseURL string, log *logrus.Entry) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// envelope is the backend's control-endpoint response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Status reports whether the camera live stream is running.
func (c *Client) Status(ctx context.Context) (model.CameraStatus, error) {
	var status model.CameraStatus
	if err := c.get(ctx, "/api/camera/status", &status); err != nil {
		return model.CameraStatus{}, err
	}
	return status, nil
}

// fwhmPayload matches the backend's /api/fwhm_data response. star_pos
// arrives as a two-element array or null.
type fwhmPayload struct {
	Current     *float64  `json:"current_fwhm"`
	History     []float64 `json:"fwhm_history"`
	StarPos     []int     `json:"star_pos"`
	FrameWidth  int       `json:"frame_width"`
	FrameHeight int       `json:"frame_height"`
}

// FWHMData fetches the current measurement state. Non-finite history
// values are dropped here so downstream consumers only ever see finite
// samples.
func (c *Client) FWHMData(ctx context.Context) (model.FWHMData, error) {
	var payload fwhmPayload
	if err := c.get(ctx, "/api/fwhm_data", &payload); err != nil {
		return model.FWHMData{}, err
	}

	data := model.FWHMData{
		History:     filterFinite(payload.History),
		FrameWidth:  payload.FrameWidth,
		FrameHeight: payload.FrameHeight,
	}
	if payload.Current != nil && isFinite(*payload.Current) {
		data.Current = *payload.Current
		data.Tracking = true
	}
	if len(payload.StarPos) == 2 {
		data.Star = &model.StarPos{X: payload.StarPos[0], Y: payload.StarPos[1]}
	}
	return data, nil
}

// StartCamera starts the live stream.
func (c *Client) StartCamera(ctx context.Context) error {
	return c.post(ctx, "/api/camera/start", nil, nil)
}

// StopCamera stops the live stream. The backend also resets its
// measurement state.
func (c *Client) StopCamera(ctx context.Context) error {
	return c.post(ctx, "/api/camera/stop", nil, nil)
}

// Capture triggers a still capture and returns the camera-side filename.
func (c *Client) Capture(ctx context.Context) (string, error) {
	var file string
	if err := c.post(ctx, "/api/camera/capture", nil, &file); err != nil {
		return "", err
	}
	return file, nil
}

// SelectStar picks the star at frame position (x, y) for FWHM tracking.
// The backend resets its measurement history; callers should clear any
// local series on success.
func (c *Client) SelectStar(ctx context.Context, x, y int) error {
	return c.post(ctx, "/api/select_star", map[string]int{"x": x, "y": y}, nil)
}

// Config lists the camera settings with their allowed choices.
func (c *Client) Config(ctx context.Context) ([]model.ConfigOption, error) {
	var opts []model.ConfigOption
	if err := c.post(ctx, "/api/camera/get_config", nil, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// SetConfig applies one camera setting.
func (c *Client) SetConfig(ctx context.Context, setting, value string) error {
	body := map[string]string{"setting": setting, "value": value}
	return c.post(ctx, "/api/camera/set_config", body, nil)
}

// get performs a GET against a plain-JSON endpoint.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: path, Message: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// post performs a POST against an envelope endpoint. in may be nil; out
// receives the envelope's data field when non-nil.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &APIError{Endpoint: path, Message: resp.Status}
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		c.log.WithField("endpoint", path).Warn(msg)
		return &APIError{Endpoint: path, Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s data: %w", path, err)
		}
	}
	return nil
}

func filterFinite(values []float64) []float64 {
	out := values[:0:0]
	for _, v := range values {
		if isFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
