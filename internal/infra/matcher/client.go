// Package matcher talks to the dynamic map matching server.
package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trajmatch/config"
	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultPath  = "/map_match_dynamic"
	pointTypeTag = "Route"
	maxErrorBody = 512
)

var emptyActiveStates = json.RawMessage("[]")

type matchRequestBody struct {
	ActiveStates       json.RawMessage      `json:"active_states"`
	Coordinates        requestCoordinate    `json:"coordinates"`
	AlternativeParents []entity.ParentPoint `json:"alternative_parents"`
}

type requestCoordinate struct {
	Idx            int    `json:"Idx"`
	Lat            string `json:"Lat"`
	Lon            string `json:"Lon"`
	RegisteredTime string `json:"RegisteredTime"`
	Type           string `json:"Type"`
}

// Pointer fields tell a missing or null member apart from a zero value.
type matchResponseBody struct {
	ActiveStates         json.RawMessage     `json:"active_states"`
	CommittedIdx         *int                `json:"committed_idx"`
	CommittedSubroutes   json.RawMessage     `json:"committed_subroutes,omitempty"` // ignored, see DESIGN.md
	ProvisionalSubroutes *[]responseSubroute `json:"provisional_subroutes"`
}

type responseSubroute struct {
	StartIdx    *int `json:"start_idx"`
	EndIdx      *int `json:"end_idx"`
	Coordinates *struct {
		Coordinates []responseCoordinate `json:"coordinates"`
	} `json:"coordinates"`
}

type responseCoordinate struct {
	Lat coordinate `json:"Lat"`
	Lon coordinate `json:"Lon"`
}

// coordinate accepts both the string encoded floats the server sends and plain numbers.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid coordinate %s", data)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("invalid coordinate %s: not finite", data)
	}
	*c = coordinate(v)

	return nil
}

// Client is the HTTP implementation of service.MatchingClient.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a client for baseURL+path. A zero timeout keeps the transport default.
func NewClient(baseURL, path string, timeout time.Duration, logger *slog.Logger) *Client {
	if path == "" {
		path = defaultPath
	}

	return &Client{
		endpoint:   strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// NewMatchingClient is the fx constructor.
func NewMatchingClient(cfg *config.Config, logger *slog.Logger) service.MatchingClient {
	m := cfg.Matcher

	return NewClient(m.BaseURL, m.Path, m.Timeout, logger)
}

// RequestMatch posts one trajectory point and parses the canonical committed_idx response.
func (c *Client) RequestMatch(ctx context.Context, req service.MatchRequest) (*entity.MatchResponse, error) {
	if req.Index < 0 {
		return nil, domainerrors.NewMatchRequestError(req.Index, errors.Errorf("negative index %d", req.Index))
	}

	body, err := json.Marshal(buildRequestBody(req))
	if err != nil {
		return nil, domainerrors.NewMatchRequestError(req.Index, errors.WithStack(err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domainerrors.NewMatchRequestError(req.Index, errors.WithStack(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.NewMatchRequestError(req.Index, errors.WithStack(err))
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Map matching response received",
		slog.Int("idx", req.Index),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, domainerrors.NewMatchRequestError(req.Index,
			errors.Errorf("matcher returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	var parsed matchResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, domainerrors.NewMatchRequestError(req.Index, errors.Wrap(err, "decode matcher response"))
	}
	if err := parsed.validate(); err != nil {
		return nil, domainerrors.NewMatchRequestError(req.Index, errors.Wrap(err, "invalid matcher response"))
	}

	return toMatchResponse(parsed), nil
}

func buildRequestBody(req service.MatchRequest) matchRequestBody {
	states := req.ActiveStates
	if len(bytes.TrimSpace(states)) == 0 {
		states = emptyActiveStates
	}

	parents := req.AlternativeParents
	if parents == nil {
		parents = []entity.ParentPoint{}
	}

	return matchRequestBody{
		ActiveStates: states,
		Coordinates: requestCoordinate{
			Idx:            req.Index,
			Lat:            strconv.FormatFloat(req.Point.Latitude, 'f', -1, 64),
			Lon:            strconv.FormatFloat(req.Point.Longitude, 'f', -1, 64),
			RegisteredTime: req.Point.FormattedTimestamp(),
			Type:           pointTypeTag,
		},
		AlternativeParents: parents,
	}
}

func (b matchResponseBody) validate() error {
	if b.CommittedIdx == nil {
		return errors.New("committed_idx is missing")
	}
	if b.ProvisionalSubroutes == nil {
		return errors.New("provisional_subroutes is missing")
	}
	for i, rs := range *b.ProvisionalSubroutes {
		switch {
		case rs.StartIdx == nil || rs.EndIdx == nil:
			return errors.Errorf("subroute %d: start_idx and end_idx are required", i)
		case *rs.StartIdx > *rs.EndIdx:
			return errors.Errorf("subroute %d: start_idx %d is after end_idx %d", i, *rs.StartIdx, *rs.EndIdx)
		case rs.Coordinates == nil || len(rs.Coordinates.Coordinates) == 0:
			return errors.Errorf("subroute %d: coordinates are missing", i)
		}
	}

	return nil
}

// toMatchResponse expects a body that passed validate.
func toMatchResponse(body matchResponseBody) *entity.MatchResponse {
	subs := make([]entity.Subroute, 0, len(*body.ProvisionalSubroutes))
	for _, rs := range *body.ProvisionalSubroutes {
		coords := make(orb.LineString, 0, len(rs.Coordinates.Coordinates))
		for _, c := range rs.Coordinates.Coordinates {
			coords = append(coords, orb.Point{float64(c.Lon), float64(c.Lat)})
		}
		subs = append(subs, entity.Subroute{StartIdx: *rs.StartIdx, EndIdx: *rs.EndIdx, Coords: coords})
	}

	return &entity.MatchResponse{
		ActiveStates:         body.ActiveStates,
		CommittedIdx:         *body.CommittedIdx,
		ProvisionalSubroutes: subs,
	}
}
