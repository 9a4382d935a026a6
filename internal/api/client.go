package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"inquest/internal/util/logx"
)

// Client talks to the investigation backend. Every call resolves to an
// Envelope: transport failures, timeouts and malformed payloads are folded
// into a synthesized ok=false envelope so callers only ever branch on OK.
type Client struct {
	rc      *resty.Client
	limiter *rate.Limiter
}

func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	// Pace requests so repeated key presses cannot hammer the backend.
	return &Client{rc: rc, limiter: rate.NewLimiter(rate.Limit(10), 5)}
}

// Get performs a GET against path with the given query values.
func (c *Client) Get(ctx context.Context, path string, params url.Values) *Envelope {
	return c.do(ctx, "GET", path, params)
}

// Post performs a POST against path. Used only by the build trigger.
func (c *Client) Post(ctx context.Context, path string) *Envelope {
	return c.do(ctx, "POST", path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values) *Envelope {
	if err := c.limiter.Wait(ctx); err != nil {
		return netError(path, err.Error())
	}
	req := c.rc.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}
	var resp *resty.Response
	var err error
	switch method {
	case "POST":
		resp, err = req.Post(path)
	default:
		resp, err = req.Get(path)
	}
	if err != nil {
		logx.Warnf("api: %s %s failed: %v", method, path, err)
		return netError(path, err.Error())
	}
	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		logx.Warnf("api: %s %s returned malformed payload: %v", method, path, err)
		return netError(path, "malformed response: "+err.Error())
	}
	logx.Debugf("api: %s %s ok=%v", method, path, env.OK)
	return &env
}

// Health checks backend availability.
func (c *Client) Health(ctx context.Context) *Envelope {
	return c.Get(ctx, "/health", nil)
}

// Entities lists recently observed entities, newest first.
func (c *Client) Entities(ctx context.Context, limit int) *Envelope {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return c.Get(ctx, "/entities", v)
}

// Search lists and filters events. params comes from the query builder and
// already carries limit/offset defaults.
func (c *Client) Search(ctx context.Context, params url.Values) *Envelope {
	return c.Get(ctx, "/search", params)
}

// Summary fetches totals and top partners for one entity.
func (c *Client) Summary(ctx context.Context, params url.Values) *Envelope {
	return c.Get(ctx, "/summary", params)
}

// Storages fetches container balances for one entity.
func (c *Client) Storages(ctx context.Context, params url.Values) *Envelope {
	return c.Get(ctx, "/storages", params)
}

// Flow fetches time-coherent chains around one entity.
func (c *Client) Flow(ctx context.Context, params url.Values) *Envelope {
	return c.Get(ctx, "/flow", params)
}

// Trace fetches network adjacency within a depth.
func (c *Client) Trace(ctx context.Context, params url.Values) *Envelope {
	return c.Get(ctx, "/trace", params)
}

// Between fetches events connecting two entities.
func (c *Client) Between(ctx context.Context, params url.Values) *Envelope {
	return c.Get(ctx, "/between", params)
}

// Ask submits a natural-language question.
func (c *Client) Ask(ctx context.Context, question string) *Envelope {
	v := url.Values{}
	v.Set("q", question)
	return c.Get(ctx, "/ask", v)
}

// Build triggers a database (re)build. Fire-and-forget from the console's
// perspective; the caller re-enables its control regardless of outcome.
func (c *Client) Build(ctx context.Context) *Envelope {
	return c.Post(ctx, "/build")
}
