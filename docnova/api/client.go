package api

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/docnova/go-docnova-client/docnova/util"
)

// Client is the transport under the auth and invoice services. Authenticated
// calls carry the session token in the R-Auth header.
type Client interface {
	PostJSON(ctx context.Context, endpoint, token string, body, result interface{}) error
	PostJSONNoAuth(ctx context.Context, endpoint string, body, result interface{}) error

	// OnSessionExpired registers a listener invoked whenever any call comes
	// back unauthorized. The transport only signals, tearing the session down
	// is the subscriber's job.
	OnSessionExpired(fn func())
}

type Environment int

const (
	Dev Environment = iota
	Prod
)

func (e Environment) BaseURL() string {
	switch e {
	case Dev:
		return "https://api-dev.docnova.ai"
	case Prod:
		return "https://api.docnova.ai"
	}
	panic("invalid environment")
}

func (e Environment) Name() string {
	switch e {
	case Dev:
		return "dev"
	case Prod:
		return "prod"
	}
	panic("invalid environment")
}

func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "dev":
		*e = Dev
	case "prod":
		*e = Prod
	default:
		return fmt.Errorf("invalid DOCNOVA_ENV: %q (allowed: dev, prod)", val)
	}
	return nil
}

// DefaultTimeout is the fixed budget for a single remote call. Exceeding it
// yields a timeout-classified failure, never a hang.
const DefaultTimeout = 30 * time.Second

type client struct {
	rest *resty.Client

	mu      sync.Mutex
	expired []func()
}

type Option func(*client)

func WithTimeout(d time.Duration) Option {
	return func(c *client) { c.rest.SetTimeout(d) }
}

func WithBaseURL(url string) Option {
	return func(c *client) { c.rest.SetBaseURL(url) }
}

func New(env Environment, opts ...Option) Client {
	rest := resty.New().
		SetBaseURL(env.BaseURL()).
		SetTimeout(DefaultTimeout).
		SetHeader("Content-Type", "application/json")

	c := &client{rest: rest}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) OnSessionExpired(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expired = append(c.expired, fn)
}

func (c *client) PostJSON(ctx context.Context, endpoint, token string, body, result interface{}) error {
	r := c.rest.R().
		SetContext(ctx).
		SetHeader("R-Auth", token)
	return c.post(r, endpoint, body, result)
}

func (c *client) PostJSONNoAuth(ctx context.Context, endpoint string, body, result interface{}) error {
	r := c.rest.R().SetContext(ctx)
	return c.post(r, endpoint, body, result)
}

func (c *client) post(r *resty.Request, endpoint string, body, result interface{}) error {
	if util.HTTPTraceEnabled() {
		r.EnableTrace()
	}

	resp, err := r.
		SetBody(body).
		SetResult(result).
		Post(endpoint)

	printTraceInfo(endpoint, err, resp)
	return c.checkError(resp, err)
}

func (c *client) checkError(resp *resty.Response, err error) error {
	if err != nil {
		kind := KindUnreachable
		if isTimeout(err) {
			kind = KindTimeout
		}
		return &RequestError{
			Category: Classify(0, kind),
			Err:      errors.Wrap(err, "remote call"),
		}
	}

	if resp.IsError() {
		status := resp.StatusCode()
		re := &RequestError{
			StatusCode:    status,
			Category:      Classify(status, KindStatus),
			Body:          resp.String(),
			ServerMessage: serverMessage(resp.Body()),
		}
		if re.Category == CategorySessionExpired {
			c.notifyExpired()
		}
		return re
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func (c *client) notifyExpired() {
	c.mu.Lock()
	listeners := append([]func(){}, c.expired...)
	c.mu.Unlock()

	log.Debug("session expired signal from transport")
	for _, fn := range listeners {
		fn()
	}
}

func printTraceInfo(endpoint string, err error, resp *resty.Response) {
	if !util.HTTPTraceEnabled() || resp == nil {
		return
	}

	fmt.Println("Response Info:")
	fmt.Println("  Endpoint   :", endpoint)
	fmt.Println("  Error      :", err)
	fmt.Println("  Status Code:", resp.StatusCode())
	fmt.Println("  Status     :", resp.Status())
	fmt.Println("  Time       :", resp.Time())
	fmt.Println("  Received At:", resp.ReceivedAt())
	fmt.Println("  Body       :\n", resp)
	fmt.Println()
}
