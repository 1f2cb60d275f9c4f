package payeer

import (
	"log/slog"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://payeer.com"

const (
	apiPath        = "/ajax/api/api.php"
	defaultTimeout = 30 * time.Second
)

type Config struct {
	// Account number in the Payeer system, e.g. P1000000
	Account string
	// API user's ID, given out when adding the API
	ApiId string
	// API user's secret key
	Secret string
}

type Client struct {
	config     Config
	auth       *Params
	baseUrl    string
	timeout    time.Duration
	logger     *slog.Logger
	httpClient fastshot.ClientHttpMethods
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a local stub.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseUrl = url
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient validates the account, then checks the credentials against the
// API. The returned client is ready for use.
func NewClient(config *Config, opts ...Option) (*Client, error) {
	if err := ValidateWallet(config.Account); err != nil {
		return nil, err
	}
	c := &Client{
		config:  *config,
		auth:    newAuthParams(*config),
		baseUrl: DefaultBaseURL,
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = setupHttpClient(c.baseUrl, c.timeout)
	if err := c.AuthCheck(); err != nil {
		return nil, err
	}
	return c, nil
}

// Account returns the wallet the client acts for.
func (p *Client) Account() string {
	return p.config.Account
}

func setupHttpClient(url string, timeout time.Duration) fastshot.ClientHttpMethods {
	return fastshot.NewClient(url).
		Header().AddAccept(mime.JSON).
		Header().Add("Content-Type", "application/x-www-form-urlencoded").
		Config().SetTimeout(timeout).
		Build()
}
