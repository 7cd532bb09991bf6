package config

import (
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/service/chatbot"
	"github.com/urfave/cli/v3"
)

// API holds configuration for the chatbot backend client
type API struct {
	baseURL string
	timeout time.Duration
}

// Flags returns CLI flags for the chatbot API client
func (a *API) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the chatbot backend API",
			Category:    "API",
			Sources:     cli.EnvVars(chatbot.BaseURLEnv),
			Destination: &a.baseURL,
		},
		&cli.DurationFlag{
			Name:        "api-timeout",
			Usage:       "Timeout of a single backend request",
			Category:    "API",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("CHATDESK_API_TIMEOUT"),
			Destination: &a.timeout,
		},
	}
}

// ApplyProfile fills flags that were not set explicitly from p
func (a *API) ApplyProfile(c *cli.Command, p *ProfileData) error {
	if p == nil {
		return nil
	}
	if !c.IsSet("api-url") && p.API.BaseURL != "" {
		a.baseURL = p.API.BaseURL
	}
	if !c.IsSet("api-timeout") && p.API.Timeout != "" {
		d, err := time.ParseDuration(p.API.Timeout)
		if err != nil {
			return goerr.Wrap(ErrInvalidConfig, "invalid api timeout in profile",
				goerr.V(FlagKey, "api.timeout"), goerr.V(ValueKey, p.API.Timeout))
		}
		a.timeout = d
	}
	return nil
}

// BaseURL returns the resolved base URL
func (a *API) BaseURL() string {
	if a.baseURL != "" {
		return a.baseURL
	}
	return chatbot.ResolveBaseURL(os.LookupEnv)
}

// endpoint is the loggable form of the base URL. Credentials embedded in
// the URL are split off into a masked field.
type endpoint struct {
	URL         string `json:"url"`
	Credentials string `json:"credentials,omitempty" masq:"secret"`
}

func newEndpoint(raw string) endpoint {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return endpoint{URL: raw}
	}
	e := endpoint{Credentials: u.User.String()}
	u.User = nil
	e.URL = u.String()
	return e
}

// LogAttrs returns log attributes for the API configuration
func (a *API) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Any("base_url", newEndpoint(a.BaseURL())),
		slog.Duration("timeout", a.timeout),
	}
}

// Configure creates the chatbot API client
func (a *API) Configure(opts ...chatbot.Option) (*chatbot.Client, error) {
	if a.timeout > 0 {
		opts = append([]chatbot.Option{chatbot.WithTimeout(a.timeout)}, opts...)
	}

	client, err := chatbot.New(a.BaseURL(), opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create chatbot client")
	}
	return client, nil
}
