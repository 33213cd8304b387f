package twilio

import (
	"fmt"

	"moodbot/app/config"

	"github.com/samber/do"
	twiliogo "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Client struct {
	cfg  *config.Config
	rest *twiliogo.RestClient
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	rest := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
		Username: cfg.Twilio.AccountSID,
		Password: cfg.Twilio.AuthToken,
	})

	return &Client{
		cfg:  cfg,
		rest: rest,
	}, nil
}

// Send delivers a text body to the given destination address.
func (c *Client) Send(to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(c.cfg.Twilio.From)
	params.SetTo(to)
	params.SetBody(body)

	if _, err := c.rest.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send message via twilio: %w", err)
	}

	return nil
}
