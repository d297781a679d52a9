package pixelletter

import (
	"context"

	"github.com/alapierre/go-pixelletter-client/pixelletter/api"
	"github.com/alapierre/go-pixelletter-client/pixelletter/codes"
	"github.com/alapierre/go-pixelletter-client/pixelletter/model"
)

// Config holds the account credentials and the consent flags the gateway
// demands with every request.
type Config struct {
	Email    string
	Password string
	// AcceptTerms confirms the gateway's terms of service (agb).
	AcceptTerms bool
	// WaiveWithdrawal waives the statutory right of withdrawal
	// (widerrufsverzicht); without it shipping is delayed by two weeks.
	WaiveWithdrawal bool
	// TestMode submits orders without dispatching or billing them.
	TestMode bool
	// Ref is an optional free-text reference stored with the account.
	Ref string
	// Endpoint overrides the production gateway URL, mainly for tests.
	Endpoint string
}

// Client talks to the gateway. The credentials are fixed at construction
// and never mutated, so one Client may be shared between goroutines.
type Client struct {
	api  api.Client
	auth model.Auth
}

func New(config Config) *Client {
	return &Client{
		api: api.New(config.Endpoint),
		auth: model.Auth{
			Email:             config.Email,
			Password:          config.Password,
			AGB:               model.YesNo(config.AcceptTerms),
			Widerrufsverzicht: model.YesNo(config.WaiveWithdrawal),
			Testmodus:         config.TestMode,
			Ref:               optional(config.Ref),
		},
	}
}

// SubmitOrder validates and submits one order and returns the gateway's
// confirmation text. Attachment bytes from the request travel as
// additional multipart parts.
func (c *Client) SubmitOrder(ctx context.Context, req OrderRequest) (string, error) {

	logger.Debug("Submit order")

	order, err := req.order()
	if err != nil {
		return "", err
	}

	auth := c.auth
	envelope := &model.Envelope{
		Version: model.Version,
		Auth:    &auth,
		Command: &model.Command{Order: order},
	}

	payload, err := envelope.Marshal()
	if err != nil {
		return "", err
	}

	body, err := c.api.PostXML(ctx, payload, req.Files)
	if err != nil {
		return "", err
	}

	response, err := decodeResponse(body)
	if err != nil {
		return "", err
	}
	if gatewayErr := codes.FromResult(response.Result.Code, response.Result.Msg); gatewayErr != nil {
		return "", gatewayErr
	}
	return response.Result.Msg, nil
}

// InfoType selects which account record an info command asks for.
type InfoType string

const (
	InfoAll    InfoType = "all"
	InfoCredit InfoType = "credit"
	InfoData   InfoType = "data"
)

// Account is the decoded answer of an info command.
type Account struct {
	CustomerID *string
	Data       *model.CustomerData
	Credit     *model.CustomerCredit
}

// AccountInfo queries the account records of the authenticated customer.
func (c *Client) AccountInfo(ctx context.Context, infoType InfoType) (*Account, error) {

	logger.Debugf("Account info: %s", infoType)

	auth := c.auth
	envelope := &model.Envelope{
		Version: model.Version,
		Auth:    &auth,
		Command: &model.Command{
			Info: &model.Info{AccountInfo: model.AccountInfo{Type: string(infoType)}},
		},
	}

	payload, err := envelope.Marshal()
	if err != nil {
		return nil, err
	}

	body, err := c.api.PostXML(ctx, payload, nil)
	if err != nil {
		return nil, err
	}

	decoded, err := model.Unmarshal([]byte(body))
	if err != nil {
		return nil, err
	}

	if decoded.Response != nil {
		logger.Debugf("gateway response: %+v", decoded.Response)
		if gatewayErr := codes.FromResult(decoded.Response.Result.Code, decoded.Response.Result.Msg); gatewayErr != nil {
			return nil, gatewayErr
		}
	} else if decoded.CustomerID == nil && decoded.CustomerData == nil && decoded.CustomerCredit == nil {
		return nil, ErrNoResponse
	}

	return &Account{
		CustomerID: decoded.CustomerID,
		Data:       decoded.CustomerData,
		Credit:     decoded.CustomerCredit,
	}, nil
}

func decodeResponse(body string) (*model.Response, error) {
	envelope, err := model.Unmarshal([]byte(body))
	if err != nil {
		return nil, err
	}
	if envelope.Response == nil {
		return nil, ErrNoResponse
	}
	logger.Debugf("gateway response: %+v", envelope.Response)
	return envelope.Response, nil
}
