package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mysteryidea/ledgerd/internal/logger"
	"go.uber.org/zap"
)

type ClientInterface interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	CreateConnectAccount(ctx context.Context, email string, metadata map[string]string) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
}

// CheckoutParams describes a hosted checkout session: one line item
// plus the metadata the webhook needs to settle the payment later.
type CheckoutParams struct {
	Currency           string
	ProductName        string
	ProductDescription string
	UnitAmountInCents  int64
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
	FeeAmountInCents   int64
	TransferAccountID  string
}

type CheckoutSession struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	PaymentIntentID string `json:"payment_intent"`
}

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(secretKey string) *Client {
	return &Client{
		baseURL:    "https://api.stripe.com",
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateConnectAccount provisions an express payout account for a
// creator and returns its id.
func (c *Client) CreateConnectAccount(ctx context.Context, email string, metadata map[string]string) (string, error) {
	form := url.Values{}
	form.Set("type", "express")
	form.Set("email", email)
	form.Set("capabilities[card_payments][requested]", "true")
	form.Set("capabilities[transfers][requested]", "true")
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	var account struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/v1/accounts", form, &account); err != nil {
		return "", err
	}
	return account.ID, nil
}

// CreateAccountLink returns a one-time hosted onboarding URL for a
// payout account.
func (c *Client) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	form := url.Values{}
	form.Set("account", accountID)
	form.Set("refresh_url", refreshURL)
	form.Set("return_url", returnURL)
	form.Set("type", "account_onboarding")

	var link struct {
		URL string `json:"url"`
	}
	if err := c.postForm(ctx, "/v1/account_links", form, &link); err != nil {
		return "", err
	}
	return link.URL, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.UnitAmountInCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.ProductDescription != "" {
		form.Set("line_items[0][price_data][product_data][description]", params.ProductDescription)
	}
	for k, v := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}
	if params.TransferAccountID != "" {
		form.Set("payment_intent_data[application_fee_amount]", strconv.FormatInt(params.FeeAmountInCents, 10))
		form.Set("payment_intent_data[transfer_data][destination]", params.TransferAccountID)
	}

	var session CheckoutSession
	if err := c.postForm(ctx, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Log.Error("payment provider request failed",
			zap.String("path", path), zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
