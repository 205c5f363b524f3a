package redsys

import (
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"galaticketing/internal/domain"
)

// Config holds the merchant settings for the gateway.
type Config struct {
	MerchantCode string
	Terminal     string
	Secret       string
	URL          string
	Currency     string
	// PublicURL is this deployment's external base URL, used for webhook and return URLs.
	PublicURL string
}

type gateway struct {
	cfg    Config
	signer *signer
}

// NewGateway returns a PaymentGateway for the given merchant. An empty secret yields a gateway
// whose operations fail with domain.ErrPaymentGatewayDisabled.
func NewGateway(cfg Config) (domain.PaymentGateway, error) {
	if cfg.Secret == "" {
		return disabledGateway{}, nil
	}
	s, err := newSigner(cfg.Secret)
	if err != nil {
		return nil, err
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")
	return &gateway{cfg: cfg, signer: s}, nil
}

func (g *gateway) BuildForm(order *domain.Order) (*domain.PaymentForm, error) {
	merchantData, err := json.Marshal(order.Cart)
	if err != nil {
		return nil, fmt.Errorf("encode merchant data: %w", err)
	}
	params := map[string]string{
		"DS_MERCHANT_AMOUNT":          strconv.FormatInt(order.AmountCents, 10),
		"DS_MERCHANT_ORDER":           order.OrderID,
		"DS_MERCHANT_MERCHANTCODE":    g.cfg.MerchantCode,
		"DS_MERCHANT_CURRENCY":        g.cfg.Currency,
		"DS_MERCHANT_TRANSACTIONTYPE": "0",
		"DS_MERCHANT_TERMINAL":        g.cfg.Terminal,
		"DS_MERCHANT_MERCHANTURL":     g.cfg.PublicURL + "/api/payment/webhook",
		"DS_MERCHANT_URLOK":           g.cfg.PublicURL + "/#/ticket?order=" + order.OrderID,
		"DS_MERCHANT_URLKO":           g.cfg.PublicURL + "/#/checkout",
		"DS_MERCHANT_MERCHANTDATA":    string(merchantData),
	}
	encoded, err := encodeParams(params)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentForm{
		URL: g.cfg.URL,
		Params: map[string]string{
			"Ds_SignatureVersion":   SignatureVersion,
			"Ds_MerchantParameters": encoded,
			"Ds_Signature":          g.signer.sign(order.OrderID, encoded),
		},
	}, nil
}

func (g *gateway) VerifyNotification(merchantParams, signature string) (*domain.GatewayNotification, error) {
	if strings.TrimSpace(merchantParams) == "" || strings.TrimSpace(signature) == "" {
		return nil, fmt.Errorf("%w: missing merchant parameters or signature", domain.ErrInvalidInput)
	}
	params, err := decodeParams(merchantParams)
	if err != nil {
		return nil, err
	}
	orderID, ok := lookup(params, "Ds_Order", "DS_MERCHANT_ORDER")
	if !ok || orderID == "" {
		return nil, fmt.Errorf("%w: order id missing from notification", domain.ErrInvalidInput)
	}
	expected := g.signer.sign(orderID, strings.TrimSpace(merchantParams))
	if !hmac.Equal([]byte(expected), []byte(normalizeSignature(signature))) {
		return nil, domain.ErrInvalidSignature
	}
	n := &domain.GatewayNotification{OrderID: orderID}
	if code, ok := lookup(params, "Ds_Response"); ok {
		v, err := strconv.Atoi(strings.TrimSpace(code))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid Ds_Response %q", domain.ErrInvalidInput, code)
		}
		n.ResponseCode = &v
	}
	return n, nil
}

type disabledGateway struct{}

func (disabledGateway) BuildForm(*domain.Order) (*domain.PaymentForm, error) {
	return nil, domain.ErrPaymentGatewayDisabled
}

func (disabledGateway) VerifyNotification(string, string) (*domain.GatewayNotification, error) {
	return nil, domain.ErrPaymentGatewayDisabled
}
