package redsys

import (
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaticketing/internal/domain"
)

// Public sandbox secret published in the gateway's integration guide.
const sandboxSecret = "sq7HjrUOBfKmC576ILgskD5srU870gJ7"

func testConfig() Config {
	return Config{
		MerchantCode: "999008881",
		Terminal:     "1",
		Secret:       sandboxSecret,
		URL:          "https://sis-t.redsys.es:25443/sis/realizarPago",
		Currency:     "978",
		PublicURL:    "https://gala.example.com/",
	}
}

func testOrder() *domain.Order {
	cart := domain.Cart{Type: domain.TicketGuest, GraduateID: "g-1", GuestName: "Ana", BasePriceCents: domain.PriceGuestFullCents, Bus: true}
	return domain.NewOrder("123456789012", cart.TotalCents(0), cart, time.Now())
}

func TestGateway_BuildForm(t *testing.T) {
	gw, err := NewGateway(testConfig())
	require.NoError(t, err)

	form, err := gw.BuildForm(testOrder())
	require.NoError(t, err)
	assert.Equal(t, "https://sis-t.redsys.es:25443/sis/realizarPago", form.URL)
	assert.Equal(t, SignatureVersion, form.Params["Ds_SignatureVersion"])

	raw, err := base64.StdEncoding.DecodeString(form.Params["Ds_MerchantParameters"])
	require.NoError(t, err)
	var params map[string]string
	require.NoError(t, json.Unmarshal(raw, &params))
	assert.Equal(t, "9200", params["DS_MERCHANT_AMOUNT"])
	assert.Equal(t, "123456789012", params["DS_MERCHANT_ORDER"])
	assert.Equal(t, "999008881", params["DS_MERCHANT_MERCHANTCODE"])
	assert.Equal(t, "978", params["DS_MERCHANT_CURRENCY"])
	assert.Equal(t, "0", params["DS_MERCHANT_TRANSACTIONTYPE"])
	assert.Equal(t, "https://gala.example.com/api/payment/webhook", params["DS_MERCHANT_MERCHANTURL"])
	assert.Equal(t, "https://gala.example.com/#/ticket?order=123456789012", params["DS_MERCHANT_URLOK"])

	var cart domain.Cart
	require.NoError(t, json.Unmarshal([]byte(params["DS_MERCHANT_MERCHANTDATA"]), &cart))
	assert.Equal(t, "Ana", cart.GuestName)
}

// The signature must match an independent computation of the documented algorithm.
func TestGateway_SignatureMatchesReferenceAlgorithm(t *testing.T) {
	gw, err := NewGateway(testConfig())
	require.NoError(t, err)
	form, err := gw.BuildForm(testOrder())
	require.NoError(t, err)

	key, err := base64.StdEncoding.DecodeString(sandboxSecret)
	require.NoError(t, err)
	block, err := des.NewTripleDESCipher(key)
	require.NoError(t, err)
	plain := []byte("123456789012\x00\x00\x00\x00")
	orderKey := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, make([]byte, 8)).CryptBlocks(orderKey, plain)
	mac := hmac.New(sha256.New, orderKey)
	mac.Write([]byte(form.Params["Ds_MerchantParameters"]))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, form.Params["Ds_Signature"])
}

func TestGateway_VerifyNotification(t *testing.T) {
	gw, err := NewGateway(testConfig())
	require.NoError(t, err)
	s, err := newSigner(sandboxSecret)
	require.NoError(t, err)

	notify := func(params map[string]string) (string, string) {
		encoded, err := encodeParams(params)
		require.NoError(t, err)
		return encoded, s.sign(params["Ds_Order"], encoded)
	}

	t.Run("authorized notification", func(t *testing.T) {
		p, sig := notify(map[string]string{"Ds_Order": "123456789012", "Ds_Response": "0000"})
		n, err := gw.VerifyNotification(p, sig)
		require.NoError(t, err)
		assert.Equal(t, "123456789012", n.OrderID)
		require.NotNil(t, n.ResponseCode)
		assert.True(t, n.Authorized())
	})

	t.Run("denied notification", func(t *testing.T) {
		p, sig := notify(map[string]string{"Ds_Order": "123456789012", "Ds_Response": "0190"})
		n, err := gw.VerifyNotification(p, sig)
		require.NoError(t, err)
		assert.False(t, n.Authorized())
	})

	t.Run("url-safe signature accepted", func(t *testing.T) {
		p, sig := notify(map[string]string{"Ds_Order": "123456789012"})
		urlSafe := strings.TrimRight(strings.NewReplacer("+", "-", "/", "_").Replace(sig), "=")
		n, err := gw.VerifyNotification(p, urlSafe)
		require.NoError(t, err)
		assert.Nil(t, n.ResponseCode)
		assert.True(t, n.Authorized())
	})

	t.Run("own form round trip", func(t *testing.T) {
		form, err := gw.BuildForm(testOrder())
		require.NoError(t, err)
		n, err := gw.VerifyNotification(form.Params["Ds_MerchantParameters"], form.Params["Ds_Signature"])
		require.NoError(t, err)
		assert.Equal(t, "123456789012", n.OrderID)
	})

	t.Run("tampered parameters rejected", func(t *testing.T) {
		_, sig := notify(map[string]string{"Ds_Order": "123456789012", "Ds_Response": "0000"})
		forged, _ := notify(map[string]string{"Ds_Order": "123456789012", "Ds_Response": "0000", "Ds_Amount": "1"})
		_, err := gw.VerifyNotification(forged, sig)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("missing order id", func(t *testing.T) {
		encoded, err := encodeParams(map[string]string{"Ds_Response": "0000"})
		require.NoError(t, err)
		_, err = gw.VerifyNotification(encoded, "sig")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("garbage payload", func(t *testing.T) {
		_, err := gw.VerifyNotification("%%%", "sig")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty signature", func(t *testing.T) {
		_, err := gw.VerifyNotification("e30=", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestNewGateway_Secrets(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	gw, err := NewGateway(cfg)
	require.NoError(t, err)
	_, err = gw.BuildForm(testOrder())
	assert.ErrorIs(t, err, domain.ErrPaymentGatewayDisabled)
	_, err = gw.VerifyNotification("e30=", "x")
	assert.ErrorIs(t, err, domain.ErrPaymentGatewayDisabled)

	cfg.Secret = "not base64!"
	_, err = NewGateway(cfg)
	assert.Error(t, err)

	cfg.Secret = base64.StdEncoding.EncodeToString([]byte("short"))
	_, err = NewGateway(cfg)
	assert.Error(t, err)
}

func TestOrderIDGenerator(t *testing.T) {
	g := &orderIDGenerator{now: func() time.Time { return time.Unix(1_700_001_234, 0) }}
	id, err := g.NewOrderID()
	require.NoError(t, err)
	assert.Len(t, id, orderIDLength)
	assert.True(t, strings.HasPrefix(id, "1234"))
	assert.Regexp(t, `^\d{12}$`, id)
}
