package redsys

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"galaticketing/internal/domain"
)

// SignatureVersion is the only algorithm the gateway accepts.
const SignatureVersion = "HMAC_SHA256_V1"

// signer implements the gateway's HMAC_SHA256_V1 scheme: the per-order key is the order id
// encrypted with 3DES-CBC (zero IV, zero padding) under the merchant secret, and the signature
// is HMAC-SHA256 of the base64 merchant parameters under that key.
type signer struct {
	block cipher.Block
}

func newSigner(secret string) (*signer, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("decode merchant secret: %w", err)
	}
	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return nil, fmt.Errorf("merchant secret: %w", err)
	}
	return &signer{block: block}, nil
}

func (s *signer) orderKey(orderID string) []byte {
	data := []byte(orderID)
	if rem := len(data) % des.BlockSize; rem != 0 || len(data) == 0 {
		data = append(data, bytes.Repeat([]byte{0}, des.BlockSize-rem)...)
	}
	out := make([]byte, len(data))
	iv := make([]byte, des.BlockSize)
	cipher.NewCBCEncrypter(s.block, iv).CryptBlocks(out, data)
	return out
}

// sign returns base64(HMAC-SHA256(merchantParams, orderKey(orderID))).
func (s *signer) sign(orderID, merchantParams string) string {
	mac := hmac.New(sha256.New, s.orderKey(orderID))
	mac.Write([]byte(merchantParams))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// encodeParams serialises the merchant parameters as base64(JSON).
func encodeParams(params map[string]string) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode merchant parameters: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// decodeParams accepts both standard and URL-safe base64, with or without padding.
func decodeParams(merchantParams string) (map[string]any, error) {
	raw, err := decodeBase64(merchantParams)
	if err != nil {
		return nil, fmt.Errorf("%w: merchant parameters are not base64", domain.ErrInvalidInput)
	}
	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("%w: merchant parameters are not JSON", domain.ErrInvalidInput)
	}
	return params, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("invalid base64")
}

// normalizeSignature maps URL-safe base64 to standard base64 with padding.
func normalizeSignature(sig string) string {
	sig = strings.TrimSpace(sig)
	sig = strings.NewReplacer("-", "+", "_", "/").Replace(sig)
	if rem := len(sig) % 4; rem != 0 {
		sig += strings.Repeat("=", 4-rem)
	}
	return sig
}

// lookup reads a parameter case-insensitively; notifications use Ds_Order while requests use DS_MERCHANT_ORDER.
func lookup(params map[string]any, keys ...string) (string, bool) {
	for _, want := range keys {
		for k, v := range params {
			if !strings.EqualFold(k, want) {
				continue
			}
			switch val := v.(type) {
			case string:
				return val, true
			case float64:
				return strconv.FormatFloat(val, 'f', -1, 64), true
			}
		}
	}
	return "", false
}
