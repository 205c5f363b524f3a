package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaticketing/internal/domain"
)

func TestDebugController_BypassPayment(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{name: "issues ticket", body: `{"type":"GUEST","graduate_id":"g1","guest_name":"Luis","base_price_cents":5000}`, wantStatus: http.StatusCreated},
		{name: "invalid cart", body: `{"type":"GUEST","graduate_id":"g1"}`, wantStatus: http.StatusBadRequest},
		{name: "unpaid inviter", body: `{"type":"GUEST","graduate_id":"g1","guest_name":"Luis","base_price_cents":5000}`, fakeErr: domain.ErrInvalidCode, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePaymentService{
				bypassTicket: &domain.Ticket{UUID: "t-1", OrderID: "TEST-12345678", Type: domain.TicketGuest, HasBar: true},
				bypassErr:    tt.fakeErr,
			}
			ctrl := NewDebugController(testLogger(), fake, &fakeEmailService{})
			req := httptest.NewRequest(http.MethodPost, "http://test/api/debug/bypass-payment", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.BypassPayment(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusCreated {
				return
			}
			data, apiErr := decodeEnvelope(t, rr)
			require.Nil(t, apiErr)
			var got domain.Ticket
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, "TEST-12345678", got.OrderID)
			assert.Equal(t, "Luis", fake.lastCart.GuestName)
		})
	}
}

func TestDebugController_TestEmail(t *testing.T) {
	t.Run("sends", func(t *testing.T) {
		email := &fakeEmailService{}
		ctrl := NewDebugController(testLogger(), &fakePaymentService{}, email)
		req := httptest.NewRequest(http.MethodPost, "http://test/api/debug/test-email", bytes.NewBufferString(`{"email":" Ops@Example.com "}`))
		rr := httptest.NewRecorder()

		ctrl.TestEmail(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, email.lastTest)
		assert.Equal(t, "ops@example.com", email.lastTest.Email)
		data, _ := decodeEnvelope(t, rr)
		assert.JSONEq(t, `{"sent":true,"to":"ops@example.com"}`, string(data))
	})

	t.Run("invalid address", func(t *testing.T) {
		ctrl := NewDebugController(testLogger(), &fakePaymentService{}, &fakeEmailService{})
		req := httptest.NewRequest(http.MethodPost, "http://test/api/debug/test-email", bytes.NewBufferString(`{"email":"nope"}`))
		rr := httptest.NewRecorder()

		ctrl.TestEmail(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("mailer failure", func(t *testing.T) {
		ctrl := NewDebugController(testLogger(), &fakePaymentService{}, &fakeEmailService{err: assert.AnError})
		req := httptest.NewRequest(http.MethodPost, "http://test/api/debug/test-email", bytes.NewBufferString(`{"email":"ops@example.com"}`))
		rr := httptest.NewRecorder()

		ctrl.TestEmail(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
