package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

func TestGraduateController_Check(t *testing.T) {
	code := "INV-ABC123"
	session := &domain.GraduateSession{
		Graduate:   &domain.Graduate{ID: "grad-1", DNI: "12345678Z", Name: "Ana", Paid: true, InvitationCode: &code, PasswordHash: "secret-hash", Salt: "salt"},
		Ticket:     &domain.Ticket{UUID: "t-1", Type: domain.TicketGraduate},
		GuestNames: []string{"Luis"},
	}

	tests := []struct {
		name         string
		body         string
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{name: "success", body: `{"dni":"12345678z","password":"ABCD2345"}`, wantStatus: http.StatusOK},
		{name: "missing password", body: `{"dni":"12345678z"}`, wantStatus: http.StatusBadRequest, wantBodyCode: helpers.ErrCodeBadRequest},
		{name: "unknown field", body: `{"dni":"1","password":"x","role":"admin"}`, wantStatus: http.StatusBadRequest, wantBodyCode: helpers.ErrCodeBadRequest},
		{name: "unknown dni", body: `{"dni":"1","password":"x"}`, fakeErr: fmt.Errorf("graduate 1: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantBodyCode: helpers.ErrCodeNotFound},
		{name: "wrong password", body: `{"dni":"1","password":"x"}`, fakeErr: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantBodyCode: helpers.ErrCodeUnauthorized},
		{name: "store failure", body: `{"dni":"1","password":"x"}`, fakeErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantBodyCode: helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGraduateService{session: session, authErr: tt.fakeErr}
			ctrl := NewGraduateController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/graduate/check", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Check(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantBodyCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantBodyCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, "12345678z", fake.lastDNI)
			assert.NotContains(t, string(data), "secret-hash")
			assert.NotContains(t, string(data), "salt")
			var got domain.GraduateSession
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, "grad-1", got.Graduate.ID)
			assert.Equal(t, "t-1", got.Ticket.UUID)
			assert.Equal(t, []string{"Luis"}, got.GuestNames)
		})
	}

	t.Run("internal errors are not leaked", func(t *testing.T) {
		fake := &fakeGraduateService{authErr: fmt.Errorf("pq: connection refused at 10.0.0.3")}
		ctrl := NewGraduateController(testLogger(), fake)
		req := httptest.NewRequest(http.MethodPost, "http://test/api/graduate/check", bytes.NewBufferString(`{"dni":"1","password":"x"}`))
		rr := httptest.NewRecorder()
		ctrl.Check(rr, req)
		assert.NotContains(t, rr.Body.String(), "10.0.0.3")
	})
}

func TestGraduateController_Guests(t *testing.T) {
	t.Run("returns names", func(t *testing.T) {
		ctrl := NewGraduateController(testLogger(), &fakeGraduateService{guestNames: []string{"Luis", "Marta"}})
		req := httptest.NewRequest(http.MethodGet, "http://test/api/graduate/grad-1/guests", nil)
		req.SetPathValue("id", "grad-1")
		rr := httptest.NewRecorder()

		ctrl.Guests(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		data, apiErr := decodeEnvelope(t, rr)
		require.Nil(t, apiErr)
		var names []string
		require.NoError(t, json.Unmarshal(data, &names))
		assert.Equal(t, []string{"Luis", "Marta"}, names)
	})

	t.Run("no guests is an empty list", func(t *testing.T) {
		ctrl := NewGraduateController(testLogger(), &fakeGraduateService{})
		req := httptest.NewRequest(http.MethodGet, "http://test/api/graduate/grad-1/guests", nil)
		req.SetPathValue("id", "grad-1")
		rr := httptest.NewRecorder()

		ctrl.Guests(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		data, _ := decodeEnvelope(t, rr)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("unknown graduate", func(t *testing.T) {
		ctrl := NewGraduateController(testLogger(), &fakeGraduateService{guestsErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "http://test/api/graduate/nope/guests", nil)
		req.SetPathValue("id", "nope")
		rr := httptest.NewRecorder()

		ctrl.Guests(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGraduateController_CheckCode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		check      *domain.InvitationCheck
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "valid code",
			body:       `{"code":"inv-abc123"}`,
			check:      &domain.InvitationCheck{Valid: true, GraduateID: "grad-1", Remaining: 2},
			wantStatus: http.StatusOK,
			wantJSON:   `{"valid":true,"graduate_id":"grad-1","remaining":2}`,
		},
		{
			name:       "exhausted code is still 200",
			body:       `{"code":"INV-ABC123"}`,
			check:      &domain.InvitationCheck{GraduateID: "grad-1", Error: domain.ErrInvitationExhausted.Error()},
			wantStatus: http.StatusOK,
			wantJSON:   `{"valid":false,"graduate_id":"grad-1","remaining":0,"error":"invitation limit reached"}`,
		},
		{
			name:       "empty code",
			body:       `{"code":"  "}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewGraduateController(testLogger(), &fakeGraduateService{check: tt.check})
			req := httptest.NewRequest(http.MethodPost, "http://test/api/guest/check-code", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CheckCode(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantJSON != "" {
				data, apiErr := decodeEnvelope(t, rr)
				require.Nil(t, apiErr)
				assert.JSONEq(t, tt.wantJSON, string(data))
			}
		})
	}
}

func TestGraduateController_List(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	fake := &fakeGraduateService{graduates: []*domain.Graduate{
		{ID: "g1", DNI: "1A", Name: "Ana", CreatedAt: now},
		{ID: "g2", DNI: "2B", Name: "Bruno", Paid: true, CreatedAt: now},
	}}
	ctrl := NewGraduateController(testLogger(), fake)
	rr := httptest.NewRecorder()

	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "http://test/api/admin/graduates", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	data, apiErr := decodeEnvelope(t, rr)
	require.Nil(t, apiErr)
	var got []*domain.Graduate
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
	assert.True(t, got[1].Paid)
}

func TestGraduateController_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{name: "created", body: `{"dni":"12345678z","name":"Ana","email":"ana@example.com","phone":"600000000"}`, wantStatus: http.StatusCreated},
		{name: "missing name", body: `{"dni":"12345678z"}`, wantStatus: http.StatusBadRequest, wantBodyCode: helpers.ErrCodeBadRequest},
		{name: "bad email", body: `{"dni":"1","name":"Ana","email":"nope"}`, wantStatus: http.StatusBadRequest, wantBodyCode: helpers.ErrCodeBadRequest},
		{name: "duplicate dni", body: `{"dni":"1","name":"Ana"}`, fakeErr: domain.ErrDuplicateDNI, wantStatus: http.StatusConflict, wantBodyCode: helpers.ErrCodeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGraduateService{
				registered:  &domain.Graduate{ID: "g1", DNI: "12345678Z", Name: "Ana"},
				password:    "ABCD2345",
				registerErr: tt.fakeErr,
			}
			ctrl := NewGraduateController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/admin/graduates", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantBodyCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantBodyCode, apiErr.Code)
				return
			}
			var got CreateGraduateResponse
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, "g1", got.Graduate.ID)
			assert.Equal(t, "ABCD2345", got.Password)
			assert.Equal(t, "600000000", fake.lastInput.Phone)
		})
	}
}

func TestGraduateController_Delete(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"already paid", domain.ErrGraduatePaid, http.StatusConflict},
		{"store failure", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGraduateService{deleteErr: tt.fakeErr}
			ctrl := NewGraduateController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/api/admin/graduates/g1", nil)
			req.SetPathValue("id", "g1")
			rr := httptest.NewRecorder()

			ctrl.Delete(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "g1", fake.deletedID)
		})
	}
}
