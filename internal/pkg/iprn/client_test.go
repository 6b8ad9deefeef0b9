package iprn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retouchhive/office-backend/internal/config"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"standard pattern", "Your verification code is n/48215 valid for 10 minutes", "48215"},
		{"pattern at start", "n/00731", "00731"},
		{"no pattern falls back to trimmed text", "  use code 9912  ", "use code 9912"},
		{"four digits do not match, fallback", "code n/1234 expired", "code n/1234 expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.message))
		})
	}
}

func newTestClient(t *testing.T, pages map[string][]smsRecord) *Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sms", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, strconv.Itoa(pageSize), r.URL.Query().Get("limit"))

		page := r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(smsPage{Data: pages[page]})
	}))
	t.Cleanup(srv.Close)

	return NewClient(config.IPRNConfig{BaseURL: srv.URL, APIKey: "test-key"})
}

func fullPage(filler string) []smsRecord {
	records := make([]smsRecord, pageSize)
	for i := range records {
		records[i] = smsRecord{Number: filler, Message: "irrelevant"}
	}
	return records
}

func TestFetchOTP_FirstPageMatch(t *testing.T) {
	client := newTestClient(t, map[string][]smsRecord{
		"1": {
			{Number: "8801700000001", Message: "noise"},
			{Number: "+880 17-55512345", Message: "Your code n/83920"},
		},
	})

	code, err := client.FetchOTP(context.Background(), "8801755512345")
	require.NoError(t, err)
	assert.Equal(t, "83920", code)
}

func TestFetchOTP_SecondPageMatch(t *testing.T) {
	pages := map[string][]smsRecord{
		"1": fullPage("8801700000001"),
		"2": {{Number: "8801755512345", Message: "login n/11111 now"}},
	}

	client := newTestClient(t, pages)

	code, err := client.FetchOTP(context.Background(), "01755512345")
	require.NoError(t, err)
	assert.Equal(t, "11111", code)
}

func TestFetchOTP_NotFound(t *testing.T) {
	client := newTestClient(t, map[string][]smsRecord{
		"1": {{Number: "8801700000001", Message: "n/55555"}},
	})

	_, err := client.FetchOTP(context.Background(), "8801799999999")
	assert.True(t, errors.Is(err, ErrOTPNotFound))
}

func TestFetchOTP_FallbackMessage(t *testing.T) {
	client := newTestClient(t, map[string][]smsRecord{
		"1": {{Number: "8801755512345", Message: "  your pin is 4488  "}},
	})

	code, err := client.FetchOTP(context.Background(), "8801755512345")
	require.NoError(t, err)
	assert.Equal(t, "your pin is 4488", code)
}

func TestFetchOTP_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(config.IPRNConfig{BaseURL: srv.URL, APIKey: "test-key"})

	_, err := client.FetchOTP(context.Background(), "8801755512345")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrOTPNotFound))
}
