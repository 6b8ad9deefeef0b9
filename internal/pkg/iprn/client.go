package iprn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/retouchhive/office-backend/internal/config"
)

// ErrOTPNotFound is returned when no SMS record matches the number
// after both pages are exhausted.
var ErrOTPNotFound = errors.New("otp not found for number")

const (
	maxPages = 2
	pageSize = 12
	// lookbackDays bounds the SMS search to a rolling window; the
	// upstream API rejects unbounded date ranges.
	lookbackDays = 8
)

var otpPattern = regexp.MustCompile(`n/(\d{5})`)

// Client queries the IPRN SMS-lookup API for one-time codes delivered
// to rented numbers. Stateless; each lookup is a fresh paginated scan.
type Client struct {
	cfg        config.IPRNConfig
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg config.IPRNConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
}

type smsRecord struct {
	Number  string `json:"number"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

type smsPage struct {
	Data []smsRecord `json:"data"`
}

// FetchOTP scans up to two pages of recent SMS records for the given
// phone number and returns the extracted code. When the message does
// not contain a recognizable code, the trimmed message text itself is
// returned so the caller can still show something useful.
func (c *Client) FetchOTP(ctx context.Context, number string) (string, error) {
	want := normalizeNumber(number)
	if want == "" {
		return "", ErrOTPNotFound
	}

	to := c.now()
	from := to.AddDate(0, 0, -lookbackDays)

	for page := 1; page <= maxPages; page++ {
		records, err := c.fetchPage(ctx, page, from, to)
		if err != nil {
			return "", err
		}

		for _, rec := range records {
			if !strings.Contains(normalizeNumber(rec.Number), want) {
				continue
			}
			if code := ExtractCode(rec.Message); code != "" {
				return code, nil
			}
		}

		// A short page means the window is exhausted.
		if len(records) < pageSize {
			break
		}
	}

	return "", ErrOTPNotFound
}

func (c *Client) fetchPage(ctx context.Context, page int, from, to time.Time) ([]smsRecord, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("date_from", from.Format("2006-01-02"))
	q.Set("date_to", to.Format("2006-01-02"))

	endpoint := fmt.Sprintf("%s/sms?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build iprn request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("iprn request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("iprn API returned status %d", resp.StatusCode)
	}

	var body smsPage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode iprn response: %w", err)
	}
	return body.Data, nil
}

// ExtractCode pulls the 5-digit code out of an SMS message. Messages
// without the expected pattern yield their trimmed text instead.
func ExtractCode(message string) string {
	if m := otpPattern.FindStringSubmatch(message); len(m) == 2 {
		return m[1]
	}
	return strings.TrimSpace(message)
}

// normalizeNumber strips everything but digits so "+880 17..." and
// "88017..." compare equal.
func normalizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
