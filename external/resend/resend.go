package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"GameReviewAPI/internal/model"
)

type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key not set")
	}

	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendReportNotification mails admins about a newly filed content report.
func (m *ResendMailer) SendReportNotification(
	ctx context.Context,
	toEmail string,
	report *model.Report,
) error {
	target := "a review"
	targetID := ""
	if report.ReviewID != nil {
		targetID = *report.ReviewID
	}
	if report.CommentID != nil {
		target = "a comment"
		targetID = *report.CommentID
	}

	body := sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: "New content report",
		HTML: `
			<p>A user reported ` + target + ` (id ` + targetID + `).</p>
			<p>Reason: ` + report.Reason + `</p>
			<p>Report id: ` + report.ID + `</p>
		`,
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New(
			"failed to send report notification: " + buf.String(),
		)
	}

	return nil
}
