// internal/tools/email/sender.go
package email

import (
	"context"
	"fmt"
	"net/smtp"

	"trip-planner/internal/common/logger"
	"trip-planner/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the slice of the SES API the sender uses. Defined locally so
// tests can mock it.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Sender delivers itinerary emails. Send never returns an error for delivery
// failures; the outcome is reported in the response status.
type Sender interface {
	Send(ctx context.Context, input *models.SendEmailInput) models.TravelEmailResponse
}

// Config holds delivery settings. Provider selects "ses" or "smtp".
type Config struct {
	Provider  string
	FromEmail string

	AWSRegion string

	SMTPHost     string
	SMTPPort     int
	SMTPAddress  string
	SMTPPassword string
}

type sender struct {
	config    *Config
	sesClient SESService
	logger    logger.Logger
}

// NewSender creates an email sender. The SES client is only initialized when
// the provider is "ses".
func NewSender(ctx context.Context, config *Config, log logger.Logger) (Sender, error) {
	s := &sender{
		config: config,
		logger: log.WithFields(map[string]interface{}{
			"component": "email-sender",
		}),
	}

	if config.Provider == "ses" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		s.sesClient = ses.NewFromConfig(awsCfg)
	}

	return s, nil
}

// NewSenderWithSES creates a sender around an existing SES client.
func NewSenderWithSES(config *Config, sesClient SESService, log logger.Logger) Sender {
	return &sender{
		config:    config,
		sesClient: sesClient,
		logger: log.WithFields(map[string]interface{}{
			"component": "email-sender",
		}),
	}
}

func (s *sender) Send(ctx context.Context, input *models.SendEmailInput) models.TravelEmailResponse {
	resp := models.TravelEmailResponse{
		Status:  models.EmailStatusPending,
		Subject: input.Subject,
		Body:    input.Body,
	}

	var err error
	switch s.config.Provider {
	case "smtp":
		err = s.sendSMTP(input)
	default:
		err = s.sendSES(ctx, input)
	}

	if err != nil {
		s.logger.Error("email send failed", map[string]interface{}{
			"recipient": input.Recipient,
			"error":     err.Error(),
		})
		resp.Status = models.EmailStatusFailed
		resp.Message = err.Error()
		return resp
	}

	s.logger.Info("itinerary email sent", map[string]interface{}{
		"recipient": input.Recipient,
	})
	resp.Status = models.EmailStatusSent
	return resp
}

func (s *sender) sendSES(ctx context.Context, input *models.SendEmailInput) error {
	if s.sesClient == nil {
		return fmt.Errorf("SES client not configured")
	}
	_, err := s.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{input.Recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(input.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(input.Body)},
				Html: &types.Content{Data: aws.String(input.Body)},
			},
		},
		Source: aws.String(s.config.FromEmail),
	})
	return err
}

func (s *sender) sendSMTP(input *models.SendEmailInput) error {
	if s.config.SMTPAddress == "" || s.config.SMTPPassword == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	from := s.config.FromEmail
	if from == "" {
		from = s.config.SMTPAddress
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		from, input.Recipient, input.Subject, input.Body)

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPAddress, s.config.SMTPPassword, s.config.SMTPHost)
	return smtp.SendMail(addr, auth, from, []string{input.Recipient}, []byte(msg))
}
