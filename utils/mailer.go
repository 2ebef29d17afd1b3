package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
)

func getSESClient() *ses.Client {
	sesOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			log.Printf("AWS config load failed, email disabled: %v", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient
}

// generic SES sender; silently no-ops when mail is not configured so the
// calling flow (plan approval etc.) never depends on SES being set up
func sendEmail(to string, subject string, body string) error {
	source := os.Getenv("SES_EMAIL")
	if source == "" || to == "" {
		return nil
	}
	client := getSESClient()
	if client == nil {
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(source),
	}

	_, err := client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendPlanApprovedEmail tells a patient their plan cleared review.
func SendPlanApprovedEmail(to string, firstName string) error {
	subject := "Your diet plan has been approved"
	body := fmt.Sprintf("Hi %s,\n\nYour dietitian has reviewed and approved your diet plan. It is now live in the app.\n", firstName)
	return sendEmail(to, subject, body)
}

// SendPlanSubmittedEmail notifies a reviewer inbox about a new submission.
func SendPlanSubmittedEmail(to string, planID uint) error {
	subject := "A diet plan is waiting for review"
	body := fmt.Sprintf("Diet plan #%d was submitted for review.\n", planID)
	return sendEmail(to, subject, body)
}
