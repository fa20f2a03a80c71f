package utils

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
	sesErr    error
)

func sesLazy() (*ses.Client, error) {
	sesOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			sesErr = err
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

// generic SES sender
func sendEmail(to, subject, body string) error {
	client, err := sesLazy()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(os.Getenv("SES_SENDER")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	return err
}

func SendWelcomeEmail(to, fullName string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to Forkful! Log your first meal to earn your First Bite stamp.\n",
		fullName)
	return sendEmail(to, "Welcome to Forkful", body)
}

func SendPasswordResetEmail(to, token string) error {
	body := fmt.Sprintf(
		"A password reset was requested for your Forkful account.\n\nReset code: %s\n\nIf this wasn't you, ignore this email.\n",
		token)
	return sendEmail(to, "Forkful password reset", body)
}
