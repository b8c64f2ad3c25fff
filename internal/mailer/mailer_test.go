package mailer

import (
	"context"
	"errors"
	"testing"

	"rental-management-backend/internal/config"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/suite"
)

type fakeClient struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status, Body: "body"}, nil
}

type MailerTestSuite struct {
	suite.Suite
	client *fakeClient
	mailer *SendGridMailer
}

func (suite *MailerTestSuite) SetupTest() {
	suite.client = &fakeClient{status: 202}
	suite.mailer = &SendGridMailer{client: suite.client, fromName: "Rentals", fromEmail: "no-reply@example.com", sandbox: true}
}

func (suite *MailerTestSuite) TestSendBuildsMessage() {
	err := suite.mailer.Send(context.Background(), Message{ToEmail: "t@example.com", Subject: "Overdue", PlainText: "pay"})
	suite.Require().NoError(err)
	suite.Require().Len(suite.client.sent, 1)

	sent := suite.client.sent[0]
	suite.Equal("Overdue", sent.Subject)
	suite.Equal("no-reply@example.com", sent.From.Address)
	suite.Require().NotNil(sent.MailSettings)
	suite.True(*sent.MailSettings.SandboxMode.Enable)
}

func (suite *MailerTestSuite) TestSendReportsFailures() {
	suite.client.status = 400
	suite.Error(suite.mailer.Send(context.Background(), Message{ToEmail: "t@example.com"}))

	suite.client.err = errors.New("network down")
	suite.ErrorContains(suite.mailer.Send(context.Background(), Message{ToEmail: "t@example.com"}), "network down")
}

func (suite *MailerTestSuite) TestNewFallsBackToNoop() {
	m := New(&config.Config{})
	suite.False(m.Enabled())
	suite.NoError(m.Send(context.Background(), Message{}))

	m = New(&config.Config{SendGridAPIKey: "key"})
	suite.True(m.Enabled())
}

func TestMailerTestSuite(t *testing.T) {
	suite.Run(t, new(MailerTestSuite))
}
