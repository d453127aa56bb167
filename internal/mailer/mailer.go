package mailer

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"courseware/internal/models"
)

// SendgridNotifier emails certificates through SendGrid when a submission is
// approved. Sends are fire-and-forget: a delivery failure is logged and the
// recorded review decision stands.
type SendgridNotifier struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendgridNotifier(apiKey, fromName, fromEmail string) *SendgridNotifier {
	return &SendgridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromEmail),
	}
}

func (n *SendgridNotifier) NotifyCertified(user *models.User, course *models.Course, notes string) {
	subject := fmt.Sprintf("Your certificate for %s", course.Title)
	to := sgmail.NewEmail(user.DisplayName(), user.Email)

	plain := fmt.Sprintf(
		"Hi %s,\n\nYour capstone project for %s has been approved and you are now certified."+
			"\n\nReviewer notes: %s\n",
		user.FirstName, course.Title, notes,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your capstone project for <strong>%s</strong> has been approved and you are now certified.</p><p>Reviewer notes: %s</p>",
		user.FirstName, course.Title, notes,
	)

	message := sgmail.NewSingleEmail(n.from, subject, to, plain, html)

	go func() {
		resp, err := n.client.Send(message)
		if err != nil {
			glog.Warningf("error sending certificate email to %v: %v\n", user.Email, err)
			return
		}
		if resp.StatusCode >= 400 {
			glog.Warningf("certificate email to %v rejected: %v %v\n", user.Email, resp.StatusCode, resp.Body)
		}
	}()
}
