package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Templates renders the transactional mails. All three share the same shell
// so the markup stays consistent across flows.
type Templates struct {
	productName string
}

func NewTemplates(productName string) *Templates {
	return &Templates{productName: productName}
}

const mailShell = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #28214c; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .button { display: inline-block; padding: 12px 24px; background: #28214c; color: white; text-decoration: none; border-radius: 4px; }
        .detail { background: white; padding: 15px; border-left: 4px solid #28214c; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
        </div>
        <div class="content">
            <p>{{.Intro}}</p>
            {{if .ActionURL}}
            <p>{{.Instructions}}</p>
            <p><a class="button" href="{{.ActionURL}}">{{.ActionText}}</a></p>
            {{end}}
            {{if .Detail}}
            <div class="detail">{{.Detail}}</div>
            {{end}}
            <p>{{.Outro}}</p>
        </div>
        <div class="footer">
            <p>{{.Footer}}</p>
        </div>
    </div>
</body>
</html>`

var shellTmpl = template.Must(template.New("mail").Parse(mailShell))

type mailData struct {
	Title        string
	Intro        string
	Instructions string
	ActionURL    string
	ActionText   string
	Detail       template.HTML
	Outro        string
	Footer       string
}

func (t *Templates) render(data mailData) (string, error) {
	var body bytes.Buffer
	if err := shellTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// ActivateAccount renders the account-activation mail. The link expires in
// 15 minutes; the copy says so.
func (t *Templates) ActivateAccount(email, activationURL string) (string, error) {
	return t.render(mailData{
		Title:        fmt.Sprintf("Activate your %s account", t.productName),
		Intro:        fmt.Sprintf("You just signed up for a new %s account with the username: %s.", t.productName, email),
		Instructions: "To finish creating your account, click on the link below within the next 15 minutes.",
		ActionURL:    activationURL,
		ActionText:   "Activate Account",
		Outro:        fmt.Sprintf("Having troubles? Copy this link into your browser instead: %s", activationURL),
		Footer:       fmt.Sprintf("This email was sent by %s.", t.productName),
	})
}

// ReactivateAccount is sent when activation is requested again for an
// existing unverified account.
func (t *Templates) ReactivateAccount(email, activationURL string) (string, error) {
	return t.render(mailData{
		Title:        fmt.Sprintf("Reactivate your %s account", t.productName),
		Intro:        fmt.Sprintf("We noticed your %s account for username %s is currently inactive.", t.productName, email),
		Instructions: "To reactivate your account, click on the button below within the next 15 minutes.",
		ActionURL:    activationURL,
		ActionText:   "Reactivate Account",
		Outro:        fmt.Sprintf("Having troubles? Copy this link into your browser instead: %s", activationURL),
		Footer:       fmt.Sprintf("This email was sent by %s.", t.productName),
	})
}

// ForgotPassword renders the password-reset mail. The link expires in 30
// minutes.
func (t *Templates) ForgotPassword(email, resetURL string) (string, error) {
	return t.render(mailData{
		Title:        fmt.Sprintf("Hello, %s.", email),
		Intro:        "Someone has requested a link to change your password.",
		Instructions: "To reset your password, click the button below within the next 30 minutes. If you ignore this message, your password will not be changed.",
		ActionURL:    resetURL,
		ActionText:   "Reset Password",
		Outro:        fmt.Sprintf("Having troubles? Copy this link into your browser instead: %s", resetURL),
		Footer:       fmt.Sprintf("This email was sent by %s.", t.productName),
	})
}

// PasswordUpdated confirms a completed password change, with the request
// origin for the user's records.
func (t *Templates) PasswordUpdated(email, ip, timestamp string) (string, error) {
	return t.render(mailData{
		Title:  fmt.Sprintf("Hi, %s.", email),
		Intro:  fmt.Sprintf("Your %s account password has been successfully updated.", t.productName),
		Detail: template.HTML(fmt.Sprintf("IP: %s<br>Timestamp: %s", template.HTMLEscapeString(ip), template.HTMLEscapeString(timestamp))),
		Outro:  "If you did not make this change or need further assistance, please contact our support team.",
		Footer: fmt.Sprintf("This email was sent by %s.", t.productName),
	})
}
