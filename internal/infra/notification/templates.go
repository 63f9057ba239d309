package notification

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"

	"catalog/internal/errors"
)

const (
	verificationSubject = "Verify your account"
	resetSubject        = "Recover your password"
)

var (
	verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Hello,</p>
<p>Your verification code is <strong>{{.Code}}</strong>. It expires in 5 minutes.</p>
<p><a href="{{.Link}}">Click here to verify your account</a></p>
</body>
</html>`))

	resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Hello,</p>
<p>Your password reset code is <strong>{{.Code}}</strong>. It expires in 5 minutes.</p>
<p><a href="{{.Link}}">Click here to choose a new password</a></p>
<p>If you did not request a password reset you can ignore this email.</p>
</body>
</html>`))
)

type mailView struct {
	Code string
	Link string
}

// otpLink builds <baseURL><path>?email=<email>&token=<code>.
func otpLink(baseURL, path, email, code string) string {
	query := url.Values{}
	query.Set("email", email)
	query.Set("token", code)

	return strings.TrimRight(baseURL, "/") + path + "?" + query.Encode()
}

func render(tmpl *template.Template, view mailView) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", errors.Wrapf(err, "failed to render %s mail", tmpl.Name())
	}

	return buf.String(), nil
}
