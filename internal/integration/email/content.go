package email

import "fmt"

// PasswordResetContent builds the subject, HTML body and plain text body for a
// password reset email.
func PasswordResetContent(name, resetURL, expiresIn string) (subject, html, text string) {
	subject = "Reset your Time Tracker password"

	html = fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Password reset</h2>
  <p>Hi %s,</p>
  <p>We received a request to reset your Time Tracker password. Click the button below to choose a new one.</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background: #2563eb; color: #fff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Reset password</a>
  </p>
  <p>This link expires in %s. If you did not request a reset, you can safely ignore this email.</p>
</div>`, name, resetURL, expiresIn)

	text = fmt.Sprintf(`Hi %s,

We received a request to reset your Time Tracker password.
Open the link below to choose a new one:

%s

This link expires in %s. If you did not request a reset, you can safely ignore this email.
`, name, resetURL, expiresIn)

	return subject, html, text
}
