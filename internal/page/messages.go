package page

import (
	"fmt"

	"github.com/2beens/plainsite/pkg"
)

const (
	msgLoginSuccessful        = "<p>Login successful.</p>"
	msgLoginFailed            = "<p>Login failed. Please check your name and password.</p>"
	msgRegistrationSuccessful = "<p>Registration successful.</p>"
	msgUsernameTaken          = "<p>Username already taken.</p>"
	msgCredentialsRequired    = "<p>Name and password are required.</p>"
	msgServerError            = "<p>Server error, please try again later.</p>"
	msgLoginPrompt            = `<p>Please <a href="/login">log in</a> to see your profile.</p>`
	msgLoggedOut              = "<p>You have been logged out.</p>"
)

func credentialsForm(title, action, submitLabel string) string {
	return fmt.Sprintf(`<h1>%s</h1>
<form method="POST" action="%s">
  <label>Name <input type="text" name="name" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">%s</button>
</form>`, pkg.EscapeHTML(title), pkg.EscapeHTML(action), pkg.EscapeHTML(submitLabel))
}
