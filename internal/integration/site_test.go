//go:build integration_test || all_tests

package integration

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/2beens/plainsite/internal/users"
	plainsitetesting "github.com/2beens/plainsite/pkg/testing"

	"github.com/brianvoe/gofakeit/v6"
)

func (s *IntegrationTestSuite) get(client *http.Client, path string) (int, string) {
	resp, err := client.Get(serverEndpoint + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (s *IntegrationTestSuite) postForm(client *http.Client, path string, form url.Values) (int, string) {
	resp, err := client.PostForm(serverEndpoint+path, form)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	client := s.newClient()
	name := gofakeit.Username() + strings.ToLower(gofakeit.LetterN(6))
	password := gofakeit.Password(true, true, true, false, false, 16)
	creds := url.Values{"name": {name}, "password": {password}}

	status, body := s.postForm(client, "/register", creds)
	s.Equal(http.StatusOK, status)
	s.Contains(body, "Registration successful")

	// the user landed in postgres, with a bcrypt hash instead of the password
	var passwordHash string
	err := s.DB.QueryRow(`SELECT password_hash FROM app_user WHERE name = $1`, name).Scan(&passwordHash)
	s.Require().NoError(err)
	s.NotEqual(password, passwordHash)
	s.True(strings.HasPrefix(passwordHash, "$2"))

	status, body = s.get(client, "/profile")
	s.Equal(http.StatusOK, status)
	s.Contains(body, "Welcome, "+name+"!")

	status, body = s.get(client, "/logout")
	s.Equal(http.StatusOK, status)
	s.Contains(body, "You have been logged out.")

	_, body = s.get(client, "/profile")
	s.Contains(body, `Please <a href="/login">log in</a>`)

	// a fresh browser can log in with the stored credentials
	other := s.newClient()
	_, body = s.postForm(other, "/login", creds)
	s.Contains(body, "Login successful")
	_, body = s.get(other, "/profile")
	s.Contains(body, "Welcome, "+name+"!")

	_, body = s.postForm(s.newClient(), "/register", creds)
	s.Contains(body, "Username already taken")
}

func (s *IntegrationTestSuite) TestLoginFailures() {
	client := s.newClient()

	_, body := s.postForm(client, "/login", url.Values{"name": {"nobody-" + gofakeit.LetterN(8)}, "password": {"x"}})
	s.Contains(body, "Login failed")

	status, _ := s.get(client, "/profile")
	s.Equal(http.StatusOK, status)
	s.Empty(client.Jar.Cookies(&url.URL{Scheme: "http", Host: serverHost}))
}

func (s *IntegrationTestSuite) TestNotFoundAndStatic() {
	client := s.newClient()

	status, body := s.get(client, "/nonexistent-route")
	s.Equal(http.StatusNotFound, status)
	s.Equal("Page not found", body)

	status, body = s.get(client, "/public/style.css")
	s.Equal(http.StatusOK, status)
	s.Equal("body {}", body)
}

func (s *IntegrationTestSuite) TestMetricsEndpoint() {
	status, _ := s.get(s.newClient(), "/metrics")
	s.Equal(http.StatusNotFound, status, "metrics must not be served on the site listener")

	resp, err := http.Get("http://" + serverHost + ":9001/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(raw), "plainsite_main_active_sessions")
	s.Contains(string(raw), "pgxpool_")
}

func (s *IntegrationTestSuite) TestRedisUserStore() {
	t := s.T()
	rdb := plainsitetesting.NewRedisClient(t, "localhost", s.redisPort, "")
	store := users.NewRedisStore(rdb)
	ctx := context.Background()
	name := gofakeit.Username() + gofakeit.LetterN(6)

	_, err := store.FindByName(ctx, name)
	s.ErrorIs(err, users.ErrUserNotFound)

	created, err := store.Insert(ctx, name, "hash-1")
	s.Require().NoError(err)
	s.True(created)

	created, err = store.Insert(ctx, name, "hash-2")
	s.Require().NoError(err)
	s.False(created)

	user, err := store.FindByName(ctx, name)
	s.Require().NoError(err)
	s.Equal(name, user.Name)
	s.Equal("hash-1", user.PasswordHash)
}
