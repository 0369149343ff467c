package cli

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secret_santa/internal/api"
	"secret_santa/internal/clock"
	"secret_santa/internal/db"
	"secret_santa/internal/games"
	"secret_santa/internal/store"
	"secret_santa/internal/wishlist"
)

type harness struct {
	server    *httptest.Server
	storePath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.OpenMemory()
	require.NoError(t, err)
	gw := store.New(conn)
	clk := clock.New()
	router := api.NewRouter(api.RouterConfig{
		Gateway:   gw,
		Wishlists: wishlist.NewService(gw, nil, time.Minute),
		Games:     games.NewService(gw, clk, nil, time.Minute),
		Clock:     clk,
		JWTSecret: "cli-test",
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &harness{server: srv, storePath: filepath.Join(t.TempDir(), "session.json")}
}

func (h *harness) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", h.server.URL, "--store", h.storePath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestLoginHostAndWishlistFlow(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")

	_, err = h.run("register", "-u", "alice", "-p", "password1")
	require.NoError(t, err)
	out, err = h.run("login", "-u", "alice", "-p", "password1")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as alice")

	out, err = h.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")

	out, err = h.run("host", "--name", "Office", "--start", day(1), "--end", day(8), "--max-players", "5")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Game Hosted!")

	out, err = h.run("games")
	require.NoError(t, err)
	assert.Contains(t, out, "Office")
	assert.Contains(t, out, day(1))

	out, err = h.run("wishlist", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Wishlist is empty")

	out, err = h.run("wishlist", "add", "--name", "Socks", "--link", "https://example.com/socks", "--game", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Wishlist created successfully.")

	out, err = h.run("wishlist", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Socks")

	out, err = h.run("logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")

	out, err = h.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

func TestHostRejectsInvalidDraftWithoutNetwork(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("register", "-u", "bob", "-p", "password1")
	require.NoError(t, err)
	_, err = h.run("login", "-u", "bob", "-p", "password1")
	require.NoError(t, err)

	out, err := h.run("host", "--name", "Office", "--start", day(0), "--end", day(3), "--max-players", "5")
	require.Error(t, err)
	assert.Contains(t, out, "Start date must be tomorrow or later")

	out, err = h.run("host", "--name", "Office")
	require.Error(t, err)
	assert.Contains(t, out, "Please fill in all required fields")
	assert.Contains(t, out, "Start Date is required")

	out, err = h.run("games")
	require.NoError(t, err)
	assert.Contains(t, out, "No hosted games")
}

func TestHostRequiresSession(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("host", "--name", "Office", "--start", day(1), "--end", day(2), "--max-players", "3")
	require.Error(t, err)
	assert.Contains(t, out, "User is not logged In")
}

func TestParseDate(t *testing.T) {
	iso, err := parseDate("2030-12-01")
	require.NoError(t, err)
	us, err := parseDate("12/01/2030")
	require.NoError(t, err)
	assert.True(t, iso.Equal(us))

	_, err = parseDate("tomorrow")
	assert.Error(t, err)
}
