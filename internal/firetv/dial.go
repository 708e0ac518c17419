package firetv

import (
	"net"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// DefaultDialApp is the DIAL name of the remote companion app.
const DefaultDialApp = "FireTVRemote"

// LaunchApp starts an app through the DIAL endpoint on the secondary
// port. This is a different protocol than the remote API: plain http,
// no client token, and success is strictly HTTP 201. A non-201 answer
// is a false result, not an error.
func (s *Session) LaunchApp(appName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agent := fiber.AcquireAgent()
	// Bytes() puts the agent back into the pool itself unless reuse is
	// set; keep the deferred release the only one
	agent.Reuse()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.URI().SetScheme("http")
	req.URI().SetHost(net.JoinHostPort(s.host, strconv.Itoa(s.dialPort)))
	req.URI().SetPath("/apps/" + url.PathEscape(appName))
	req.Header.SetMethod(fiber.MethodPost)
	req.Header.SetContentType("text/plain")

	err := agent.Parse()
	if err != nil {
		return false, err
	}

	status, _, errs := agent.Bytes()
	if len(errs) != 0 {
		return false, errs[0]
	}

	return status == fiber.StatusCreated, nil
}
