package models

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultScheme is applied to endpoint strings supplied without one.
	DefaultScheme = "lantern"

	// DefaultPort is assumed when an endpoint string omits the port.
	DefaultPort = 4450

	// DefaultURL is the fallback endpoint used when configuration yields no servers.
	DefaultURL = "lantern://localhost:4450"
)

// Endpoint represents one parsed broker address.
type Endpoint struct {
	Scheme string
	Host   string
	Port   int
}

// ParseEndpoint builds an Endpoint from a raw endpoint string, applying the
// default scheme, host and port where the string omits them.
func ParseEndpoint(raw string) (*Endpoint, error) {

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidEndpoint)
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = DefaultScheme + "://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}

	host := parsed.Hostname()
	if host == "" {
		host = "localhost"
	}

	port := DefaultPort
	if portString := parsed.Port(); portString != "" {
		port, err = strconv.Atoi(portString)
		if err != nil {
			return nil, fmt.Errorf("%w: bad port %q", ErrInvalidEndpoint, portString)
		}
	}

	return &Endpoint{
		Scheme: parsed.Scheme,
		Host:   host,
		Port:   port,
	}, nil
}

// Key returns the host:port form used for pool de-duplication.
func (e *Endpoint) Key() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// String returns the normalized scheme://host:port form.
func (e *Endpoint) String() string {
	return e.Scheme + "://" + e.Key()
}
