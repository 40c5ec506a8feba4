package probe

import (
	"context"
	"crypto/tls"
	"net"
	"net/url"
	"strings"
	"time"
)

// CertInfo describes the leaf certificate of an https target.
type CertInfo struct {
	ExpiresAt time.Time
	Issuer    string
	DaysLeft  int
}

// Inspector extracts TLS certificate expiry for https monitors. It returns
// nil info for non-https targets and on connection failure; a probe cycle
// never fails because of cert inspection.
type Inspector interface {
	Inspect(ctx context.Context, rawURL string) (*CertInfo, error)
}

type inspector struct {
	timeout time.Duration
	now     func() time.Time
}

func (i *inspector) Inspect(ctx context.Context, rawURL string) (*CertInfo, error) {
	if !strings.HasPrefix(strings.ToLower(rawURL), "https://") {
		return nil, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return nil, err
	}
	port := u.Port()
	if port == "" {
		port = "443"
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: i.timeout},
		Config: &tls.Config{
			// expired or self-signed certs must still be inspectable
			InsecureSkipVerify: true,
			ServerName:         u.Hostname(),
		},
	}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(u.Hostname(), port))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, nil
	}
	leaf := state.PeerCertificates[0]
	daysLeft := int(leaf.NotAfter.Sub(i.now()).Hours() / 24)
	return &CertInfo{
		ExpiresAt: leaf.NotAfter,
		Issuer:    leaf.Issuer.CommonName,
		DaysLeft:  daysLeft,
	}, nil
}

func NewInspector(timeout time.Duration) Inspector {
	return &inspector{
		timeout: timeout,
		now:     time.Now,
	}
}
