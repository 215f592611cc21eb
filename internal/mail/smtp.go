package mail

import (
	"bytes"
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

// SMTPConfig holds the SMTP transport settings
type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	TLS           string
	Timeout       time.Duration
	RatePerSecond float64
}

// SMTPDialer opens SMTP sessions. All sessions share one outbound rate limit.
type SMTPDialer struct {
	cfg     SMTPConfig
	limiter *rate.Limiter
}

// NewSMTPDialer creates a dialer for cfg. A non-positive rate disables limiting.
func NewSMTPDialer(cfg SMTPConfig) *SMTPDialer {
	limit := rate.Inf
	burst := 1
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
		burst = max(1, int(cfg.RatePerSecond))
	}
	return &SMTPDialer{
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func tlsPolicy(name string) gomail.TLSPolicy {
	switch name {
	case "none":
		return gomail.NoTLS
	case "mandatory":
		return gomail.TLSMandatory
	default:
		return gomail.TLSOpportunistic
	}
}

// Dial connects and authenticates against the SMTP server
func (d *SMTPDialer) Dial(ctx context.Context) (Session, error) {
	opts := []gomail.Option{
		gomail.WithPort(d.cfg.Port),
		gomail.WithTLSPolicy(tlsPolicy(d.cfg.TLS)),
	}
	if d.cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(d.cfg.Timeout))
	}
	if d.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(d.cfg.Username),
			gomail.WithPassword(d.cfg.Password),
		)
	}

	client, err := gomail.NewClient(d.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("connect to %s:%d: %w", d.cfg.Host, d.cfg.Port, err)
	}
	return &smtpSession{client: client, from: d.cfg.From, limiter: d.limiter}, nil
}

type smtpSession struct {
	client  *gomail.Client
	from    string
	limiter *rate.Limiter
}

// Send waits for the shared rate limit, then delivers msg over the open
// connection. The connection's own timeout bounds the exchange.
func (s *smtpSession) Send(ctx context.Context, msg *Message) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	m, err := buildMsg(s.from, msg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.client.Send(m); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}

func (s *smtpSession) Close() error {
	return s.client.Close()
}

func buildMsg(from string, msg *Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)
	}
	for _, a := range msg.Attachments {
		err := m.AttachReader(a.Filename, bytes.NewReader(a.Data),
			gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
		if err != nil {
			return nil, fmt.Errorf("attach %s: %w", a.Filename, err)
		}
	}
	return m, nil
}
