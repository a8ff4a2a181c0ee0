package mailbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	_ "github.com/emersion/go-message/charset" // legacy charsets in contract emails
	"github.com/emersion/go-message/mail"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/config"
)

const (
	defaultIMAPSPort = "993"
	commandTimeout   = 30 * time.Second
	fetchBuffer      = 10
)

// Client reads contract emails from an IMAP mailbox. Every fetch opens its own session.
type Client struct {
	cfg config.Mailbox
	l   *slog.Logger
}

func New(cfg config.Mailbox) *Client {
	return &Client{
		cfg: cfg,
		l:   slog.Default().With("client", "imap"),
	}
}

func (c *Client) addr() string {
	if _, _, err := net.SplitHostPort(c.cfg.Server); err == nil {
		return c.cfg.Server
	}

	return net.JoinHostPort(c.cfg.Server, defaultIMAPSPort)
}

// FetchContractEmails returns every message in the mailbox sent by the contracts platform.
func (c *Client) FetchContractEmails(ctx context.Context) ([]entity.ContractEmail, error) {
	imapClient, err := client.DialTLS(c.addr(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial imap: %w", err)
	}

	imapClient.Timeout = commandTimeout

	defer func() {
		if err := imapClient.Logout(); err != nil {
			c.l.Warn("imap logout", "error", err)
		}
	}()

	err = imapClient.Login(c.cfg.Email, c.cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	_, err = imapClient.Select(c.cfg.Mailbox, true)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", c.cfg.Mailbox, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("From", c.cfg.Sender)

	uids, err := imapClient.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("search messages from %s: %w", c.cfg.Sender, err)
	}

	c.l.InfoContext(ctx, "contract emails found", "count", len(uids))

	if len(uids) == 0 {
		return nil, nil
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uids...)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchUid, imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, fetchBuffer)
	done := make(chan error, 1)

	go func() {
		done <- imapClient.UidFetch(seqSet, items, messages)
	}()

	emails := make([]entity.ContractEmail, 0, len(uids))

	for msg := range messages {
		if ctx.Err() != nil {
			continue
		}

		e, err := readMessage(msg, section)
		if err != nil {
			c.l.WarnContext(ctx, "skip unreadable email", "uid", msg.Uid, "error", err)
			continue
		}

		emails = append(emails, e)
	}

	err = <-done
	if err != nil {
		return nil, fmt.Errorf("fetch messages: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return emails, nil
}

// readMessage extracts the body, preferring text/plain over text/html.
func readMessage(msg *imap.Message, section *imap.BodySectionName) (entity.ContractEmail, error) {
	r := msg.GetBody(section)
	if r == nil {
		return entity.ContractEmail{}, errors.New("server did not return a message body")
	}

	mr, err := mail.CreateReader(r)
	if err != nil {
		return entity.ContractEmail{}, fmt.Errorf("create mail reader: %w", err)
	}

	e := entity.ContractEmail{UID: msg.Uid}

	if msg.Envelope != nil {
		e.Subject = msg.Envelope.Subject
	}

	var plain, html string

	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return entity.ContractEmail{}, fmt.Errorf("next part: %w", err)
		}

		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		ct, _, err := h.ContentType()
		if err != nil {
			continue
		}

		b, err := io.ReadAll(p.Body)
		if err != nil {
			return entity.ContractEmail{}, fmt.Errorf("read %s part: %w", ct, err)
		}

		switch strings.ToLower(ct) {
		case "text/plain":
			if plain == "" {
				plain = string(b)
			}
		case "text/html":
			if html == "" {
				html = string(b)
			}
		}
	}

	switch {
	case plain != "":
		e.Body = plain
	case html != "":
		e.Body = html
		e.HTML = true
	default:
		return entity.ContractEmail{}, errors.New("no text part")
	}

	return e, nil
}
