package mailbox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emersion/go-imap"
	"github.com/stretchr/testify/require"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/config"
)

func message(t *testing.T, raw string) (*imap.Message, *imap.BodySectionName) {
	t.Helper()

	section := &imap.BodySectionName{Peek: true}

	msg := imap.NewMessage(7, []imap.FetchItem{imap.FetchUid})
	msg.Uid = 42
	msg.Envelope = &imap.Envelope{Subject: "Novo contrato"}
	msg.Body[&imap.BodySectionName{}] = bytes.NewBufferString(strings.ReplaceAll(raw, "\n", "\r\n"))

	return msg, section
}

func TestReadMessage_PrefersPlainText(t *testing.T) {
	t.Parallel()

	raw := `From: contratos@setuptecnologia.com
To: comercial@example.com
Subject: Novo contrato
MIME-Version: 1.0
Content-Type: multipart/alternative; boundary="b1"

--b1
Content-Type: text/html; charset=utf-8

<p><b>Contrato:</b> CT-1 <br /></p>
--b1
Content-Type: text/plain; charset=iso-8859-1
Content-Transfer-Encoding: quoted-printable

<b>Raz=E3o Social:</b> Alfa <br />
--b1--
`

	msg, section := message(t, raw)

	e, err := readMessage(msg, section)
	require.NoError(t, err)
	require.Equal(t, uint32(42), e.UID)
	require.Equal(t, "Novo contrato", e.Subject)
	require.False(t, e.HTML)
	require.Contains(t, e.Body, "<b>Razão Social:</b> Alfa <br />")
}

func TestReadMessage_FallsBackToHTML(t *testing.T) {
	t.Parallel()

	raw := `From: contratos@setuptecnologia.com
Subject: Novo contrato
MIME-Version: 1.0
Content-Type: text/html; charset=utf-8

<b>Contrato:</b> CT-1 <br />
`

	msg, section := message(t, raw)

	e, err := readMessage(msg, section)
	require.NoError(t, err)
	require.True(t, e.HTML)
	require.Contains(t, e.Body, "<b>Contrato:</b> CT-1 <br />")
}

func TestReadMessage_NoBody(t *testing.T) {
	t.Parallel()

	msg := imap.NewMessage(1, nil)

	_, err := readMessage(msg, &imap.BodySectionName{Peek: true})
	require.Error(t, err)
}

func TestClient_Addr(t *testing.T) {
	t.Parallel()

	require.Equal(t, "imap.example.com:993", New(config.Mailbox{Server: "imap.example.com"}).addr())
	require.Equal(t, "imap.example.com:143", New(config.Mailbox{Server: "imap.example.com:143"}).addr())
}
