package notification

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smtpServer is a minimal local SMTP endpoint capturing one message.
type smtpServer struct {
	listener net.Listener
	mu       sync.Mutex
	data     string
	done     chan struct{}
}

func startSMTPServer(t *testing.T) *smtpServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &smtpServer{listener: listener, done: make(chan struct{})}
	go s.serve()
	t.Cleanup(func() { listener.Close() })
	return s
}

func (s *smtpServer) serve() {
	defer close(s.done)

	conn, err := s.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)
	write := func(line string) { conn.Write([]byte(line + "\r\n")) }

	write("220 localhost ESMTP ready")
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			write("250-localhost")
			write("250 8BITMIME")
		case strings.HasPrefix(cmd, "DATA"):
			write("354 go ahead")
			var body strings.Builder
			for {
				dataLine, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if strings.TrimRight(dataLine, "\r\n") == "." {
					break
				}
				body.WriteString(dataLine)
			}
			s.mu.Lock()
			s.data = body.String()
			s.mu.Unlock()
			write("250 2.0.0 ok")
		case strings.HasPrefix(cmd, "QUIT"):
			write("221 bye")
			return
		default:
			write("250 2.0.0 ok")
		}
	}
}

func (s *smtpServer) message(t *testing.T) string {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for SMTP session to finish")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func TestSMTPDeliverer_DeliversThroughLiveServer(t *testing.T) {
	server := startSMTPServer(t)
	port := server.listener.Addr().(*net.TCPAddr).Port

	deliverer, err := NewSMTPDeliverer(SMTPConfig{
		Host: "127.0.0.1",
		Port: port,
		From: "noreply@example.com",
	})
	require.NoError(t, err)

	err = deliverer.Deliver(context.Background(), "maria@example.com",
		"Your blood donation application has been approved", "<p>Hi Maria</p>")
	require.NoError(t, err)

	msg := server.message(t)
	assert.Contains(t, msg, "maria@example.com")
	assert.Contains(t, msg, "Your blood donation application has been approved")
}

func TestSMTPDeliverer_MissingRecipient(t *testing.T) {
	deliverer, err := NewSMTPDeliverer(SMTPConfig{
		Host: "127.0.0.1",
		Port: 2525,
		From: "noreply@example.com",
	})
	require.NoError(t, err)

	err = deliverer.Deliver(context.Background(), "", "subject", "<p>body</p>")
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}
