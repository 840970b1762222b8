package tui

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"todo-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeError
)

func (l noticeLevel) String() string {
	switch l {
	case noticeSuccess:
		return "success"
	case noticeError:
		return "error"
	default:
		return "info"
	}
}

type notice struct {
	level noticeLevel
	text  string
}

// notify replaces the current notice. A positive ttl schedules its dismissal;
// a newer notice outlives older timers via the sequence number.
func (m *appModel) notify(level noticeLevel, text string, ttl time.Duration) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.notice = &notice{level: level, text: text}
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg { return noticeDoneMsg{seq: seq} })
}

func (m *appModel) notifyErr(prefix string, err error, ttl time.Duration) tea.Cmd {
	text := prefix
	if d := errorDetail(err); d != "" {
		text += ": " + d
	}
	return m.notify(noticeError, text, ttl)
}

// errorDetail returns a short human-readable reason for err. Service errors
// are usually {"message": "..."} bodies; the message is preferred when present.
func errorDetail(err error) string {
	if err == nil {
		return ""
	}
	var rerr *api.RequestError
	if errors.As(err, &rerr) {
		if rerr.Detail == "" {
			if rerr.Status == 0 {
				return "service unreachable"
			}
			if rerr.Err != nil {
				return firstLine(rerr.Err.Error())
			}
			return ""
		}
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal([]byte(rerr.Detail), &body) == nil && strings.TrimSpace(body.Message) != "" {
			return strings.TrimSpace(body.Message)
		}
		return firstLine(rerr.Detail)
	}
	return firstLine(err.Error())
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:119] + "…"
	}
	return s
}
