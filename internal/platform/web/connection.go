package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/input"
	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/multiplayer"
	"github.com/vovakirdan/erika-arcade/internal/platform/tui"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 8
)

// clientMessage is a browser event.
type clientMessage struct {
	Type string `json:"type"` // down, up, resize
	Key  string `json:"key,omitempty"`
	Cols int    `json:"cols,omitempty"`
	Rows int    `json:"rows,omitempty"`
}

// serverMessage is pushed to the browser.
type serverMessage struct {
	Type string `json:"type"` // frame, exit
	HTML string `json:"html,omitempty"`
}

type submitted struct {
	gen    uint64
	result leaderboard.Result
}

// Connection runs one match for one browser. The match is only touched
// from the run loop; the read pump feeds the router and the resize channel.
type Connection struct {
	id     multiplayer.SessionID
	ws     *websocket.Conn
	send   chan []byte
	done   chan struct{}
	logger *log.Logger

	svc    tui.Services
	router *input.Router
	match  *multiplayer.Match
	screen *core.Screen
	clock  *core.Clock
	best   int

	resize  chan [2]int
	results chan submitted
}

// ID implements multiplayer.SessionHandle.
func (c *Connection) ID() multiplayer.SessionID {
	return c.id
}

// Done implements multiplayer.SessionHandle.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// readPump reads browser events until the socket closes.
func (c *Connection) readPump(cancel context.CancelFunc) {
	defer cancel()

	c.ws.SetReadLimit(1024)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read failed", "session", c.id, "err", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("bad message", "session", c.id, "err", err)
			continue
		}

		switch msg.Type {
		case "down":
			if key := RouterKey(msg.Key); key != "" {
				c.router.Press(key)
			}
		case "up":
			if key := RouterKey(msg.Key); key != "" {
				c.router.Release(key)
			}
		case "resize":
			select {
			case c.resize <- [2]int{msg.Cols, msg.Rows}:
			default:
			}
		}
	}
}

// writePump writes queued messages and keeps the socket alive.
func (c *Connection) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.flush()
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case message := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// flush writes whatever is still queued.
func (c *Connection) flush() {
	for {
		select {
		case message := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		default:
			return
		}
	}
}

// push queues a message. Frames are dropped if the browser is behind;
// other messages wait up to writeWait for room.
func (c *Connection) push(msg serverMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("encode failed", "session", c.id, "err", err)
		return
	}
	if msg.Type == "frame" {
		select {
		case c.send <- data:
		default:
		}
		return
	}
	select {
	case c.send <- data:
	case <-time.After(writeWait):
		c.logger.Warn("send queue full", "session", c.id, "type", msg.Type)
	}
}

// run steps the match once per frame until ctx is canceled or the player
// backs out of the mode menu.
func (c *Connection) run(ctx context.Context, cancel context.CancelFunc, tickRate int) {
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case size := <-c.resize:
			if w, h, ok := clampSize(size[0], size[1]); ok {
				c.screen.Resize(w, h)
				c.match.Resize(w, h)
			}

		case res := <-c.results:
			if !c.match.Complete(res.gen, res.result) {
				c.logger.Debug("dropped stale leaderboard result", "session", c.id, "gen", res.gen)
			}

		case now := <-ticker.C:
			if !c.tick(ctx, now) {
				c.push(serverMessage{Type: "exit"})
				return
			}
		}
	}
}

// tick advances one frame and sends it. Returns false when the player exits.
func (c *Connection) tick(ctx context.Context, now time.Time) bool {
	dt := c.clock.Tick(now)
	for _, ev := range c.match.Step(dt) {
		switch ev := ev.(type) {
		case multiplayer.SubmitRequestedEvent:
			go c.submit(ctx, ev.Submission)
		case multiplayer.MatchEndedEvent:
			if ev.Outcome.NewBest {
				c.best = ev.Outcome.Best
			}
		case multiplayer.ExitEvent:
			return false
		}
	}

	c.screen.Clear()
	c.match.Render(c.screen)
	tui.DrawOverlay(c.screen, c.match, tui.OverlayInfo{
		Best:    c.best,
		Loading: c.svc.Sprites != nil && !c.svc.Sprites.Ready(),
	})
	c.push(serverMessage{Type: "frame", HTML: RenderHTML(c.screen)})
	return true
}

// submit runs the leaderboard flow off the loop and hands the result back.
func (c *Connection) submit(ctx context.Context, sub multiplayer.Submission) {
	res := c.svc.Board.SubmitAndFetch(ctx, sub.Record)
	select {
	case c.results <- submitted{gen: sub.Generation, result: res}:
	case <-ctx.Done():
	}
}
