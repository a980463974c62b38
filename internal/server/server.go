// Package server exposes the interpreter over a websocket boundary. Each
// text frame carries one raw command line; the reply is the JSON descriptor
// with its "type" discriminant. The server never executes drawings — it is
// the text-to-descriptor boundary only.
package server

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/appengine-ltd/cadtalk/internal/interpreter"
)

type Handler struct {
	interp *interpreter.Interpreter
	log    *zap.Logger
}

func NewHandler(interp *interpreter.Interpreter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{interp: interp, log: logger}
}

func Route(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/interpret", h)
	return mux
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.log.Error("websocket accept failed", zap.Error(err))
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	h.log.Info("client connected", zap.String("remote", r.RemoteAddr))
	h.readLoop(ctx, conn)
}

func (h *Handler) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				h.log.Error("websocket read failed", zap.Error(err))
			}
			return
		}
		if msgType != websocket.MessageText {
			h.log.Warn("ignoring non-text frame")
			continue
		}

		cmd := h.interp.Interpret(string(data))
		payload, err := interpreter.Encode(cmd)
		if err != nil {
			h.log.Error("descriptor encoding failed", zap.Error(err))
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			h.log.Error("websocket write failed", zap.Error(err))
			return
		}
	}
}

// Serve blocks listening on addr until the listener fails or ctx is done.
func Serve(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{Addr: addr, Handler: Route(h)}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}
