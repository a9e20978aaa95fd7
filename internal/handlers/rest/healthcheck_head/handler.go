package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 204 пока сервис принимает трафик и 503 во время остановки.
// По этому эндпоинту балансировщик выводит инстанс из ротации.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
