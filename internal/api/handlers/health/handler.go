package health

import (
	"net/http"
	"time"

	"github.com/m04kA/yetal-bot/internal/api/handlers"
	"github.com/m04kA/yetal-bot/internal/config"
)

// Response тело ответа /health
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Mode      string `json:"mode"` // production | local
}

type Handler struct {
	version string
	mode    config.Mode
	now     func() time.Time
}

// NewHandler создаёт обработчик. now может быть nil - используется time.Now.
func NewHandler(version string, mode config.Mode, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}

	return &Handler{
		version: version,
		mode:    mode,
		now:     now,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := Response{
		Status:    "healthy",
		Timestamp: h.now().Format(time.RFC3339),
		Version:   h.version,
		Mode:      h.mode.Environment(),
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
