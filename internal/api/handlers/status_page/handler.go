package status_page

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/m04kA/yetal-bot/internal/api/handlers"
	"github.com/m04kA/yetal-bot/internal/config"
)

// RefreshSeconds период автообновления страницы
const RefreshSeconds = 30

var page = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Yetal Bot</title>
    <meta charset="utf-8">
    <meta http-equiv="refresh" content="{{.Refresh}}">
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
        }
        .container {
            background: rgba(255, 255, 255, 0.1);
            border-radius: 20px;
            padding: 40px;
            margin-top: 50px;
        }
        h1 { color: #FFD700; text-align: center; }
        .status {
            background: rgba(0, 255, 0, 0.2);
            padding: 15px;
            border-radius: 10px;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>🚀 Yetal Advertising Bot</h1>
        <div class="status">
            ✅ <strong>BOT IS RUNNING</strong><br>
            Version: {{.Version}}<br>
            Mode: {{.Mode}}
        </div>
        <p style="text-align: center;">📞 Contact: {{.Email}}</p>
    </div>
</body>
</html>
`))

type pageData struct {
	Refresh int
	Version string
	Mode    string
	Email   string
}

type Handler struct {
	data pageData
}

func NewHandler(version string, mode config.Mode, contactEmail string) *Handler {
	return &Handler{
		data: pageData{
			Refresh: RefreshSeconds,
			Version: version,
			Mode:    mode.Label(),
			Email:   contactEmail,
		},
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, h.data); err != nil {
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondHTML(w, http.StatusOK, buf.Bytes())
}
