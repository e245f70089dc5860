package main

import (
	_ "embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/tomz197/spaceshooter/internal/config"
	applog "github.com/tomz197/spaceshooter/internal/logging"
	"github.com/tomz197/spaceshooter/internal/score"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Funcs(template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"rank":  func(i int) int { return i + 1 },
}).Parse(htmlPage))

// pageData feeds index.html.
type pageData struct {
	SSHHost string
	SSHPort string
	Scores  []score.Record
}

func main() {
	settings, err := config.Load(".")
	if err != nil {
		log.Fatal("config error", "err", err)
	}
	logger := applog.New(os.Stderr, settings.LogLevel)

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "2222")

	store, err := score.Open(settings.HighScores.Backend, settings.HighScores.Path)
	if err != nil {
		logger.Fatal("failed to open high scores", "err", err)
	}
	if c, ok := store.(io.Closer); ok {
		defer c.Close()
	}

	http.Handle("/", indexHandler(store, sshHost, sshPort, logger))

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// indexHandler serves the landing page with the current top ten. The table
// is reloaded per request since SSH sessions write it from another process.
func indexHandler(store score.Store, sshHost, sshPort string, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		data := pageData{
			SSHHost: sshHost,
			SSHPort: sshPort,
			Scores:  score.NewTable(store, logger).Top(0),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("render index", "err", err)
		}
	})
}
