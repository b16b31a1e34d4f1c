package logger

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. Unknown levels fall back to
// info.
func Setup(level string) {
	SetupWithOutput(level, os.Stdout)
}

func SetupWithOutput(level string, out io.Writer) {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(out)

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("[logger] unknown level=%q, using info", level)
		return
	}
	log.SetLevel(lvl)
}
