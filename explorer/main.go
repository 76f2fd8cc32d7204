package main

import (
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/explorer/config"
	"bikeshare/explorer/loader"
	"bikeshare/explorer/prompt"
	"bikeshare/explorer/reporters/factory"
	"bikeshare/explorer/session"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%s", err)
		return
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	reporters, err := factory.NewReporters(factory.DefaultReporterTypes(), os.Stdout, explorerConfig.SeparatorWidth)
	if err != nil {
		log.Fatalf("%s", err)
		return
	}

	explorerSession := session.NewSession(
		prompt.NewPrompter(os.Stdin, os.Stdout, explorerConfig.SeparatorWidth),
		loader.NewLoader(explorerConfig, explorerConfig.StartTimeLayouts, os.Stdout, explorerConfig.SeparatorWidth),
		reporters,
		os.Stdout,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		explorerConfig.SampleSize,
	)

	err = explorerSession.Run()
	if err != nil {
		log.Fatalf("[session: %s][status: ERROR] %s", explorerSession.GetID(), err)
	}

	log.Debugf("[session: %s] finish main.go", explorerSession.GetID())
}
