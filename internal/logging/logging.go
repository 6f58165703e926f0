package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	logger    = logrus.New()
	ProcessID = uuid.New().String()
)

type defaultFieldHook struct {
	hostname string
}

func (hook *defaultFieldHook) Fire(entry *logrus.Entry) error {
	entry.Data["hostname"] = hook.hostname
	entry.Data["processId"] = ProcessID
	return nil
}

func (hook *defaultFieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func init() {
	name, _ := os.Hostname()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	logger.Hooks.Add(&defaultFieldHook{hostname: name})
}

// Setup applies the configured level. Unknown levels fall back to info.
func Setup(level string, out io.Writer) {
	if out != nil {
		logger.SetOutput(out)
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logger.WithField("level", level).Warn("Invalid LOG_LEVEL, falling back to info")
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
}

// Get returns a logger entry tagged with the component name.
func Get(name string) *logrus.Entry {
	return logger.WithField("logName", name)
}
