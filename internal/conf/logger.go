package conf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(loggerSetting.Level)
	if err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if CfgIf("LogFile") {
		out := &lumberjack.Logger{
			Filename:  filepath.Join(loggerFileSetting.SavePath, loggerFileSetting.FileName+loggerFileSetting.FileExt),
			MaxSize:   600,
			MaxAge:    10,
			LocalTime: true,
		}
		logrus.SetOutput(io.MultiWriter(os.Stdout, out))
	}
}
