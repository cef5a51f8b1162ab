package logs

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const module = "trithash"

var (
	logFormat = "%{color}[%{level:.4s}] %{time:15:04:05.000000} [%{shortpkg}] %{shortfunc} -> %{color:reset}%{message}"
	Log       = logging.MustGetLogger(module)
)

// Setup installs the format and a stderr backend so that messages logged before the
// configuration is read are not lost. Digests go to stdout.
func Setup() {
	logging.SetFormatter(logging.MustStringFormatter(logFormat))
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
}

func SetConfig(config *viper.Viper) {
	consoleBackEnd := logging.NewLogBackend(os.Stderr, "", 0)

	level, err := logging.LogLevel(config.GetString("log.level"))
	if err != nil {
		Log.Warningf("Could not set log level to %v: %v", config.GetString("log.level"), err)
		Log.Warning("Using default log level")
		return
	}

	consoleBackEndLeveled := logging.AddModuleLevel(consoleBackEnd)
	consoleBackEndLeveled.SetLevel(level, module)

	if !config.GetBool("log.useRollingLogFile") {
		logging.SetBackend(consoleBackEndLeveled)
		return
	}

	rollingLogBackEnd := logging.NewLogBackend(&lumberjack.Logger{
		Filename:   config.GetString("log.logFile"),
		MaxSize:    config.GetInt("log.maxLogFileSize"), // megabytes
		MaxBackups: config.GetInt("log.maxLogFilesToKeep"),
		Compress:   true,
	}, "", 0)
	rollingLogBackEndLeveled := logging.AddModuleLevel(rollingLogBackEnd)
	rollingLogBackEndLeveled.SetLevel(level, module)

	errorRollingLogBackEnd := logging.NewLogBackend(&lumberjack.Logger{
		Filename:   config.GetString("log.criticalErrorsLogFile"),
		MaxSize:    1, // megabytes
		MaxBackups: 1,
	}, "", 0)

	// Only critical error messages should be sent to errorRollingLogBackEndLeveled
	errorRollingLogBackEndLeveled := logging.AddModuleLevel(errorRollingLogBackEnd)
	errorRollingLogBackEndLeveled.SetLevel(logging.CRITICAL, module)

	logging.SetBackend(consoleBackEndLeveled, rollingLogBackEndLeveled, errorRollingLogBackEndLeveled)
}
