package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gitlab.com/semkodev/ternhash/logs"
	"gitlab.com/semkodev/ternhash/sponge"
)

const defaultConfigPath = "trithash.config.json"

/*
PRECEDENCE (Higher number overrides the others):
1. default
2. config
3. env
4. flag
5. explicit call to Set
*/
func Load(args []string) (*viper.Viper, error) {
	var config = viper.New()
	flags := flag.NewFlagSet("trithash", flag.ContinueOnError)

	// 1. Declare command line arguments with their defaults
	declareHashConfigs(flags)
	declareLogConfigs(flags)

	flags.String("debug.profile", "", "Write a cpu or mem profile of the run")
	flags.String("debug.profilePath", ".", "Directory the profile is written to")

	configPath := flags.StringP("config", "c", defaultConfigPath, "Config file path")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := config.BindPFlags(flags); err != nil {
		return nil, err
	}

	// 2. Bind environment vars
	replacer := strings.NewReplacer(".", "_")
	config.SetEnvPrefix("TRITHASH")
	config.SetEnvKeyReplacer(replacer)
	config.AutomaticEnv()

	// 3. Load config
	if len(*configPath) > 0 {
		_, err := os.Stat(*configPath)
		if !flags.Changed("config") && os.IsNotExist(err) {
			// Standard config file not found => skip
			logs.Log.Debug("Standard config file not found. Loading default settings.")
		} else {
			logs.Log.Infof("Loading config from: %s", *configPath)
			config.SetConfigFile(*configPath)
			if err := config.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "config could not be loaded from: %s", *configPath)
			}
		}
	}

	config.Set("inputs", flags.Args())

	// 4. Check config for validity
	if err := check(config); err != nil {
		return nil, err
	}
	return config, nil
}

func check(config *viper.Viper) error {
	length := config.GetInt("hash.length")
	if length <= 0 {
		return errors.Errorf("hash.length must be positive, got %d", length)
	}
	if !strings.EqualFold(config.GetString("hash.mode"), "troika") && length%sponge.HASH_LENGTH != 0 {
		return errors.Wrapf(sponge.ErrInvalidOutputLength, "hash.length %d", length)
	}
	if config.GetInt("workers") < 1 {
		return errors.Errorf("workers must be at least 1, got %d", config.GetInt("workers"))
	}
	switch config.GetString("debug.profile") {
	case "", "cpu", "mem":
	default:
		return errors.Errorf("unknown profile %q, use cpu or mem", config.GetString("debug.profile"))
	}
	return nil
}

func declareHashConfigs(flags *flag.FlagSet) {
	flags.StringP("hash.mode", "m", "CURLP81", "CURLP27, CURLP81, TROIKA or KERL")
	flags.IntP("hash.length", "l", sponge.HASH_LENGTH, "Number of output trits. A multiple of 243 except for TROIKA")

	flags.StringSliceP("input.files", "f", nil, "Files with one tryte string per line")

	flags.IntP("workers", "w", runtime.NumCPU(), "Number of inputs hashed in parallel")

	flags.Int("cache.size", 0, "Size of the digest cache in bytes. 0 = off")
	flags.Int("cache.expire", 0, "Seconds until a cached digest expires. 0 = never")

	flags.Int("pow.mwm", 0, "If set, report whether each digest ends with this many zero trits")
}

func declareLogConfigs(flags *flag.FlagSet) {
	flags.String("log.level", "INFO", "DEBUG, INFO, NOTICE, WARNING, ERROR or CRITICAL")

	flags.Bool("log.useRollingLogFile", false, "Enable save log messages to rolling log files")
	flags.String("log.logFile", "trithash.log", "Path to file where log files are saved")
	flags.Int32("log.maxLogFileSize", 10, "Maximum size in megabytes for log files. Default is 10MB")
	flags.Int32("log.maxLogFilesToKeep", 1, "Maximum amount of log files to keep when a new file is created. Default is 1 file")

	flags.String("log.criticalErrorsLogFile", "trithashCriticalErrors.log", "Path to file where critical error messages are saved")
}
