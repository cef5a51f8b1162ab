package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"gitlab.com/semkodev/ternhash/config"
	"gitlab.com/semkodev/ternhash/logs"
	"gitlab.com/semkodev/ternhash/runner"
)

func init() {
	logs.Setup()
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// realMain returns the exit code so that deferred calls, the profile flush among
// them, run before the process exits.
func realMain(args []string, stdout io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		logs.Log.Errorf("Configuration failed: %v", err)
		return 2
	}
	logs.SetConfig(cfg)

	settings, _ := json.MarshalIndent(cfg.AllSettings(), "", "  ")
	logs.Log.Debugf("Following settings loaded: \n %+v", string(settings))

	profilePath := profile.ProfilePath(cfg.GetString("debug.profilePath"))
	switch cfg.GetString("debug.profile") {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profilePath, profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profilePath, profile.NoShutdownHook).Stop()
	}

	if err := run(cfg, stdout); err != nil {
		logs.Log.Error(err)
		return 1
	}
	return 0
}

func run(cfg *viper.Viper, stdout io.Writer) error {
	options, err := runner.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	r := runner.New(options, afero.NewOsFs())
	inputs, err := r.Inputs(cfg.GetStringSlice("inputs"), cfg.GetStringSlice("input.files"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		logs.Log.Warning("Nothing to hash. Pass tryte strings as arguments or files with -f")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logs.Log.Infof("Hashing %d inputs with %v using %d workers", len(inputs), options.Mode, options.Workers)
	results, err := r.Run(ctx, inputs)
	if err != nil {
		return err
	}

	for _, result := range results {
		if options.MWM > 0 {
			fmt.Fprintf(stdout, "%s\t%v\n", result.Digest, result.ValidPoW)
		} else {
			fmt.Fprintln(stdout, result.Digest)
		}
	}
	return nil
}
