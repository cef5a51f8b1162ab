// Package runner hashes the tryte strings given to the command line tool, reading
// input files through afero and fanning the work out over a bounded set of goroutines.
package runner

import (
	"bufio"
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"gitlab.com/semkodev/ternhash/crypt"
	"gitlab.com/semkodev/ternhash/logs"
	"gitlab.com/semkodev/ternhash/trinary"
)

type Options struct {
	Mode        crypt.HashMode
	Length      int
	Workers     int
	MWM         int
	CacheSize   int
	CacheExpire int // seconds, 0 = never
}

// OptionsFromConfig reads the hash, workers, cache and pow settings.
func OptionsFromConfig(config *viper.Viper) (Options, error) {
	mode, err := crypt.ParseHashMode(config.GetString("hash.mode"))
	if err != nil {
		return Options{}, err
	}
	return Options{
		Mode:        mode,
		Length:      config.GetInt("hash.length"),
		Workers:     config.GetInt("workers"),
		MWM:         config.GetInt("pow.mwm"),
		CacheSize:   config.GetInt("cache.size"),
		CacheExpire: config.GetInt("cache.expire"),
	}, nil
}

type Result struct {
	Input    trinary.Trytes
	Digest   trinary.Trytes
	ValidPoW bool
}

type Runner struct {
	options Options
	fs      afero.Fs
	cache   *crypt.DigestCache
}

func New(options Options, fs afero.Fs) *Runner {
	r := &Runner{options: options, fs: fs}
	if r.options.Workers < 1 {
		r.options.Workers = 1
	}
	if options.CacheSize > 0 {
		r.cache = crypt.NewDigestCache(options.CacheSize, options.CacheExpire)
	}
	return r
}

// Inputs returns the literal inputs followed by every non-empty line of files.
func (r *Runner) Inputs(literals []string, files []string) ([]trinary.Trytes, error) {
	inputs := append([]trinary.Trytes{}, literals...)
	for _, name := range files {
		file, err := r.fs.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "open input file %s", name)
		}

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		err = scanner.Err()
		file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read input file %s", name)
		}
		logs.Log.Debugf("Read %s", name)
	}
	return inputs, nil
}

// Run hashes all inputs and returns the results in input order. The first failing
// input cancels the remaining work.
func (r *Runner) Run(ctx context.Context, inputs []trinary.Trytes) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.Workers)
	for i := range inputs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.hash(inputs[i])
			if err != nil {
				return errors.Wrapf(err, "input %d", i+1)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if r.cache != nil {
		logs.Log.Infof("Digest cache: %d hits, %d misses, %d entries", r.cache.HitCount(), r.cache.MissCount(), r.cache.EntryCount())
	}
	return results, nil
}

func (r *Runner) hash(input trinary.Trytes) (Result, error) {
	trits, err := trinary.TrytesToTrits(input)
	if err != nil {
		return Result{}, err
	}

	out := make(trinary.Trits, r.options.Length)
	if r.cache != nil {
		err = r.cache.Sum(r.options.Mode, trits, out)
	} else {
		err = crypt.Sum(r.options.Mode, trits, out)
	}
	if err != nil {
		return Result{}, err
	}

	// Troika digests need not be a whole number of trytes
	for len(out)%trinary.TRYTE_WIDTH != 0 {
		out = append(out, 0)
	}
	digest, err := trinary.TritsToTrytes(out)
	if err != nil {
		return Result{}, err
	}
	logs.Log.Debugf("%v %s -> %s", r.options.Mode, input, digest)

	return Result{
		Input:    input,
		Digest:   digest,
		ValidPoW: r.options.MWM > 0 && crypt.IsValidPoW(out[:r.options.Length], r.options.MWM),
	}, nil
}
