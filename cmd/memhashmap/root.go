package main

import (
	"fmt"

	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/internal/logutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootArgs - State shared by all sub commands, filled in before any of them runs
type rootArgs struct {
	configFile string
	cfg        Config
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	arg := &rootArgs{}
	defaults := defaultConfig()

	cmd := &cobra.Command{
		Use:          "memhashmap",
		Short:        "Fixed capacity in-memory hash map",
		Long:         "Run scripts of hash map operations against a fixed capacity hash map using open addressing or separate chaining",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return arg.prepare(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if arg.logger != nil {
				_ = arg.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&arg.configFile, "config", "", "toml configuration file")
	flags.Int64("capacity", defaults.Capacity, "number of slots (buckets)")
	flags.String("crt", defaults.CollisionResolution, "collision resolution technique: array or chaining")
	flags.String("hash", defaults.Hash, "hash function: addition, quadratic or double")
	flags.String("log-level", defaults.Log.Level, "log level: debug, info, warn or error")
	flags.String("log-format", defaults.Log.Format, "log format: console or json")
	flags.String("log-file", defaults.Log.Filename, "log file, logs go to stderr if empty")

	cmd.AddCommand(newExecCommand(arg))
	cmd.AddCommand(newFillCommand(arg))

	return cmd
}

// prepare - Loads the configuration file, applies flags that were set and creates the logger
func (arg *rootArgs) prepare(cmd *cobra.Command) (err error) {
	arg.cfg, err = loadConfig(arg.configFile)
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		arg.cfg.Capacity, _ = flags.GetInt64("capacity")
	}
	if flags.Changed("crt") {
		arg.cfg.CollisionResolution, _ = flags.GetString("crt")
	}
	if flags.Changed("hash") {
		arg.cfg.Hash, _ = flags.GetString("hash")
	}
	if flags.Changed("log-level") {
		arg.cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		arg.cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("log-file") {
		arg.cfg.Log.Filename, _ = flags.GetString("log-file")
	}

	arg.logger, err = logutil.NewLogger(arg.cfg.Log)
	if err != nil {
		err = fmt.Errorf("error while creating logger: %s", err)
		return
	}

	return
}

// newHashMap - Returns an empty hash map according to the configuration
func (arg *rootArgs) newHashMap() (hashMap *memhashmap.HashMap[string], err error) {
	conf, err := arg.cfg.hashMapConf()
	if err != nil {
		return
	}
	conf.Logger = arg.logger

	hashMap, info, err := memhashmap.NewHashMap[string](arg.cfg.Capacity, conf)
	if err != nil {
		err = fmt.Errorf("error while creating hash map: %s", err)
		return
	}

	arg.logger.Info("hash map ready",
		zap.Int64("capacity", info.Capacity),
		zap.String("crt", arg.cfg.CollisionResolution),
		zap.String("hash", arg.cfg.Hash),
		zap.Bool("fullProbeCoverage", info.FullProbeCoverage),
	)

	return
}
