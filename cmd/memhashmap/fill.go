package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFillCommand(arg *rootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill <count>",
		Short: "Insert random keys and report statistics",
		Long:  "Insert count random uuid keys, stopping at the first key that can not be stored, and report the resulting slot statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			count, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || count < 0 {
				return fmt.Errorf("count must be a non-negative integer, got %q", args[0])
			}

			hm, err := arg.newHashMap()
			if err != nil {
				return
			}

			inserted, err := fill(hm, count, arg.logger)
			if err != nil {
				return
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "inserted: %d of %d\n", inserted, count)
			printStat(cmd.OutOrStdout(), hm.Stat(false))

			return
		},
	}

	return cmd
}

// fill - Inserts count random keys, each with itself as value, and returns the number actually inserted.
// Running out of slots ends the fill without error.
func fill(hm *memhashmap.HashMap[string], count int64, logger *zap.Logger) (inserted int64, err error) {
	for inserted < count {
		key := uuid.NewString()
		if err = hm.Set(key, key); err != nil {
			if errors.Is(err, crt.CapacityExhausted{}) {
				logger.Info("fill stopped, no slot available", zap.Int64("inserted", inserted))
				err = nil
			}
			return
		}
		inserted++
	}

	return
}
