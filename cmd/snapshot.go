package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"acs71020-go/drivers/acs71020"
	"acs71020-go/errcode"
	"acs71020-go/types"
)

type snapshotOut struct {
	Info  types.PowerInfo  `json:"info"`
	Value types.PowerValue `json:"value"`
}

func newSnapshotCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot ADDR=WORD...",
		Short: "Convert sampled volatile register words into physical values",
		Long:  "Convert sampled volatile register words into physical values. " + addrHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words := make(map[acs71020.Address]uint32, len(args))
			for _, a := range args {
				addr, val, ok := strings.Cut(a, "=")
				if !ok {
					return errcode.New(errcode.InvalidParams, "parse", "want ADDR=WORD, got "+a)
				}
				r, err := parseRegister(addr)
				if err != nil {
					return err
				}
				w, err := parseWord(val)
				if err != nil {
					return err
				}
				if r.Bank != acs71020.BankVolatile {
					e.log.Warnw("not a measurement register, ignored", "addr", r.Addr.String())
					continue
				}
				words[r.Addr] = w
			}
			cal := e.cfg.Calibration
			b, err := yaml.Marshal(snapshotOut{
				Info:  acs71020.Info(cal),
				Value: acs71020.PowerSnapshot(words, cal),
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
