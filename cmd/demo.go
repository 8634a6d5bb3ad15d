package cmd

import (
	"github.com/spf13/cobra"

	"acs71020-go/drivers/acs71020"
)

// demoWord is an erased EEPROM cell: every bit set.
const demoWord uint32 = 0xFFFFFFFF

func newDemoCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Decode an all-ones EEPROM frame with the 0x0D layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := acs71020.Lookup(acs71020.RegFaultConfig)
			if err != nil {
				return err
			}
			e.log.Infow("demo", "addr", r.Addr.String(), "word", hexWord(demoWord))
			return runDecode(e, cmd.OutOrStdout(), r, demoWord, "text")
		},
	}
}
