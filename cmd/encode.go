package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"acs71020-go/drivers/acs71020"
)

func newEncodeCommand(e *env) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "encode ADDR name=value...",
		Short: "Pack field values into a register word",
		Long: "Pack field values into a register word. Fields not named encode " +
			"as zero unless --from supplies the current word to modify. " + addrHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRegister(args[0])
			if err != nil {
				return err
			}
			values, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			var word uint32
			switch {
			case cmd.Flags().Changed(FromOptionName):
				cur, perr := parseWord(from)
				if perr != nil {
					return perr
				}
				if r.Bank == acs71020.BankEEPROM {
					cur &= 1<<acs71020.PayloadBits - 1
				}
				word, err = acs71020.Modify(r.Addr, cur, values)
			case r.Bank == acs71020.BankEEPROM:
				word, err = acs71020.EncodeFrame(r.Addr, values)
			default:
				word, err = acs71020.EncodeRegister(r.Addr, values)
			}
			if err != nil {
				for _, fe := range multierr.Errors(err) {
					e.log.Errorw("encode", "addr", r.Addr.String(), "error", fe.Error())
				}
				return err
			}
			e.log.Debugw("encode", "addr", r.Addr.String(), "values", values, "word", hexWord(word))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", r.Addr, hexWord(word))
			return err
		},
	}
	cmd.Flags().StringVar(&from, FromOptionName, "", "Current register word to modify (read-modify-write)")
	return cmd
}
