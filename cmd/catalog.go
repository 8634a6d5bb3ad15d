package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"acs71020-go/drivers/acs71020"
	"acs71020-go/x/conv"
)

func newCatalogCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [ADDR]",
		Short: "List registers, or the field layout of one register",
		Long:  "List registers, or the field layout of one register. " + addrHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if len(args) == 0 {
				fmt.Fprintln(tw, "ADDR\tNAME\tBANK\tACCESS\tFIELDS")
				for _, r := range acs71020.Registers() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", r.Addr, r.Name, r.Bank, r.Access, len(r.Fields))
				}
				return tw.Flush()
			}
			r, err := parseRegister(args[0])
			if err != nil {
				return err
			}
			e.log.Debugw("catalog", "addr", r.Addr.String(), "reserved", hexWord(r.ReservedMask()))
			fmt.Fprintln(tw, "FIELD\tBITS\tTYPE\tUNIT")
			for _, f := range r.Fields {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, bitRange(f), fieldType(f), f.Unit.Symbol)
			}
			return tw.Flush()
		},
	}
}

func dec(n uint8) string {
	var b [3]byte
	return string(conv.Utoa(b[:], uint64(n)))
}

func bitRange(f acs71020.Field) string {
	if f.Width == 1 {
		return dec(f.Offset)
	}
	return dec(f.Offset+f.Width-1) + ":" + dec(f.Offset)
}

// fieldType renders e.g. u9, s17 or s15.Q15.
func fieldType(f acs71020.Field) string {
	s := "u"
	if f.Signed {
		s = "s"
	}
	s += dec(f.Width)
	if f.Unit.FracBits > 0 {
		s += ".Q" + dec(f.Unit.FracBits)
	}
	return s
}
