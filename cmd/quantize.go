package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"acs71020-go/errcode"
)

func newQuantizeCommand(e *env) *cobra.Command {
	var saturate bool
	cmd := &cobra.Command{
		Use:   "quantize ADDR FIELD VALUE",
		Short: "Convert a physical value into a raw field value",
		Long:  "Convert a physical value into a raw field value. " + addrHelp,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRegister(args[0])
			if err != nil {
				return err
			}
			f, ok := r.Field(args[1])
			if !ok {
				return errcode.New(errcode.UnknownField, "quantize", r.Name+"."+args[1])
			}
			v, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return &errcode.E{C: errcode.InvalidParams, Op: "parse", Msg: args[2], Err: err}
			}
			cal := e.cfg.Calibration
			var raw int64
			if saturate {
				raw, err = f.SaturatePhysical(v, cal)
			} else {
				raw, err = f.FromPhysical(v, cal)
			}
			if err != nil {
				return err
			}
			back, _ := f.ToPhysical(raw, cal)
			e.log.Debugw("quantize", "field", f.Name, "in", v, "raw", raw, "out", back)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\t%s\n", f.Name, raw, formatPhysical(f, back))
			return err
		},
	}
	cmd.Flags().BoolVar(&saturate, SaturateOptionName, false, "Clamp to the field range instead of failing")
	return cmd
}
