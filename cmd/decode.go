package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"acs71020-go/drivers/acs71020"
	"acs71020-go/errcode"
	"acs71020-go/x/conv"
)

func newDecodeCommand(e *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "decode ADDR WORD",
		Short: "Decode a register word into its fields",
		Long: "Decode a register word into its fields. Words read from the " +
			"EEPROM bank (0x0B..0x0F) are treated as full frames with EEC status. " +
			addrHelp,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRegister(args[0])
			if err != nil {
				return err
			}
			word, err := parseWord(args[1])
			if err != nil {
				return err
			}
			return runDecode(e, cmd.OutOrStdout(), r, word, output)
		},
	}
	cmd.Flags().StringVarP(&output, OutputOptionName, "o", "text", "Output format, text or yaml")
	return cmd
}

type fieldOut struct {
	Name    string   `json:"name"`
	Raw     int64    `json:"raw"`
	Value   *float64 `json:"value,omitempty"`
	Unit    string   `json:"unit,omitempty"`
	Meaning string   `json:"meaning,omitempty"`
}

type decodeOut struct {
	Address  string     `json:"address"`
	Register string     `json:"register"`
	Bank     string     `json:"bank"`
	Word     string     `json:"word"`
	ECC      string     `json:"ecc,omitempty"`
	Fields   []fieldOut `json:"fields"`
}

func runDecode(e *env, out io.Writer, r acs71020.Register, word uint32, output string) error {
	var (
		d   acs71020.Decoded
		ecc string
		err error
	)
	if r.Bank == acs71020.BankEEPROM {
		f, ferr := acs71020.DecodeFrame(r.Addr, word)
		if ferr != nil {
			return ferr
		}
		if !f.Reliable() {
			e.log.Warnw("uncorrectable EEPROM read", "addr", r.Addr.String(), "word", hexWord(word))
		}
		d, ecc = f.Fields, f.ECC.String()
	} else {
		d, err = acs71020.DecodeRegister(r.Addr, word)
		if err != nil {
			return err
		}
	}
	e.log.Debugw("decode", "addr", r.Addr.String(), "word", hexWord(word), "fields", d.String())

	cal := e.cfg.Calibration
	switch output {
	case "yaml":
		doc := decodeOut{
			Address:  r.Addr.String(),
			Register: r.Name,
			Bank:     r.Bank.String(),
			Word:     hexWord(word),
			ECC:      ecc,
		}
		for _, v := range d.Values {
			fo := fieldOut{Name: v.Name, Raw: v.Raw}
			if x, ok := v.Physical(cal); ok {
				fo.Value, fo.Unit = &x, v.Unit.Symbol
			}
			fo.Meaning = acs71020.Describe(v.Name, v.Raw)
			doc.Fields = append(doc.Fields, fo)
		}
		b, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	case "text", "":
		fmt.Fprintf(out, "%s %s (%s) %s", r.Addr, r.Name, r.Bank, hexWord(word))
		if ecc != "" {
			fmt.Fprintf(out, " ecc=%s", ecc)
		}
		fmt.Fprintln(out)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, v := range d.Values {
			fmt.Fprintf(tw, "  %s\t%d", v.Name, v.Raw)
			if x, ok := v.Physical(cal); ok {
				fmt.Fprintf(tw, "\t%s", formatPhysical(v.Field, x))
			} else if m := acs71020.Describe(v.Name, v.Raw); m != "" {
				fmt.Fprintf(tw, "\t%s", m)
			}
			fmt.Fprintln(tw)
		}
		return tw.Flush()
	default:
		return errcode.New(errcode.InvalidParams, "decode", "output must be text or yaml")
	}
}

// formatPhysical renders V, A and W with periph's SI formatting.
func formatPhysical(f acs71020.Field, x float64) string {
	switch {
	case f.Unit.Kind == acs71020.QtyVoltage:
		return acs71020.Potential(x).String()
	case f.Unit.Kind == acs71020.QtyCurrent:
		return acs71020.Current(x).String()
	case f.Unit.Kind == acs71020.QtyPower && f.Unit.Symbol == "W":
		return acs71020.Power(x).String()
	}
	s := strconv.FormatFloat(x, 'g', 6, 64)
	if f.Unit.Symbol != "" {
		s += " " + f.Unit.Symbol
	}
	return s
}

func hexWord(w uint32) string {
	var b [10]byte
	b[0], b[1] = '0', 'x'
	conv.U32Hex(b[2:], w)
	return string(b[:])
}
