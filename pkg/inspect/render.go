package inspect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// dumpConfig shows the raw structure: Stringers are bypassed and pointer
// addresses omitted so output is stable between runs
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Render writes report to w in the inspector's output format
func (i *Inspector) Render(w io.Writer, report *Report) error {
	switch i.opts.Format {
	case FormatText:
		_, err := io.WriteString(w, report.Transaction.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		renderTable(w, report)
		return nil
	case FormatDump:
		dumpConfig.Fdump(w, report.Transaction)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", i.opts.Format)
	}
}

// renderTable writes a summary table followed by one row per input
func renderTable(w io.Writer, report *Report) {
	tx := report.Transaction

	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleLight)
	summary.SetTitle("Transaction %s", report.ID)
	summary.AppendRows([]table.Row{
		{"Version", tx.Version},
		{"Inputs", len(tx.Inputs)},
		{"Lock Time", tx.LockTime},
		{"Size", report.Consumed},
		{"Trailing", report.Trailing},
	})
	summary.Render()

	if len(tx.Inputs) == 0 {
		return
	}

	inputs := table.NewWriter()
	inputs.SetOutputMirror(w)
	inputs.SetStyle(table.StyleLight)
	inputs.AppendHeader(table.Row{"#", "Previous Txid", "Vout", "Script Len", "Script Sig", "Sequence"})
	for idx, in := range tx.Inputs {
		inputs.AppendRow(table.Row{
			idx,
			in.PreviousOutput.Txid,
			in.PreviousOutput.Index,
			in.SignatureScript.Len(),
			in.SignatureScript,
			fmt.Sprintf("0x%08X", in.Sequence),
		})
	}
	inputs.Render()
}
