// =============================================================================
// OCF Ledger Converter - Decode Command
// =============================================================================
//
// COMMAND USAGE:
//   ocfconv decode --file contracts.json [--out objects.json]
//   ocfconv decode --contract 00ab... --contract 00cd...
//
// Records are read from a dump file (one record or an array) or fetched from
// the configured ledger by contract id. The output is a JSON array of portable
// objects.
//
// =============================================================================

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

var (
	decodeFile      string
	decodeOut       string
	decodeContracts []string
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Convert ledger contract records to portable OCF objects",
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "Record dump file, or - for standard input")
	decodeCmd.Flags().StringVarP(&decodeOut, "out", "o", "", "Write objects here instead of standard output")
	decodeCmd.Flags().StringSliceVar(&decodeContracts, "contract", nil, "Fetch this contract from the ledger (repeatable)")
	decodeCmd.MarkFlagsMutuallyExclusive("file", "contract")
}

func runDecode(cmd *cobra.Command, _ []string) error {
	var records []*ledger.Record
	if len(decodeContracts) > 0 {
		client, err := ledger.NewHTTPClient(ledgerClientConfig())
		if err != nil {
			return err
		}
		for _, id := range decodeContracts {
			rec, err := client.ReadContract(cmd.Context(), id)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
	} else {
		data, err := readInput(cmd, decodeFile)
		if err != nil {
			return err
		}
		if records, err = ledger.ParseRecords(data); err != nil {
			return err
		}
	}

	codec := newCodec()
	objects := make([]ocf.Object, 0, len(records))
	for _, rec := range records {
		obj, err := codec.DecodeRecord(rec)
		if err != nil {
			return fmt.Errorf("contract %s: %w", rec.ContractID, err)
		}
		objects = append(objects, obj)
	}
	logger.Info("decode: converted records", "count", len(objects))

	out, err := json.MarshalIndent(objects, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(cmd, decodeOut, append(out, '\n'))
}
