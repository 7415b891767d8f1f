// =============================================================================
// OCF Ledger Converter - Encode Command
// =============================================================================
//
// COMMAND USAGE:
//   ocfconv encode --file captable.ocf.json [--out commands.json] [--submit]
//
// The input may be a single portable object, a JSON array of objects, or an
// OCF file envelope {file_type, ocf_version, items}. The output is a JSON
// array of create commands {templateId, payload}.
//
// With --submit every command is sent to the configured ledger and the created
// contract ids are printed instead.
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
	encodeFile   string
	encodeOut    string
	encodeSubmit bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Convert portable OCF objects to ledger create commands",
	RunE:  runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeFile, "file", "f", "", "Portable OCF file, or - for standard input")
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "Write commands here instead of standard output")
	encodeCmd.Flags().BoolVar(&encodeSubmit, "submit", false, "Submit the commands to the configured ledger")
}

func runEncode(cmd *cobra.Command, _ []string) error {
	data, err := readInput(cmd, encodeFile)
	if err != nil {
		return err
	}
	gate, err := newVersionGate()
	if err != nil {
		return err
	}
	objs, err := ocf.ParseDocument(data, gate)
	if err != nil {
		return err
	}

	codec := newCodec()
	commands := make([]*ledger.CreateCommand, 0, len(objs))
	for i, obj := range objs {
		c, err := codec.Encode(obj)
		if err != nil {
			return fmt.Errorf("item %d (%s %s): %w", i, obj.Type(), obj.ObjectID(), err)
		}
		commands = append(commands, c)
	}
	logger.Info("encode: converted objects", "count", len(commands))

	if encodeSubmit {
		return submitCommands(cmd, objs, commands)
	}

	out, err := json.MarshalIndent(commands, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(cmd, encodeOut, append(out, '\n'))
}

// submitCommands sends commands in order and prints "<object id> <contract id>"
// for each. Submission stops at the first failure.
func submitCommands(cmd *cobra.Command, objs []ocf.Object, commands []*ledger.CreateCommand) error {
	client, err := ledger.NewHTTPClient(ledgerClientConfig())
	if err != nil {
		return err
	}
	for i, c := range commands {
		tree, err := client.Submit(cmd.Context(), c)
		if err != nil {
			return fmt.Errorf("submit %s: %w", objs[i].ObjectID(), err)
		}
		contractID, err := ledger.CreatedContractID(tree, c.TemplateID)
		if err != nil {
			return fmt.Errorf("submit %s: %w", objs[i].ObjectID(), err)
		}
		logger.Debug("encode: submitted", "object_id", objs[i].ObjectID(), "contract_id", contractID)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", objs[i].ObjectID(), contractID)
	}
	return nil
}

func ledgerClientConfig() ledger.ClientConfig {
	l := mainConfig.Ledger
	return ledger.ClientConfig{
		BaseURL:           l.BaseURL,
		AccessToken:       l.AccessToken,
		RequestsPerSecond: l.RequestsPerSecond,
		Burst:             l.Burst,
		Timeout:           l.Timeout,
		ActAs:             l.ActAs,
	}
}
