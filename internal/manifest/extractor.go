package manifest

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// DefaultConcurrency bounds in-flight contract reads when none is configured.
const DefaultConcurrency = 4

// Extractor reads contracts from the ledger and assembles them.
type Extractor struct {
	Reader      ledger.Reader
	Assembler   *Assembler
	Concurrency int
	Log         *slog.Logger
}

// Extract reads every contract in ids with at most Concurrency reads in
// flight, then assembles the manifest. A failed read skips that contract. The
// only error returned is cancellation of ctx.
func (x *Extractor) Extract(ctx context.Context, ids []string) (*Manifest, *Report, error) {
	log := x.Log
	if log == nil {
		log = slog.Default()
	}
	limit := x.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	records := make([]*ledger.Record, len(ids))
	fetchErrs := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := x.Reader.ReadContract(gctx, id)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				fetchErrs[i] = err
				return nil
			}
			if rec == nil {
				fetchErrs[i] = validation.NewContractError(validation.CodeResultNotFound, id, "", "ledger returned no contract")
				return nil
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	log.Debug("manifest: contracts fetched", "requested", len(ids))

	// Sequencing needs the full set, so assembly starts only after every
	// read has returned.
	fetched := make([]*ledger.Record, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			fetched = append(fetched, rec)
		}
	}
	m, report := x.Assembler.Assemble(fetched)
	for i, err := range fetchErrs {
		if err == nil {
			continue
		}
		report.Total++
		x.Assembler.skip(report, Skip{ContractID: ids[i]}, err)
	}
	return m, report, nil
}
