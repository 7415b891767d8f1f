// =============================================================================
// OCF Ledger Converter - Manifest Assembler
// =============================================================================
//
// The assembler turns a bag of ledger contracts into the manifest consumed by
// the cap-table engine:
//   1. decode every contract on its own; a failure skips that contract only
//   2. file core objects into their collections
//   3. sequence the transactions once everything is decoded
//
// Skips are logged and listed in the report so that a partial manifest can be
// compared against an independent source of truth.
//
// =============================================================================

package manifest

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/converter"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/sequencer"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Manifest is the assembled cap table. Only Transactions is ordered.
type Manifest struct {
	Issuer               *ocf.Issuer                `json:"issuer"`
	StockClasses         []*ocf.StockClass          `json:"stockClasses"`
	StockPlans           []*ocf.StockPlan           `json:"stockPlans"`
	Stakeholders         []*ocf.Stakeholder         `json:"stakeholders"`
	VestingTerms         []*ocf.VestingTerms        `json:"vestingTerms"`
	Valuations           []*ocf.Valuation           `json:"valuations"`
	Documents            []*ocf.Document            `json:"documents"`
	StockLegendTemplates []*ocf.StockLegendTemplate `json:"stockLegendTemplates"`
	Transactions         []ocf.Transaction          `json:"transactions"`

	// Keys holds the sequencer key of each transaction, index-aligned with
	// Transactions. It is diagnostic only and not serialized.
	Keys []sequencer.SortKey `json:"-"`
}

// New returns an empty manifest whose collections serialize as [].
func New() *Manifest {
	return &Manifest{
		StockClasses:         []*ocf.StockClass{},
		StockPlans:           []*ocf.StockPlan{},
		Stakeholders:         []*ocf.Stakeholder{},
		VestingTerms:         []*ocf.VestingTerms{},
		Valuations:           []*ocf.Valuation{},
		Documents:            []*ocf.Document{},
		StockLegendTemplates: []*ocf.StockLegendTemplate{},
		Transactions:         []ocf.Transaction{},
	}
}

// Len counts every entity in m.
func (m *Manifest) Len() int {
	n := len(m.StockClasses) + len(m.StockPlans) + len(m.Stakeholders) + len(m.VestingTerms) +
		len(m.Valuations) + len(m.Documents) + len(m.StockLegendTemplates) + len(m.Transactions)
	if m.Issuer != nil {
		n++
	}
	return n
}

// Skip records one entity left out of the manifest.
type Skip struct {
	ContractID string          `json:"contract_id,omitempty"`
	TemplateID string          `json:"template_id,omitempty"`
	ObjectID   string          `json:"object_id,omitempty"`
	Code       validation.Code `json:"code,omitempty"`
	Error      string          `json:"error"`
}

// Report summarizes one assembly run.
type Report struct {
	Total    int            `json:"total"`
	Included int            `json:"included"`
	Skipped  []Skip         `json:"skipped"`
	Counts   map[string]int `json:"counts"`
}

func newReport() *Report {
	return &Report{Skipped: []Skip{}, Counts: map[string]int{}}
}

// Assembler builds manifests. It is safe for concurrent use.
type Assembler struct {
	codec *converter.Codec
	log   *slog.Logger
}

// NewAssembler creates an Assembler decoding with codec.
func NewAssembler(codec *converter.Codec, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{codec: codec, log: log}
}

// entry is a decoded entity waiting to be filed.
type entry struct {
	obj        ocf.Object
	contractID string
	templateID string
	createdAt  *time.Time
}

// Assemble decodes records and builds the manifest. It never fails as a whole;
// contracts that cannot be decoded are skipped and reported. A nil record is
// reported as RESULT_NOT_FOUND.
func (a *Assembler) Assemble(records []*ledger.Record) (*Manifest, *Report) {
	report := newReport()
	entries := make([]entry, 0, len(records))
	for _, rec := range records {
		report.Total++
		if rec == nil {
			a.skip(report, Skip{}, validation.NewContractError(validation.CodeResultNotFound, "", "", "no ledger record"))
			continue
		}
		obj, err := a.codec.DecodeRecord(rec)
		if err != nil {
			a.skip(report, Skip{ContractID: rec.ContractID, TemplateID: rec.TemplateID}, err)
			continue
		}
		entries = append(entries, entry{obj: obj, contractID: rec.ContractID, templateID: rec.TemplateID, createdAt: rec.CreatedAt})
	}
	m := a.file(entries, report)
	return m, report
}

// AssembleObjects builds a manifest from already-decoded portable objects.
func (a *Assembler) AssembleObjects(objs []ocf.Object) (*Manifest, *Report) {
	report := newReport()
	entries := make([]entry, 0, len(objs))
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		report.Total++
		entries = append(entries, entry{obj: obj})
	}
	return a.file(entries, report), report
}

func (a *Assembler) file(entries []entry, report *Report) *Manifest {
	m := New()
	var events []sequencer.Event

	for _, e := range entries {
		base := Skip{ContractID: e.contractID, TemplateID: e.templateID, ObjectID: e.obj.ObjectID()}
		switch o := e.obj.(type) {
		case *ocf.Issuer:
			if m.Issuer != nil {
				a.skip(report, base, validation.NewValidationError("issuer", validation.CodeSchemaMismatch, o.ID,
					fmt.Sprintf("manifest already has issuer %s", m.Issuer.ID)))
				continue
			}
			m.Issuer = o
		case *ocf.StockClass:
			m.StockClasses = append(m.StockClasses, o)
		case *ocf.StockPlan:
			m.StockPlans = append(m.StockPlans, o)
		case *ocf.Stakeholder:
			m.Stakeholders = append(m.Stakeholders, o)
		case *ocf.VestingTerms:
			m.VestingTerms = append(m.VestingTerms, o)
		case *ocf.Valuation:
			m.Valuations = append(m.Valuations, o)
		case *ocf.Document:
			m.Documents = append(m.Documents, o)
		case *ocf.StockLegendTemplate:
			m.StockLegendTemplates = append(m.StockLegendTemplates, o)
		case ocf.Transaction:
			events = append(events, sequencer.Event{Tx: o, ContractID: e.contractID, CreatedAt: e.createdAt})
		default:
			a.skip(report, base, validation.NewValidationError("object_type", validation.CodeUnknownEnumValue,
				string(e.obj.Type()), "object has no manifest collection"))
			continue
		}
		report.Included++
		report.Counts[string(e.obj.Type())]++
	}

	for _, ev := range sequencer.Sort(events) {
		m.Transactions = append(m.Transactions, ev.Tx)
		m.Keys = append(m.Keys, sequencer.Key(ev))
	}
	return m
}

func (a *Assembler) skip(report *Report, s Skip, err error) {
	s.Code = validation.CodeOf(err)
	s.Error = err.Error()
	report.Skipped = append(report.Skipped, s)
	a.log.Warn("manifest: skipping entity",
		"contract_id", s.ContractID,
		"template_id", s.TemplateID,
		"code", s.Code,
		"error", s.Error)
}
