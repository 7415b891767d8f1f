package converter

import (
	"github.com/ginjaninja78/ocf-ledger-converter/internal/enums"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// =============================================================================
// ISSUER
// =============================================================================

func encodeIssuer(e *encoder, o *ocf.Issuer) ledger.IssuerData {
	out := ledger.IssuerData{
		Header:                        e.header(o.Header),
		LegalName:                     e.text("legal_name", o.LegalName),
		DBA:                           e.optText(o.DBA),
		FormationDate:                 e.date("formation_date", o.FormationDate),
		CountryOfFormation:            e.text("country_of_formation", o.CountryOfFormation),
		CountrySubdivisionOfFormation: e.optText(o.CountrySubdivisionOfFormation),
		TaxIDs:                        e.taxIDs("tax_ids", o.TaxIDs),
	}
	if o.Email != nil {
		m := e.email("email", *o.Email)
		out.Email = &m
	}
	if o.Phone != nil {
		p := e.phone("phone", *o.Phone)
		out.Phone = &p
	}
	out.Address = e.optAddress("address", o.Address)
	out.InitialSharesAuthorized = e.optInitialShares("initial_shares_authorized", o.InitialSharesAuthorized)
	return out
}

func decodeIssuer(d *decoder, r *ledger.IssuerData) *ocf.Issuer {
	out := &ocf.Issuer{
		Header:                        d.header(r.Header),
		LegalName:                     d.text("legal_name", r.LegalName),
		DBA:                           d.optText(r.DBA),
		FormationDate:                 d.date("formation_date", r.FormationDate),
		CountryOfFormation:            d.text("country_of_formation", r.CountryOfFormation),
		CountrySubdivisionOfFormation: d.optText(r.CountrySubdivisionOfFormation),
		TaxIDs:                        d.taxIDs("tax_ids", r.TaxIDs),
	}
	if r.Email != nil {
		m := d.email("email", *r.Email)
		out.Email = &m
	}
	if r.Phone != nil {
		p := d.phone("phone", *r.Phone)
		out.Phone = &p
	}
	out.Address = d.optAddress("address", r.Address)
	out.InitialSharesAuthorized = d.optInitialShares("initial_shares_authorized", r.InitialSharesAuthorized)
	return out
}

// =============================================================================
// STAKEHOLDER
// =============================================================================

func encodeStakeholder(e *encoder, o *ocf.Stakeholder) ledger.StakeholderData {
	return ledger.StakeholderData{
		Header:              e.header(o.Header),
		Name:                e.name("name", o.Name),
		StakeholderType:     e.enum("stakeholder_type", enums.StakeholderType, o.StakeholderType),
		IssuerAssignedID:    e.optText(o.IssuerAssignedID),
		CurrentRelationship: e.optEnum("current_relationship", enums.StakeholderRelationship, o.CurrentRelationship),
		CurrentStatus:       e.optEnum("current_status", enums.StakeholderStatus, o.CurrentStatus),
		PrimaryContact:      e.contactInfo("primary_contact", o.PrimaryContact),
		Addresses:           e.addresses("addresses", o.Addresses),
		TaxIDs:              e.taxIDs("tax_ids", o.TaxIDs),
	}
}

func decodeStakeholder(d *decoder, r *ledger.StakeholderData) *ocf.Stakeholder {
	return &ocf.Stakeholder{
		Header:              d.header(r.Header),
		Name:                d.name("name", r.Name),
		StakeholderType:     d.enum("stakeholder_type", enums.StakeholderType, r.StakeholderType),
		IssuerAssignedID:    d.optText(r.IssuerAssignedID),
		CurrentRelationship: d.optEnum("current_relationship", enums.StakeholderRelationship, r.CurrentRelationship),
		CurrentStatus:       d.optEnum("current_status", enums.StakeholderStatus, r.CurrentStatus),
		PrimaryContact:      d.contactInfo("primary_contact", r.PrimaryContact),
		Addresses:           d.addresses("addresses", r.Addresses),
		TaxIDs:              d.taxIDs("tax_ids", r.TaxIDs),
	}
}

// =============================================================================
// STOCK CLASS / STOCK PLAN / LEGEND
// =============================================================================

func encodeStockClass(e *encoder, o *ocf.StockClass) ledger.StockClassData {
	return ledger.StockClassData{
		Header:                        e.header(o.Header),
		Approvals:                     e.approvals(o.Approvals),
		Name:                          e.text("name", o.Name),
		ClassType:                     e.enum("class_type", enums.StockClassType, o.ClassType),
		DefaultIDPrefix:               e.text("default_id_prefix", o.DefaultIDPrefix),
		InitialSharesAuthorized:       e.initialShares("initial_shares_authorized", o.InitialSharesAuthorized),
		VotesPerShare:                 e.numeric("votes_per_share", o.VotesPerShare),
		ParValue:                      e.optMonetary("par_value", o.ParValue),
		PricePerShare:                 e.optMonetary("price_per_share", o.PricePerShare),
		Seniority:                     e.numeric("seniority", o.Seniority),
		ConversionRights:              e.conversionRights("conversion_rights", stockClassRights, o.ConversionRights),
		LiquidationPreferenceMultiple: e.optNumeric("liquidation_preference_multiple", o.LiquidationPreferenceMultiple),
		ParticipationCapMultiple:      e.optNumeric("participation_cap_multiple", o.ParticipationCapMultiple),
	}
}

func decodeStockClass(d *decoder, r *ledger.StockClassData) *ocf.StockClass {
	return &ocf.StockClass{
		Header:                        d.header(r.Header),
		Approvals:                     d.approvals(r.Approvals),
		Name:                          d.text("name", r.Name),
		ClassType:                     d.enum("class_type", enums.StockClassType, r.ClassType),
		DefaultIDPrefix:               d.text("default_id_prefix", r.DefaultIDPrefix),
		InitialSharesAuthorized:       d.initialShares("initial_shares_authorized", r.InitialSharesAuthorized),
		VotesPerShare:                 d.numeric("votes_per_share", r.VotesPerShare),
		ParValue:                      d.optMonetary("par_value", r.ParValue),
		PricePerShare:                 d.optMonetary("price_per_share", r.PricePerShare),
		Seniority:                     d.numeric("seniority", r.Seniority),
		ConversionRights:              d.conversionRights("conversion_rights", stockClassRights, r.ConversionRights),
		LiquidationPreferenceMultiple: d.optNumeric("liquidation_preference_multiple", r.LiquidationPreferenceMultiple),
		ParticipationCapMultiple:      d.optNumeric("participation_cap_multiple", r.ParticipationCapMultiple),
	}
}

func encodeStockPlan(e *encoder, o *ocf.StockPlan) ledger.StockPlanData {
	return ledger.StockPlanData{
		Header:                      e.header(o.Header),
		Approvals:                   e.approvals(o.Approvals),
		PlanName:                    e.text("plan_name", o.PlanName),
		InitialSharesReserved:       e.numeric("initial_shares_reserved", o.InitialSharesReserved),
		DefaultCancellationBehavior: e.optEnum("default_cancellation_behavior", enums.StockPlanCancellationBehavior, o.DefaultCancellationBehavior),
		StockClassIDs:               e.ids("stock_class_ids", o.StockClassIDs, false),
	}
}

func decodeStockPlan(d *decoder, r *ledger.StockPlanData) *ocf.StockPlan {
	return &ocf.StockPlan{
		Header:                      d.header(r.Header),
		Approvals:                   d.approvals(r.Approvals),
		PlanName:                    d.text("plan_name", r.PlanName),
		InitialSharesReserved:       d.numeric("initial_shares_reserved", r.InitialSharesReserved),
		DefaultCancellationBehavior: d.optEnum("default_cancellation_behavior", enums.StockPlanCancellationBehavior, r.DefaultCancellationBehavior),
		StockClassIDs:               d.ids("stock_class_ids", r.StockClassIDs, false),
	}
}

func encodeStockLegendTemplate(e *encoder, o *ocf.StockLegendTemplate) ledger.StockLegendTemplateData {
	return ledger.StockLegendTemplateData{
		Header: e.header(o.Header),
		Name:   e.text("name", o.Name),
		Text:   e.text("text", o.Text),
	}
}

func decodeStockLegendTemplate(d *decoder, r *ledger.StockLegendTemplateData) *ocf.StockLegendTemplate {
	return &ocf.StockLegendTemplate{
		Header: d.header(r.Header),
		Name:   d.text("name", r.Name),
		Text:   d.text("text", r.Text),
	}
}

// =============================================================================
// VESTING TERMS / VALUATION / DOCUMENT
// =============================================================================

func encodeVestingTerms(e *encoder, o *ocf.VestingTerms) ledger.VestingTermsData {
	return ledger.VestingTermsData{
		Header:            e.header(o.Header),
		Name:              e.text("name", o.Name),
		Description:       e.text("description", o.Description),
		AllocationType:    e.enum("allocation_type", enums.AllocationType, o.AllocationType),
		VestingConditions: e.vestingConditions("vesting_conditions", o.VestingConditions),
	}
}

func decodeVestingTerms(d *decoder, r *ledger.VestingTermsData) *ocf.VestingTerms {
	return &ocf.VestingTerms{
		Header:            d.header(r.Header),
		Name:              d.text("name", r.Name),
		Description:       d.text("description", r.Description),
		AllocationType:    d.enum("allocation_type", enums.AllocationType, r.AllocationType),
		VestingConditions: d.vestingConditions("vesting_conditions", r.VestingConditions),
	}
}

func encodeValuation(e *encoder, o *ocf.Valuation) ledger.ValuationData {
	return ledger.ValuationData{
		Header:        e.header(o.Header),
		Approvals:     e.approvals(o.Approvals),
		Provider:      e.optText(o.Provider),
		StockClassID:  e.text("stock_class_id", o.StockClassID),
		PricePerShare: e.monetary("price_per_share", o.PricePerShare),
		EffectiveDate: e.date("effective_date", o.EffectiveDate),
		ValuationType: e.enum("valuation_type", enums.ValuationType, o.ValuationType),
	}
}

func decodeValuation(d *decoder, r *ledger.ValuationData) *ocf.Valuation {
	return &ocf.Valuation{
		Header:        d.header(r.Header),
		Approvals:     d.approvals(r.Approvals),
		Provider:      d.optText(r.Provider),
		StockClassID:  d.text("stock_class_id", r.StockClassID),
		PricePerShare: d.monetary("price_per_share", r.PricePerShare),
		EffectiveDate: d.date("effective_date", r.EffectiveDate),
		ValuationType: d.enum("valuation_type", enums.ValuationType, r.ValuationType),
	}
}

// encodeDocument requires exactly one of path and uri.
func encodeDocument(e *encoder, o *ocf.Document) ledger.DocumentData {
	out := ledger.DocumentData{Header: e.header(o.Header)}
	switch {
	case !e.ok():
	case o.Path == "" && o.URI == "":
		e.missing("path")
	case o.Path != "" && o.URI != "":
		e.fail("uri", validation.CodeInvalidFormat, o.URI, "path and uri are mutually exclusive")
	}
	out.Path = e.optText(o.Path)
	out.URI = e.optText(o.URI)
	out.MD5 = e.text("md5", o.MD5)
	out.RelatedObjects = e.objectRefs("related_objects", o.RelatedObjects)
	return out
}

func decodeDocument(d *decoder, r *ledger.DocumentData) *ocf.Document {
	return &ocf.Document{
		Header:         d.header(r.Header),
		Path:           d.optText(r.Path),
		URI:            d.optText(r.URI),
		MD5:            d.text("md5", r.MD5),
		RelatedObjects: d.objectRefs("related_objects", r.RelatedObjects),
	}
}
