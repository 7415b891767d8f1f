package converter

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
)

// Fixture bodies keyed by object type. Values are written in canonical form
// (minimal numerics, no empty strings) so that a round trip reproduces them
// byte for byte.

const (
	usd        = `{"amount":"1.25","currency":"USD"}`
	issuanceKV = `"security_id":"sec-1","custom_id":"CS-1","stakeholder_id":"sh-1","board_approval_date":"2024-01-02",` +
		`"consideration_text":"cash","security_law_exemptions":[{"description":"Reg D","jurisdiction":"US"}]`
	ratioMech = `{"type":"RATIO_CONVERSION","conversion_price":{"amount":"1.5","currency":"USD"},` +
		`"ratio":{"numerator":"3","denominator":"2"},"rounding_type":"FLOOR"}`
	safeMech = `{"type":"SAFE_CONVERSION","conversion_mfn":true,"conversion_discount":"0.2",` +
		`"conversion_valuation_cap":{"amount":"10000000","currency":"USD"},"conversion_timing":"POST_MONEY",` +
		`"capitalization_definition":{"include_stock_class_ids":["sc-common"]},"exit_multiple":{"numerator":"2","denominator":"1"}}`
	convertibleTrigger = `{"type":"AUTOMATIC_ON_CONDITION","trigger_id":"t1","nickname":"Next equity round",` +
		`"conversion_right":{"type":"CONVERTIBLE_CONVERSION_RIGHT","conversion_mechanism":` + safeMech + `,"converts_to_future_round":true},` +
		`"trigger_condition":"Qualified financing"}`
	warrantTrigger = `{"type":"ELECTIVE_IN_RANGE","trigger_id":"w1",` +
		`"conversion_right":{"type":"WARRANT_CONVERSION_RIGHT","conversion_mechanism":` + ratioMech + `,"converts_to_stock_class_id":"sc-common"},` +
		`"start_date":"2024-01-01","end_date":"2030-12-31"}`
	vestingConditions = `[` +
		`{"id":"start","portion":{"numerator":"0","denominator":"48"},"trigger":{"type":"VESTING_START_DATE"},"next_condition_ids":["cliff"]},` +
		`{"id":"cliff","description":"1 year cliff","portion":{"numerator":"12","denominator":"48"},` +
		`"trigger":{"type":"VESTING_SCHEDULE_RELATIVE","period":{"length":12,"type":"MONTHS","occurrences":1,"day_of_month":"VESTING_START_DAY_OR_LAST_DAY_OF_MONTH"},"relative_to_condition_id":"start"},` +
		`"next_condition_ids":["monthly"]},` +
		`{"id":"monthly","portion":{"numerator":"36","denominator":"48","remainder":true},` +
		`"trigger":{"type":"VESTING_SCHEDULE_RELATIVE","period":{"length":1,"type":"MONTHS","occurrences":36,"day_of_month":"01","cliff_installment":0},"relative_to_condition_id":"cliff"}},` +
		`{"id":"daily","quantity":"10","trigger":{"type":"VESTING_SCHEDULE_RELATIVE","period":{"length":30,"type":"DAYS","occurrences":2},"relative_to_condition_id":"start"}},` +
		`{"id":"abs","quantity":"100","trigger":{"type":"VESTING_SCHEDULE_ABSOLUTE","date":"2025-06-30"}},` +
		`{"id":"milestone","quantity":"50","trigger":{"type":"VESTING_EVENT"}}]`
)

var fixtureBodies = map[ocf.ObjectType]string{
	ocf.ObjectIssuer: `"legal_name":"Acme Robotics, Inc.","dba":"Acme","formation_date":"2020-03-01","country_of_formation":"US",` +
		`"country_subdivision_of_formation":"DE","tax_ids":[{"country":"US","tax_id":"12-3456789"}],` +
		`"email":{"email_type":"BUSINESS","email_address":"legal@acme.test"},"phone":{"phone_type":"BUSINESS","phone_number":"+1 555 0100"},` +
		`"address":{"address_type":"LEGAL","street_suite":"1 Main St","city":"Wilmington","country_subdivision":"DE","country":"US","postal_code":"19801"},` +
		`"initial_shares_authorized":"10000000"`,
	ocf.ObjectStakeholder: `"name":{"legal_name":"Ada Lovelace","first_name":"Ada","last_name":"Lovelace"},"stakeholder_type":"INDIVIDUAL",` +
		`"issuer_assigned_id":"E-7","current_relationship":"FOUNDER","current_status":"ACTIVE",` +
		`"primary_contact":{"name":{"legal_name":"Ada Lovelace"},"phone_numbers":[{"phone_type":"MOBILE","phone_number":"+1 555 0101"}],` +
		`"emails":[{"email_type":"PERSONAL","email_address":"ada@example.test"}],"title":"CEO"},` +
		`"addresses":[{"address_type":"CONTACT","city":"London","country":"GB"}],"tax_ids":[{"country":"GB","tax_id":"AB123456C"}]`,
	ocf.ObjectStockClass: `"board_approval_date":"2023-05-01","stockholder_approval_date":"2023-05-02","name":"Series A Preferred",` +
		`"class_type":"PREFERRED","default_id_prefix":"PA-","initial_shares_authorized":"UNLIMITED","votes_per_share":"1",` +
		`"par_value":{"amount":"0.0001","currency":"USD"},"price_per_share":{"amount":"1.5","currency":"USD"},"seniority":"2",` +
		`"conversion_rights":[{"type":"STOCK_CLASS_CONVERSION_RIGHT","conversion_mechanism":` + ratioMech + `,"converts_to_stock_class_id":"sc-common"}],` +
		`"liquidation_preference_multiple":"1","participation_cap_multiple":"3"`,
	ocf.ObjectStockPlan: `"board_approval_date":"2023-01-10","plan_name":"2023 Equity Incentive Plan","initial_shares_reserved":"1500000",` +
		`"default_cancellation_behavior":"RETURN_TO_POOL","stock_class_ids":["sc-common"]`,
	ocf.ObjectStockLegendTemplate: `"name":"Rule 144","text":"THESE SECURITIES HAVE NOT BEEN REGISTERED."`,
	ocf.ObjectVestingTerms: `"name":"4y monthly, 1y cliff","description":"Standard schedule","allocation_type":"CUMULATIVE_ROUNDING",` +
		`"vesting_conditions":` + vestingConditions,
	ocf.ObjectValuation: `"board_approval_date":"2024-01-05","provider":"Acme Valuations","stock_class_id":"sc-common",` +
		`"price_per_share":{"amount":"0.42","currency":"USD"},"effective_date":"2024-01-01","valuation_type":"409A"`,
	ocf.ObjectDocument: `"path":"docs/board-consent.pdf","md5":"d41d8cd98f00b204e9800998ecf8427e",` +
		`"related_objects":[{"object_type":"STOCK_CLASS","object_id":"sc-common"}]`,

	ocf.TxStockIssuance: issuanceKV + `,"stock_class_id":"sc-common","stock_plan_id":"plan-1",` +
		`"share_numbers_issued":[{"starting_share_number":"1","ending_share_number":"1000"}],"share_price":{"amount":"0.01","currency":"USD"},` +
		`"quantity":"1000","vesting_terms_id":"vt-1","vestings":[{"date":"2025-01-15","amount":"250"}],"cost_basis":{"amount":"10","currency":"USD"},` +
		`"stock_legend_ids":["legend-1"],"issuance_type":"FOUNDERS_STOCK"`,
	ocf.TxEquityCompensationIssuance: equityCompensation,
	ocf.TxPlanSecurityIssuance:       equityCompensation,
	ocf.TxConvertibleIssuance: issuanceKV + `,"investment_amount":{"amount":"250000","currency":"USD"},"convertible_type":"SAFE",` +
		`"conversion_triggers":[` + convertibleTrigger + `],"seniority":1,"pro_rata":"0.5"`,
	ocf.TxWarrantIssuance: issuanceKV + `,"quantity":"10000","quantity_source":"INSTRUMENT_FIXED","exercise_price":` + usd + `,` +
		`"purchase_price":{"amount":"100","currency":"USD"},"exercise_triggers":[` + warrantTrigger + `],` +
		`"warrant_expiration_date":"2030-12-31","vesting_terms_id":"vt-1"`,

	ocf.TxStockAcceptance:              acceptance,
	ocf.TxEquityCompensationAcceptance: acceptance,
	ocf.TxPlanSecurityAcceptance:       acceptance,
	ocf.TxConvertibleAcceptance:        acceptance,
	ocf.TxWarrantAcceptance:            acceptance,

	ocf.TxStockRetraction:              retraction,
	ocf.TxEquityCompensationRetraction: retraction,
	ocf.TxPlanSecurityRetraction:       retraction,
	ocf.TxConvertibleRetraction:        retraction,
	ocf.TxWarrantRetraction:            retraction,

	ocf.TxStockCancellation:              cancellation,
	ocf.TxEquityCompensationCancellation: cancellation,
	ocf.TxPlanSecurityCancellation:       cancellation,
	ocf.TxWarrantCancellation:            cancellation,
	ocf.TxConvertibleCancellation: `"security_id":"sec-1","amount":{"amount":"50000","currency":"USD"},"reason_text":"Repaid",` +
		`"balance_security_id":"sec-2"`,

	ocf.TxStockTransfer:              transfer,
	ocf.TxEquityCompensationTransfer: transfer,
	ocf.TxPlanSecurityTransfer:       transfer,
	ocf.TxWarrantTransfer:            transfer,
	ocf.TxConvertibleTransfer: `"security_id":"sec-1","amount":{"amount":"50000","currency":"USD"},"resulting_security_ids":["sec-3"],` +
		`"balance_security_id":"sec-2","consideration_text":"$50,000"`,

	ocf.TxEquityCompensationExercise: exercise,
	ocf.TxPlanSecurityExercise:       exercise,
	ocf.TxWarrantExercise:            exercise,
	ocf.TxConvertibleConversion: `"security_id":"sec-1","reason_text":"Series A closing","trigger_id":"t1","resulting_security_ids":["sec-3"],` +
		`"quantity_converted":"250000","capitalization_definition":{"include_stock_class_ids":["sc-common"],"exclude_security_ids":["sec-9"]}`,
	ocf.TxStockConversion: `"security_id":"sec-1","quantity_converted":"100","resulting_security_ids":["sec-3"],"balance_security_id":"sec-2"`,

	ocf.TxStockRepurchase:             `"security_id":"sec-1","quantity":"100","price":` + usd + `,"consideration_text":"cash"`,
	ocf.TxStockReissuance:             `"security_id":"sec-1","resulting_security_ids":["sec-3","sec-4"],"split_transaction_id":"split-1","reason_text":"split"`,
	ocf.TxStockConsolidation:          `"security_ids":["sec-1","sec-2"],"resulting_security_id":"sec-5","reason_text":"cleanup"`,
	ocf.TxEquityCompensationRelease:   release,
	ocf.TxPlanSecurityRelease:         release,
	ocf.TxEquityCompensationRepricing: `"security_id":"sec-1","new_exercise_price":{"amount":"0.3","currency":"USD"}`,
	ocf.TxStockClassSplit: `"board_approval_date":"2024-01-10","stock_class_id":"sc-common",` +
		`"split_ratio":{"numerator":"2","denominator":"1"}`,
	ocf.TxStockPlanReturnToPool:     `"security_id":"sec-1","stock_plan_id":"plan-1","quantity":"100","reason_text":"Forfeited"`,
	ocf.TxIssuerAuthorizedSharesAdj: `"board_approval_date":"2024-01-10","issuer_id":"issuer-1","new_shares_authorized":"20000000"`,
	ocf.TxStockClassAuthorizedSharesAdj: `"stockholder_approval_date":"2024-01-11","stock_class_id":"sc-common",` +
		`"new_shares_authorized":"12000000"`,
	ocf.TxStockPlanPoolAdjustment: `"board_approval_date":"2024-01-10","stock_plan_id":"plan-1","shares_reserved":"2000000"`,
	ocf.TxStockClassConversionRatioAdj: `"board_approval_date":"2024-01-10","stock_class_id":"sc-pref",` +
		`"new_ratio_conversion_mechanism":` + ratioMech,

	ocf.TxVestingStart:        `"security_id":"sec-1","vesting_condition_id":"start"`,
	ocf.TxVestingEvent:        `"security_id":"sec-1","vesting_condition_id":"milestone"`,
	ocf.TxVestingAcceleration: `"security_id":"sec-1","quantity":"100","reason_text":"Change of control"`,
	ocf.TxStakeholderRelationshipChangeEvent: `"stakeholder_id":"sh-1","relationship_started":"EMPLOYEE",` +
		`"relationship_ended":"CONSULTANT"`,
	ocf.TxStakeholderStatusChangeEvent: `"stakeholder_id":"sh-1","new_status":"LEAVE_OF_ABSENCE"`,
}

const (
	equityCompensation = issuanceKV + `,"compensation_type":"OPTION_ISO","quantity":"5000","exercise_price":` + usd + `,` +
		`"early_exercisable":false,"stock_plan_id":"plan-1","stock_class_id":"sc-common","vesting_terms_id":"vt-1",` +
		`"expiration_date":"2034-01-15","termination_exercise_windows":[{"reason":"VOLUNTARY_OTHER","period":90,"period_type":"DAYS"}]`
	acceptance   = `"security_id":"sec-1"`
	retraction   = `"security_id":"sec-1","reason_text":"Issued in error"`
	cancellation = `"security_id":"sec-1","quantity":"100","reason_text":"Forfeited","balance_security_id":"sec-2"`
	transfer     = `"security_id":"sec-1","quantity":"100","resulting_security_ids":["sec-3"],"balance_security_id":"sec-2",` +
		`"consideration_text":"$100"`
	exercise = `"security_id":"sec-1","quantity":"100","resulting_security_ids":["sec-3"],"consideration_text":"cash","trigger_id":"t1"`
	release  = `"security_id":"sec-1","quantity":"10","release_price":` + usd + `,"settlement_date":"2024-02-01",` +
		`"resulting_security_ids":["sec-3"]`
)

// fixture returns a complete portable JSON object of type t.
func fixture(t ocf.ObjectType) string {
	body, ok := fixtureBodies[t]
	if !ok {
		panic("no fixture for " + string(t))
	}
	id := strings.ToLower(strings.ReplaceAll(t.EntityName(), "_", "-")) + "-1"
	head := fmt.Sprintf(`"object_type":%q,"id":%q,"comments":["imported"]`, t, id)
	if t.IsTransaction() {
		head += `,"date":"2024-01-15"`
	}
	return "{" + head + "," + body + "}"
}
