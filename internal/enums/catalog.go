package enums

import "fmt"

// Stakeholders.
var (
	StakeholderType = define("stakeholder type",
		pair{"INDIVIDUAL", "OcfStakeholderTypeIndividual"},
		pair{"INSTITUTION", "OcfStakeholderTypeInstitution"},
	)

	StakeholderRelationship = define("stakeholder relationship",
		pair{"ADVISOR", "OcfRelAdvisor"},
		pair{"BOARD_MEMBER", "OcfRelBoardMember"},
		pair{"CONSULTANT", "OcfRelConsultant"},
		pair{"EMPLOYEE", "OcfRelEmployee"},
		pair{"EX_ADVISOR", "OcfRelExAdvisor"},
		pair{"EX_CONSULTANT", "OcfRelExConsultant"},
		pair{"EX_EMPLOYEE", "OcfRelExEmployee"},
		pair{"EXECUTIVE", "OcfRelExecutive"},
		pair{"FOUNDER", "OcfRelFounder"},
		pair{"INVESTOR", "OcfRelInvestor"},
		pair{"NON_US_EMPLOYEE", "OcfRelNonUsEmployee"},
		pair{"OFFICER", "OcfRelOfficer"},
		pair{"OTHER", "OcfRelOther"},
	)

	StakeholderStatus = define("stakeholder status",
		pair{"ACTIVE", "OcfStakeholderStatusActive"},
		pair{"LEAVE_OF_ABSENCE", "OcfStakeholderStatusLeaveOfAbsence"},
		pair{"TERMINATION_VOLUNTARY_OTHER", "OcfStakeholderStatusTerminationVoluntaryOther"},
		pair{"TERMINATION_VOLUNTARY_GOOD_CAUSE", "OcfStakeholderStatusTerminationVoluntaryGoodCause"},
		pair{"TERMINATION_VOLUNTARY_RETIREMENT", "OcfStakeholderStatusTerminationVoluntaryRetirement"},
		pair{"TERMINATION_INVOLUNTARY_OTHER", "OcfStakeholderStatusTerminationInvoluntaryOther"},
		pair{"TERMINATION_INVOLUNTARY_DEATH", "OcfStakeholderStatusTerminationInvoluntaryDeath"},
		pair{"TERMINATION_INVOLUNTARY_DISABILITY", "OcfStakeholderStatusTerminationInvoluntaryDisability"},
		pair{"TERMINATION_INVOLUNTARY_WITH_CAUSE", "OcfStakeholderStatusTerminationInvoluntaryWithCause"},
	)
)

// Contact details.
var (
	PhoneType = define("phone type",
		pair{"HOME", "OcfPhoneHome"},
		pair{"MOBILE", "OcfPhoneMobile"},
		pair{"BUSINESS", "OcfPhoneBusiness"},
	)

	EmailType = define("email type",
		pair{"PERSONAL", "OcfEmailTypePersonal"},
		pair{"BUSINESS", "OcfEmailTypeBusiness"},
		pair{"OTHER", "OcfEmailTypeOther"},
	)

	AddressType = define("address type",
		pair{"LEGAL", "OcfAddressTypeLegal"},
		pair{"CONTACT", "OcfAddressTypeContact"},
		pair{"OTHER", "OcfAddressTypeOther"},
	)
)

// Stock classes, plans and issuances.
var (
	StockClassType = define("stock class type",
		pair{"COMMON", "OcfStockClassTypeCommon"},
		pair{"PREFERRED", "OcfStockClassTypePreferred"},
	)

	StockPlanCancellationBehavior = define("stock plan cancellation behavior",
		pair{"RETIRE", "OcfPlanCancelRetire"},
		pair{"RETURN_TO_POOL", "OcfPlanCancelReturnToPool"},
		pair{"HOLD_AS_CAPITAL_STOCK", "OcfPlanCancelHoldAsCapitalStock"},
		pair{"DEFINED_PER_PLAN_SECURITY", "OcfPlanCancelDefinedPerPlanSecurity"},
	)

	StockIssuanceType = define("stock issuance type",
		pair{"RSA", "OcfStockIssuanceRSA"},
		pair{"FOUNDERS_STOCK", "OcfStockIssuanceFounders"},
	)

	// AuthorizedShares holds the special (non-numeric) values of an
	// initial-shares-authorized field.
	AuthorizedShares = define("authorized shares",
		pair{"UNLIMITED", "OcfAuthorizedSharesUnlimited"},
		pair{"NOT_APPLICABLE", "OcfAuthorizedSharesNotApplicable"},
	)

	ValuationType = define("valuation type",
		pair{"409A", "OcfValuationType409A"},
	)
)

// Equity compensation.
var (
	CompensationType = define("compensation type",
		pair{"OPTION_NSO", "OcfCompensationTypeOptionNSO"},
		pair{"OPTION_ISO", "OcfCompensationTypeOptionISO"},
		pair{"OPTION", "OcfCompensationTypeOption"},
		pair{"RSU", "OcfCompensationTypeRSU"},
		pair{"CSAR", "OcfCompensationTypeCSAR"},
		pair{"SSAR", "OcfCompensationTypeSSAR"},
	)

	TerminationWindowReason = define("termination window reason",
		pair{"VOLUNTARY_OTHER", "OcfTermVoluntaryOther"},
		pair{"VOLUNTARY_GOOD_CAUSE", "OcfTermVoluntaryGoodCause"},
		pair{"VOLUNTARY_RETIREMENT", "OcfTermVoluntaryRetirement"},
		pair{"INVOLUNTARY_OTHER", "OcfTermInvoluntaryOther"},
		pair{"INVOLUNTARY_DEATH", "OcfTermInvoluntaryDeath"},
		pair{"INVOLUNTARY_DISABILITY", "OcfTermInvoluntaryDisability"},
		pair{"INVOLUNTARY_WITH_CAUSE", "OcfTermInvoluntaryWithCause"},
	)

	PeriodType = define("period type",
		pair{"DAYS", "OcfPeriodDays"},
		pair{"MONTHS", "OcfPeriodMonths"},
	)

	QuantitySourceType = define("quantity source",
		pair{"HUMAN_ESTIMATED", "OcfQuantityHumanEstimated"},
		pair{"MACHINE_ESTIMATED", "OcfQuantityMachineEstimated"},
		pair{"UNSPECIFIED", "OcfQuantityUnspecified"},
		pair{"INSTRUMENT_FIXED", "OcfQuantityInstrumentFixed"},
		pair{"INSTRUMENT_MAX", "OcfQuantityInstrumentMax"},
		pair{"INSTRUMENT_MIN", "OcfQuantityInstrumentMin"},
	)
)

// Vesting.
var (
	AllocationType = define("allocation type",
		pair{"CUMULATIVE_ROUNDING", "OcfAllocationCumulativeRounding"},
		pair{"CUMULATIVE_ROUND_DOWN", "OcfAllocationCumulativeRoundDown"},
		pair{"FRONT_LOADED", "OcfAllocationFrontLoaded"},
		pair{"BACK_LOADED", "OcfAllocationBackLoaded"},
		pair{"FRONT_LOADED_TO_SINGLE_TRANCHE", "OcfAllocationFrontLoadedToSingleTranche"},
		pair{"BACK_LOADED_TO_SINGLE_TRANCHE", "OcfAllocationBackLoadedToSingleTranche"},
		pair{"FRACTIONAL", "OcfAllocationFractional"},
	)

	VestingTriggerType = define("vesting trigger type",
		pair{"VESTING_START_DATE", "OcfVestingStartTrigger"},
		pair{"VESTING_SCHEDULE_ABSOLUTE", "OcfVestingScheduleAbsoluteTrigger"},
		pair{"VESTING_SCHEDULE_RELATIVE", "OcfVestingScheduleRelativeTrigger"},
		pair{"VESTING_EVENT", "OcfVestingEventTrigger"},
	)

	VestingPeriodType = define("vesting period type",
		pair{"DAYS", "OcfVestingPeriodDays"},
		pair{"MONTHS", "OcfVestingPeriodMonths"},
	)

	VestingDayOfMonth = define("vesting day of month", vestingDays()...)
)

func vestingDays() []pair {
	days := make([]pair, 0, 32)
	for d := 1; d <= 28; d++ {
		days = append(days, pair{fmt.Sprintf("%02d", d), fmt.Sprintf("OcfVestingDay%02d", d)})
	}
	return append(days,
		pair{"29_OR_LAST_DAY_OF_MONTH", "OcfVestingDay29OrLast"},
		pair{"30_OR_LAST_DAY_OF_MONTH", "OcfVestingDay30OrLast"},
		pair{"31_OR_LAST_DAY_OF_MONTH", "OcfVestingDay31OrLast"},
		pair{"VESTING_START_DAY_OR_LAST_DAY_OF_MONTH", "OcfVestingStartDayOrLast"},
	)
}

// Convertibles, warrants and conversion rights.
var (
	ConvertibleType = define("convertible type",
		pair{"NOTE", "OcfConvertibleNote"},
		pair{"SAFE", "OcfConvertibleSafe"},
		pair{"SECURITY", "OcfConvertibleSecurity"},
	)

	ConversionTriggerType = define("conversion trigger type",
		pair{"AUTOMATIC_ON_CONDITION", "OcfTriggerAutomaticOnCondition"},
		pair{"AUTOMATIC_ON_DATE", "OcfTriggerAutomaticOnDate"},
		pair{"ELECTIVE_IN_RANGE", "OcfTriggerElectiveInRange"},
		pair{"ELECTIVE_ON_CONDITION", "OcfTriggerElectiveOnCondition"},
		pair{"ELECTIVE_AT_WILL", "OcfTriggerElectiveAtWill"},
		pair{"UNSPECIFIED", "OcfTriggerUnspecified"},
	)

	RoundingType = define("rounding type",
		pair{"CEILING", "OcfRoundingCeiling"},
		pair{"FLOOR", "OcfRoundingFloor"},
		pair{"NORMAL", "OcfRoundingNormal"},
	)

	ConversionTiming = define("conversion timing",
		pair{"PRE_MONEY", "OcfConversionTimingPreMoney"},
		pair{"POST_MONEY", "OcfConversionTimingPostMoney"},
	)

	DayCountConvention = define("day count convention",
		pair{"ACTUAL_365", "OcfDayCountActual365"},
		pair{"30_360", "OcfDayCount30_360"},
	)

	InterestPayoutType = define("interest payout",
		pair{"DEFERRED", "OcfInterestPayoutDeferred"},
		pair{"CASH", "OcfInterestPayoutCash"},
	)

	InterestAccrualPeriod = define("interest accrual period",
		pair{"DAILY", "OcfAccrualDaily"},
		pair{"MONTHLY", "OcfAccrualMonthly"},
		pair{"QUARTERLY", "OcfAccrualQuarterly"},
		pair{"SEMI_ANNUAL", "OcfAccrualSemiAnnual"},
		pair{"ANNUAL", "OcfAccrualAnnual"},
	)

	ValuationFormulaType = define("valuation formula type",
		pair{"FIXED", "OcfValuationFormulaFixed"},
		pair{"ACTUAL", "OcfValuationFormulaActual"},
		pair{"CAP", "OcfValuationFormulaCap"},
	)

	CompoundingType = define("compounding type",
		pair{"COMPOUNDING", "OcfCompounding"},
		pair{"SIMPLE", "OcfSimple"},
	)

	ConvertibleMechanism = define("convertible conversion mechanism",
		pair{"SAFE_CONVERSION", "OcfConvMechSafe"},
		pair{"CONVERTIBLE_NOTE_CONVERSION", "OcfConvMechNote"},
		pair{"CUSTOM_CONVERSION", "OcfConvMechCustom"},
		pair{"FIXED_AMOUNT_CONVERSION", "OcfConvMechFixedAmount"},
		pair{"PERCENT_CAPITALIZATION_CONVERSION", "OcfConvMechPercentCapitalization"},
		pair{"PPS_BASED_CONVERSION", "OcfConvMechPpsBased"},
	)

	WarrantMechanism = define("warrant conversion mechanism",
		pair{"CUSTOM_CONVERSION", "OcfWarrantMechCustom"},
		pair{"FIXED_AMOUNT_CONVERSION", "OcfWarrantMechFixedAmount"},
		pair{"PERCENT_CAPITALIZATION_CONVERSION", "OcfWarrantMechPercentCapitalization"},
		pair{"PPS_BASED_CONVERSION", "OcfWarrantMechPpsBased"},
		pair{"VALUATION_BASED_CONVERSION", "OcfWarrantMechValuationBased"},
		pair{"RATIO_CONVERSION", "OcfWarrantMechRatio"},
	)

	StockClassMechanism = define("stock class conversion mechanism",
		pair{"RATIO_CONVERSION", "OcfStockClassMechRatio"},
	)
)
