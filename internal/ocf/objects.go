package ocf

// Object is any portable object or transaction.
type Object interface {
	Type() ObjectType
	ObjectID() string
}

// Transaction is an Object with a calendar date, ordered by the sequencer.
type Transaction interface {
	Object
	TxDate() string
}

// Header carries the fields common to every portable object.
type Header struct {
	ObjectType ObjectType `json:"object_type"`
	ID         string     `json:"id"`
	Comments   []string   `json:"comments,omitempty"`
}

func (h Header) Type() ObjectType { return h.ObjectType }
func (h Header) ObjectID() string { return h.ID }

// TxHeader is the Header of a transaction.
type TxHeader struct {
	Header
	Date string `json:"date"`
}

func (h TxHeader) TxDate() string { return h.Date }

// SecurityRef is embedded by transactions scoped to a single security.
type SecurityRef struct {
	SecurityID string `json:"security_id"`
}

func (s SecurityRef) ScopedSecurityID() string { return s.SecurityID }

// SecurityIDOf returns the security a transaction applies to, or "" when it is
// not scoped to one security.
func SecurityIDOf(tx Transaction) string {
	if s, ok := tx.(interface{ ScopedSecurityID() string }); ok {
		return s.ScopedSecurityID()
	}
	return ""
}

// Approvals holds the optional board / stockholder approval dates.
type Approvals struct {
	BoardApprovalDate       string `json:"board_approval_date,omitempty"`
	StockholderApprovalDate string `json:"stockholder_approval_date,omitempty"`
}

// =============================================================================
// CORE OBJECTS
// =============================================================================

type Issuer struct {
	Header
	LegalName                     string           `json:"legal_name"`
	DBA                           string           `json:"dba,omitempty"`
	FormationDate                 string           `json:"formation_date"`
	CountryOfFormation            string           `json:"country_of_formation"`
	CountrySubdivisionOfFormation string           `json:"country_subdivision_of_formation,omitempty"`
	TaxIDs                        []TaxID          `json:"tax_ids,omitempty"`
	Email                         *Email           `json:"email,omitempty"`
	Phone                         *Phone           `json:"phone,omitempty"`
	Address                       *Address         `json:"address,omitempty"`
	InitialSharesAuthorized       SharesAuthorized `json:"initial_shares_authorized,omitempty"`
}

type Stakeholder struct {
	Header
	Name                Name         `json:"name"`
	StakeholderType     string       `json:"stakeholder_type"`
	IssuerAssignedID    string       `json:"issuer_assigned_id,omitempty"`
	CurrentRelationship string       `json:"current_relationship,omitempty"`
	CurrentStatus       string       `json:"current_status,omitempty"`
	PrimaryContact      *ContactInfo `json:"primary_contact,omitempty"`
	Addresses           []Address    `json:"addresses,omitempty"`
	TaxIDs              []TaxID      `json:"tax_ids,omitempty"`
}

type StockClass struct {
	Header
	Approvals
	Name                          string            `json:"name"`
	ClassType                     string            `json:"class_type"`
	DefaultIDPrefix               string            `json:"default_id_prefix"`
	InitialSharesAuthorized       SharesAuthorized  `json:"initial_shares_authorized"`
	VotesPerShare                 Numeric           `json:"votes_per_share"`
	ParValue                      *Monetary         `json:"par_value,omitempty"`
	PricePerShare                 *Monetary         `json:"price_per_share,omitempty"`
	Seniority                     Numeric           `json:"seniority"`
	ConversionRights              []ConversionRight `json:"conversion_rights,omitempty"`
	LiquidationPreferenceMultiple Numeric           `json:"liquidation_preference_multiple,omitempty"`
	ParticipationCapMultiple      Numeric           `json:"participation_cap_multiple,omitempty"`
}

type StockPlan struct {
	Header
	Approvals
	PlanName                    string   `json:"plan_name"`
	InitialSharesReserved       Numeric  `json:"initial_shares_reserved"`
	DefaultCancellationBehavior string   `json:"default_cancellation_behavior,omitempty"`
	StockClassIDs               []string `json:"stock_class_ids,omitempty"`
}

type StockLegendTemplate struct {
	Header
	Name string `json:"name"`
	Text string `json:"text"`
}

// VestingTerms describes a vesting schedule as a graph of conditions.
type VestingTerms struct {
	Header
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	AllocationType    string             `json:"allocation_type"`
	VestingConditions []VestingCondition `json:"vesting_conditions,omitempty"`
}

type Valuation struct {
	Header
	Approvals
	Provider      string   `json:"provider,omitempty"`
	StockClassID  string   `json:"stock_class_id"`
	PricePerShare Monetary `json:"price_per_share"`
	EffectiveDate string   `json:"effective_date"`
	ValuationType string   `json:"valuation_type"`
}

// Document references a file by path or URI; exactly one must be set.
type Document struct {
	Header
	Path           string            `json:"path,omitempty"`
	URI            string            `json:"uri,omitempty"`
	MD5            string            `json:"md5"`
	RelatedObjects []ObjectReference `json:"related_objects,omitempty"`
}
