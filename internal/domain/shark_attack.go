package domain

// SharkAttack is one reported incident. It is the only aggregate of the service.
type SharkAttack struct {
	ID                   string   `json:"id"                               bson:"_id"`
	OrganizationID       string   `json:"organizationId,omitempty"         bson:"organizationId,omitempty"`
	Active               bool     `json:"active"                           bson:"active"`
	Date                 string   `json:"date,omitempty"                   bson:"date,omitempty"`
	Year                 int      `json:"year,omitempty"                   bson:"year,omitempty"`
	Type                 string   `json:"type,omitempty"                   bson:"type,omitempty"`
	Country              string   `json:"country,omitempty"                bson:"country,omitempty"`
	Area                 string   `json:"area,omitempty"                   bson:"area,omitempty"`
	Location             string   `json:"location,omitempty"               bson:"location,omitempty"`
	Time                 string   `json:"time,omitempty"                   bson:"time,omitempty"`
	Activity             string   `json:"activity,omitempty"               bson:"activity,omitempty"`
	Name                 string   `json:"name,omitempty"                   bson:"name,omitempty"`
	Sex                  string   `json:"sex,omitempty"                    bson:"sex,omitempty"`
	Age                  string   `json:"age,omitempty"                    bson:"age,omitempty"`
	Injury               string   `json:"injury,omitempty"                 bson:"injury,omitempty"`
	FatalYN              string   `json:"fatal_y_n,omitempty"              bson:"fatal_y_n,omitempty"`
	Species              string   `json:"species,omitempty"                bson:"species,omitempty"`
	InvestigatorOrSource string   `json:"investigator_or_source,omitempty" bson:"investigator_or_source,omitempty"`
	PDF                  string   `json:"pdf,omitempty"                    bson:"pdf,omitempty"`
	HrefFormula          string   `json:"href_formula,omitempty"           bson:"href_formula,omitempty"`
	Href                 string   `json:"href,omitempty"                   bson:"href,omitempty"`
	CaseNumber           string   `json:"case_number,omitempty"            bson:"case_number,omitempty"`
	CaseNumber0          string   `json:"case_number0,omitempty"           bson:"case_number0,omitempty"`
	Metadata             Metadata `json:"metadata"                         bson:"metadata"`
}

// Metadata tracks who touched a record and when. Times are epoch milliseconds.
type Metadata struct {
	CreatedBy string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Field names as stored in the materialized view and carried in event payloads.
const (
	FieldID                   = "id"
	FieldOrganizationID       = "organizationId"
	FieldActive               = "active"
	FieldDate                 = "date"
	FieldYear                 = "year"
	FieldType                 = "type"
	FieldCountry              = "country"
	FieldArea                 = "area"
	FieldLocation             = "location"
	FieldTime                 = "time"
	FieldActivity             = "activity"
	FieldName                 = "name"
	FieldSex                  = "sex"
	FieldAge                  = "age"
	FieldInjury               = "injury"
	FieldFatalYN              = "fatal_y_n"
	FieldSpecies              = "species"
	FieldInvestigatorOrSource = "investigator_or_source"
	FieldPDF                  = "pdf"
	FieldHrefFormula          = "href_formula"
	FieldHref                 = "href"
	FieldCaseNumber           = "case_number"
	FieldCaseNumber0          = "case_number0"
	FieldMetadata             = "metadata"
	FieldCreatedAt            = "metadata.createdAt"
)

// Allowed values for enumerated attack fields.
var (
	AttackTypes   = []string{"Provoked", "Unprovoked", "Boat", "Sea Disaster", "Questionable"}
	SexValues     = []string{"M", "F", "Unknown"}
	FatalYNValues = []string{"Y", "N", "Unknown"}
)

// SortableFields lists the fields a listing may be ordered by.
var SortableFields = []string{
	FieldDate, FieldYear, FieldType, FieldCountry, FieldSpecies, FieldActive, FieldName, FieldCreatedAt,
}

// CommandResult is the reply of commands that do not return an aggregate.
type CommandResult struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Stats is the dashboard aggregation over the materialized view.
type Stats struct {
	Countries         []CountryStat `json:"countries"`
	Years             []YearStat    `json:"years"`
	TotalSharkAttacks int64         `json:"totalSharkAttacks"`
}

// CountryStat is the number of attacks recorded for one country.
type CountryStat struct {
	Country string `json:"country" bson:"_id"`
	Total   int64  `json:"total"   bson:"total"`
}

// YearStat is the number of attacks recorded for one year.
type YearStat struct {
	Year  int   `json:"year"  bson:"_id"`
	Total int64 `json:"total" bson:"total"`
}

// EmptyStats is the value returned when stats cannot be computed.
func EmptyStats() Stats {
	return Stats{Countries: []CountryStat{}, Years: []YearStat{}}
}

// CountryAttack is the summary returned by the external per-country lookup.
type CountryAttack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Age     string `json:"age"`
	Type    string `json:"type"`
}
