package sharkattack

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

const (
	minYear    = 1500
	maxIDs     = 500
	maxIDBytes = 64
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

var maxLengths = map[string]int{
	domain.FieldCountry:              100,
	domain.FieldArea:                 200,
	domain.FieldLocation:             200,
	domain.FieldActivity:             150,
	domain.FieldName:                 100,
	domain.FieldAge:                  10,
	domain.FieldInjury:               500,
	domain.FieldSpecies:              100,
	domain.FieldInvestigatorOrSource: 200,
	domain.FieldPDF:                  100,
	domain.FieldHrefFormula:          200,
	domain.FieldCaseNumber:           50,
	domain.FieldCaseNumber0:          50,
}

// AttackInput holds the writable fields of an attack. Nil fields were not
// supplied: a merge update keeps them, a replace clears them.
type AttackInput struct {
	OrganizationID       *string `json:"organizationId"`
	Active               *bool   `json:"active"`
	Date                 *string `json:"date"`
	Year                 *int    `json:"year"`
	Type                 *string `json:"type"`
	Country              *string `json:"country"`
	Area                 *string `json:"area"`
	Location             *string `json:"location"`
	Time                 *string `json:"time"`
	Activity             *string `json:"activity"`
	Name                 *string `json:"name"`
	Sex                  *string `json:"sex"`
	Age                  *string `json:"age"`
	Injury               *string `json:"injury"`
	FatalYN              *string `json:"fatal_y_n"`
	Species              *string `json:"species"`
	InvestigatorOrSource *string `json:"investigator_or_source"`
	PDF                  *string `json:"pdf"`
	HrefFormula          *string `json:"href_formula"`
	Href                 *string `json:"href"`
	CaseNumber           *string `json:"case_number"`
	CaseNumber0          *string `json:"case_number0"`
}

// Properties returns the supplied fields with strings trimmed.
func (i AttackInput) Properties() domain.Properties {
	props := domain.Properties{}
	for name, v := range map[string]*string{
		domain.FieldOrganizationID:       i.OrganizationID,
		domain.FieldDate:                 i.Date,
		domain.FieldType:                 i.Type,
		domain.FieldCountry:              i.Country,
		domain.FieldArea:                 i.Area,
		domain.FieldLocation:             i.Location,
		domain.FieldTime:                 i.Time,
		domain.FieldActivity:             i.Activity,
		domain.FieldName:                 i.Name,
		domain.FieldSex:                  i.Sex,
		domain.FieldAge:                  i.Age,
		domain.FieldInjury:               i.Injury,
		domain.FieldFatalYN:              i.FatalYN,
		domain.FieldSpecies:              i.Species,
		domain.FieldInvestigatorOrSource: i.InvestigatorOrSource,
		domain.FieldPDF:                  i.PDF,
		domain.FieldHrefFormula:          i.HrefFormula,
		domain.FieldHref:                 i.Href,
		domain.FieldCaseNumber:           i.CaseNumber,
		domain.FieldCaseNumber0:          i.CaseNumber0,
	} {
		if v != nil {
			props[name] = strings.TrimSpace(*v)
		}
	}
	if i.Active != nil {
		props[domain.FieldActive] = *i.Active
	}
	if i.Year != nil {
		props[domain.FieldYear] = *i.Year
	}
	return props
}

// Validate checks every supplied field and collects all errors.
func (i AttackInput) Validate() error {
	if errs := validateProperties(i.Properties(), time.Now().Year()); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateProperties applies the attack field rules to props. Empty strings
// and a zero year count as "not provided" and always pass.
func validateProperties(props domain.Properties, currentYear int) []domain.FieldError {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}
	str := func(field string) string {
		s, _ := props[field].(string)
		return s
	}

	if d := str(domain.FieldDate); d != "" {
		if !datePattern.MatchString(d) {
			add(domain.FieldDate, "must match YYYY-MM-DD")
		} else if _, err := time.Parse(time.DateOnly, d); err != nil {
			add(domain.FieldDate, "not a calendar date")
		}
	}

	if y, ok := props[domain.FieldYear].(int); ok && y != 0 && (y < minYear || y > currentYear) {
		add(domain.FieldYear, fmt.Sprintf("must be between %d and %d", minYear, currentYear))
	}

	for _, c := range []struct {
		field   string
		allowed []string
	}{
		{domain.FieldType, domain.AttackTypes},
		{domain.FieldSex, domain.SexValues},
		{domain.FieldFatalYN, domain.FatalYNValues},
	} {
		if v := str(c.field); v != "" && !slices.Contains(c.allowed, v) {
			add(c.field, "must be one of: "+strings.Join(c.allowed, ", "))
		}
	}

	if t := str(domain.FieldTime); t != "" && !timePattern.MatchString(t) {
		add(domain.FieldTime, "must match HH:MM")
	}

	if h := str(domain.FieldHref); h != "" {
		u, err := url.Parse(h)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			add(domain.FieldHref, "must be an absolute http(s) URL")
		}
	}

	for _, field := range sortedKeys(maxLengths) {
		if n := maxLengths[field]; utf8.RuneCountInString(str(field)) > n {
			add(field, fmt.Sprintf("max %d characters", n))
		}
	}

	return errs
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ListInput holds the parameters for a listing.
type ListInput struct {
	Filter     domain.SharkAttackFilter
	Pagination domain.Pagination
	Sort       domain.Sort
}

// Validate checks paging and sort bounds.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Pagination.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 0"})
	}
	if i.Pagination.Count < 0 || i.Pagination.Count > domain.MaxPageCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: fmt.Sprintf("must be between 0 and %d", domain.MaxPageCount)})
	}
	if i.Sort.Field != "" && !slices.Contains(domain.SortableFields, i.Sort.Field) {
		errs = append(errs, domain.FieldError{Field: "sortField", Message: "must be one of: " + strings.Join(domain.SortableFields, ", ")})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateInput is AttackInput plus an optional caller-chosen id. Without an
// id one is generated.
type CreateInput struct {
	ID string `json:"id"`
	AttackInput
}

// Validate checks the optional id and the supplied fields.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID != "" && (strings.TrimSpace(i.ID) == "" || len(i.ID) > maxIDBytes) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be non-blank and at most 64 bytes"})
	}
	errs = append(errs, validateProperties(i.Properties(), time.Now().Year())...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating an attack.
type UpdateInput struct {
	ID    string
	Input AttackInput
	Merge bool
}

// Validate checks the id and the supplied fields.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateProperties(i.Input.Properties(), time.Now().Year())...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteInput holds the ids of a bulk delete.
type DeleteInput struct {
	IDs []string
}

// Validate checks the id list.
func (i DeleteInput) Validate() error {
	var errs []domain.FieldError

	if len(i.IDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "required"})
	}
	if len(i.IDs) > maxIDs {
		errs = append(errs, domain.FieldError{Field: "ids", Message: fmt.Sprintf("max %d ids", maxIDs)})
	}
	for _, id := range i.IDs {
		if strings.TrimSpace(id) == "" || len(id) > maxIDBytes {
			errs = append(errs, domain.FieldError{Field: "ids", Message: "ids must be non-empty and at most 64 bytes"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
