package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Properties is a partial set of aggregate fields keyed by field name.
// Only supplied fields are present, which is what separates a merge update
// from a full replacement.
type Properties map[string]any

var stringFields = []string{
	FieldOrganizationID, FieldDate, FieldType, FieldCountry, FieldArea, FieldLocation, FieldTime,
	FieldActivity, FieldName, FieldSex, FieldAge, FieldInjury, FieldFatalYN, FieldSpecies,
	FieldInvestigatorOrSource, FieldPDF, FieldHrefFormula, FieldHref, FieldCaseNumber, FieldCaseNumber0,
}

// Clone returns a shallow copy of p.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Without returns a copy of p without the given keys.
func (p Properties) Without(keys ...string) Properties {
	out := p.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Apply merges p into a copy of a and returns it.
func (p Properties) Apply(a SharkAttack) SharkAttack {
	for k, v := range p {
		switch k {
		case FieldActive:
			a.Active, _ = v.(bool)
		case FieldYear:
			n, _ := toInt64(v)
			a.Year = int(n)
		case FieldMetadata:
			if m, ok := v.(Metadata); ok {
				a.Metadata = m
			}
		default:
			s, _ := v.(string)
			if f := a.stringField(k); f != nil {
				*f = s
			}
		}
	}
	return a
}

func (a *SharkAttack) stringField(name string) *string {
	switch name {
	case FieldOrganizationID:
		return &a.OrganizationID
	case FieldDate:
		return &a.Date
	case FieldType:
		return &a.Type
	case FieldCountry:
		return &a.Country
	case FieldArea:
		return &a.Area
	case FieldLocation:
		return &a.Location
	case FieldTime:
		return &a.Time
	case FieldActivity:
		return &a.Activity
	case FieldName:
		return &a.Name
	case FieldSex:
		return &a.Sex
	case FieldAge:
		return &a.Age
	case FieldInjury:
		return &a.Injury
	case FieldFatalYN:
		return &a.FatalYN
	case FieldSpecies:
		return &a.Species
	case FieldInvestigatorOrSource:
		return &a.InvestigatorOrSource
	case FieldPDF:
		return &a.PDF
	case FieldHrefFormula:
		return &a.HrefFormula
	case FieldHref:
		return &a.Href
	case FieldCaseNumber:
		return &a.CaseNumber
	case FieldCaseNumber0:
		return &a.CaseNumber0
	}
	return nil
}

// Payload flattens the aggregate into the map carried by events and notifications.
func (a SharkAttack) Payload() map[string]any {
	out := map[string]any{
		FieldID:     a.ID,
		FieldActive: a.Active,
	}
	for _, name := range stringFields {
		if s := *a.stringField(name); s != "" {
			out[name] = s
		}
	}
	if a.Year != 0 {
		out[FieldYear] = a.Year
	}
	if a.Metadata != (Metadata{}) {
		out[FieldMetadata] = map[string]any{
			"createdBy": a.Metadata.CreatedBy,
			"createdAt": a.Metadata.CreatedAt,
			"updatedBy": a.Metadata.UpdatedBy,
			"updatedAt": a.Metadata.UpdatedAt,
		}
	}
	return out
}

// PropertiesFromPayload converts a decoded event payload back into Properties.
// Unknown keys (including the id, which is carried by the event itself) are
// dropped and JSON numbers are narrowed back to their field types.
func PropertiesFromPayload(data map[string]any) Properties {
	props := Properties{}
	for _, name := range stringFields {
		v, ok := data[name]
		if !ok || v == nil {
			continue
		}
		if s, ok := stringValue(v); ok {
			props[name] = s
		}
	}
	if v, ok := data[FieldActive].(bool); ok {
		props[FieldActive] = v
	}
	if v, ok := data[FieldYear]; ok {
		if n, ok := toInt64(v); ok {
			props[FieldYear] = int(n)
		}
	}
	switch m := data[FieldMetadata].(type) {
	case Metadata:
		props[FieldMetadata] = m
	case map[string]any:
		md := Metadata{}
		md.CreatedBy, _ = m["createdBy"].(string)
		md.UpdatedBy, _ = m["updatedBy"].(string)
		md.CreatedAt, _ = toInt64(m["createdAt"])
		md.UpdatedAt, _ = toInt64(m["updatedAt"])
		props[FieldMetadata] = md
	}
	return props
}

func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}
