package normalize

import "strings"

// Logical CSV fields are resolved through ordered synonym lists instead of
// ad hoc header probing. Headers are folded (lowercased, spaces/underscores
// stripped) once per row, so "Event Timestamp", "EVENT_TIMESTAMP" and
// "event_timestamp" all hit the same slot.

var (
	timestampVariants = []string{"eventtimestamp", "timestamp", "time", "date"}
	uuidVariants      = []string{"uuid"}
	ipVariants        = []string{"ipaddress", "ip"}
	urlVariants       = []string{"url"}
	referrerVariants  = []string{"referrerurl", "referrer"}
	timeOnPage        = []string{"timeonpage"}
	idleTime          = []string{"idletime"}
	scrollVariants    = []string{"percentage", "scrollpercentage"}
	thresholdVariants = []string{"threshold"}
	elementIDVariants = []string{"elementidentifier"}
	elementTxtVariant = []string{"elementtext"}
	coordsVariants    = []string{"coordinates"}
	eventTypeVariants = []string{"eventtype"}
	eventDataVariants = []string{"eventdata"}
)

// Identity overlay columns, extracted from the first event's raw row only.
var identityVariants = map[string][]string{
	"firstName":      {"firstname"},
	"lastName":       {"lastname"},
	"companyName":    {"companyname"},
	"companyDomain":  {"companydomain"},
	"jobTitle":       {"jobtitle"},
	"seniorityLevel": {"senioritylevel"},
	"businessEmail":  {"businessemail"},
	"phone":          {"directnumber"},
	"mobilePhone":    {"mobilephone"},
	"address":        {"personaladdress"},
	"companyAddress": {"companyaddress"},
	"city":           {"personalcity"},
	"state":          {"personalstate"},
	"zip":            {"personalzip"},
}

// Address components for geocoding prefer personal over company columns.
var (
	addressVariants = []string{"personaladdress", "companyaddress"}
	cityVariants    = []string{"personalcity", "companycity"}
	stateVariants   = []string{"personalstate", "companystate"}
	zipVariants     = []string{"personalzip", "companyzip"}
	countryVariants = []string{"personalcountry", "companycountry"}
)

func foldHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	h = strings.ReplaceAll(h, "-", "")
	return h
}

// fieldIndex maps folded headers to values for one row. The first non-empty
// value per folded header wins.
type fieldIndex map[string]string

func indexRow(row map[string]string) fieldIndex {
	idx := make(fieldIndex, len(row))
	for k, v := range row {
		if v == "" {
			continue
		}
		fk := foldHeader(k)
		if _, ok := idx[fk]; !ok {
			idx[fk] = v
		}
	}
	return idx
}

// resolve returns the first present variant's value.
func (idx fieldIndex) resolve(variants []string) string {
	for _, v := range variants {
		if val, ok := idx[v]; ok {
			return val
		}
	}
	return ""
}

// Identity extracts the identity overlay columns from a raw row.
// Absent columns are omitted; nothing is ever fabricated.
func Identity(row map[string]string) map[string]string {
	idx := indexRow(row)
	out := map[string]string{}
	for key, variants := range identityVariants {
		if v := idx.resolve(variants); v != "" {
			out[key] = v
		}
	}
	return out
}

// AddressParts holds the sheet-supplied postal address components.
type AddressParts struct {
	Address string
	City    string
	State   string
	Zip     string
	Country string
}

// HasAddress reports whether any geocodable component is present.
// Country alone does not trigger address geocoding.
func (a AddressParts) HasAddress() bool {
	return a.Address != "" || a.City != "" || a.State != "" || a.Zip != ""
}

// Address extracts postal address components from a raw row, preferring
// personal columns over company ones. Country defaults to US as the sheet
// format leaves it implicit.
func Address(row map[string]string) AddressParts {
	idx := indexRow(row)
	parts := AddressParts{
		Address: idx.resolve(addressVariants),
		City:    idx.resolve(cityVariants),
		State:   idx.resolve(stateVariants),
		Zip:     idx.resolve(zipVariants),
		Country: idx.resolve(countryVariants),
	}
	if parts.Country == "" {
		parts.Country = "US"
	}
	return parts
}
