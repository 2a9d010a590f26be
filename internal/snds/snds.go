// Package snds locates and reads Microsoft SNDS (Smart Network Data
// Services) daily CSV exports and renders them as fixed-width tables.
package snds

// Row maps a column name to its string value for one CSV record.
// The source of truth for column names is the header of the file read.
type Row map[string]string

// Well-known export filename prefixes. These are fixed and case-sensitive:
// SNDS publishes `snds-data-<date>.csv` and `snds-ipStatus-<date>.csv`.
const (
	DataPrefix     = "snds-data"
	IPStatusPrefix = "snds-ipStatus"
)

// DefaultWishlist is the prioritized list of column names tried when the
// user does not pass an explicit column selection. SNDS field naming varies
// between export generations, hence the case variants.
var DefaultWishlist = []string{
	"IP", "ip", "IPv4", "ipv4",
	"Date", "date",
	"Traffic", "traffic",
	"ComplaintRate", "complaintRate", "complaints",
	"FilterResult", "filterResult",
	"SRD", "srd",
}
