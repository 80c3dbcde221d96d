package payload

import "strings"

// VCard carries the supported vCard 4.0 fields. Empty fields are omitted
// from the output; BEGIN, VERSION, KIND and END are always present.
type VCard struct {
	FullName    string
	Title       string
	Role        string
	Org         string
	EmailWork   string
	EmailHome   string
	Birthday    string // YYYYMMDD
	AddressHome string // pobox;ext;street;locality;region;code;country
	Note        string
	TelCell     string
	TelWork     string
	TelHome     string
	Fax         string
	URL         string
	Timezone    string
}

// String serializes the card with a stable property order.
func (v VCard) String() string {
	lines := []string{"BEGIN:VCARD", "VERSION:4.0", "KIND:individual"}
	add := func(key, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, key+":"+value)
		}
	}
	add("EMAIL;TYPE=WORK", v.EmailWork)
	add("EMAIL;TYPE=HOME", v.EmailHome)
	add("TITLE", v.Title)
	add("ROLE", v.Role)
	add("FN", v.FullName)
	add("BDAY", v.Birthday)
	add("ADR;TYPE=HOME", v.AddressHome)
	add("NOTE", v.Note)
	add("TEL;TYPE=CELL", v.TelCell)
	add("TEL;TYPE=WORK", v.TelWork)
	add("TEL;TYPE=HOME", v.TelHome)
	add("TEL;TYPE=FAX", v.Fax)
	add("URL", v.URL)
	add("TZ", v.Timezone)
	add("ORG", v.Org)
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}
