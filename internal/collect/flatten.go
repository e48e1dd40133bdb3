package collect

import (
	"strconv"

	"github.com/yeqiyushi-eng/censys-openclaw/internal/api"
)

// Row is one flattened HTTP endpoint: host-level fields carried from the
// parent record plus the endpoint's HTTP fields. Optional numeric fields
// are kept as strings so an absent value stays an empty CSV cell.
type Row struct {
	IP              string
	Country         string
	Province        string
	City            string
	PostalCode      string
	Latitude        string
	Longitude       string
	ASN             string
	ASName          string
	Port            int
	ServiceName     string
	Transport       string
	SoftwareProduct string
	SoftwareVendor  string
	SoftwareVersion string
	HTTPScheme      string
	HTTPHost        string
	HTTPPath        string
	HTTPStatusCode  string
	HTTPHTMLTitle   string
}

// Header is the CSV column order. Fields must stay in sync with it.
func Header() []string {
	return []string{
		"ip", "country", "province", "city", "postal_code", "latitude", "longitude",
		"asn", "as_name",
		"port", "service_name", "transport_protocol",
		"software_product", "software_vendor", "software_version",
		"http_scheme", "http_host", "http_path", "http_status_code", "http_html_title",
	}
}

// Fields renders the row in Header order.
func (r Row) Fields() []string {
	return []string{
		r.IP, r.Country, r.Province, r.City, r.PostalCode, r.Latitude, r.Longitude,
		r.ASN, r.ASName,
		strconv.Itoa(r.Port), r.ServiceName, r.Transport,
		r.SoftwareProduct, r.SoftwareVendor, r.SoftwareVersion,
		r.HTTPScheme, r.HTTPHost, r.HTTPPath, r.HTTPStatusCode, r.HTTPHTMLTitle,
	}
}

// BuildRows flattens one host record into rows, one per HTTP endpoint.
// titles limits rows to endpoints whose html_title is in the set; an
// empty slice keeps every HTTP endpoint. Row order follows endpoint
// order within service order.
func BuildRows(host *api.Host, titles []string) []Row {
	var rows []Row

	for _, svc := range host.Services {
		// software is usually a list; take the first entry as the
		// representative one.
		var product, vendor, version string
		if len(svc.Software) > 0 {
			product = svc.Software[0].Product
			vendor = svc.Software[0].Vendor
			version = svc.Software[0].Version
		}

		for _, ep := range svc.Endpoints {
			if ep.HTTP == nil {
				continue
			}
			if !titleMatches(ep.HTTP.HTMLTitle, titles) {
				continue
			}

			rows = append(rows, Row{
				IP:              host.IP,
				Country:         host.Location.Country,
				Province:        host.Location.Province,
				City:            host.Location.City,
				PostalCode:      host.Location.PostalCode,
				Latitude:        formatFloat(host.Location.Latitude),
				Longitude:       formatFloat(host.Location.Longitude),
				ASN:             formatInt(host.AutonomousSystem.ASN),
				ASName:          host.AutonomousSystem.Name,
				Port:            svc.Port,
				ServiceName:     svc.ServiceName,
				Transport:       svc.TransportProtocol,
				SoftwareProduct: product,
				SoftwareVendor:  vendor,
				SoftwareVersion: version,
				HTTPScheme:      ep.HTTP.Scheme,
				HTTPHost:        ep.HTTP.Host,
				HTTPPath:        ep.HTTP.Path,
				HTTPStatusCode:  formatInt(ep.HTTP.StatusCode),
				HTTPHTMLTitle:   ep.HTTP.HTMLTitle,
			})
		}
	}

	return rows
}

func titleMatches(title string, titles []string) bool {
	if len(titles) == 0 {
		return true
	}
	for _, t := range titles {
		if title == t {
			return true
		}
	}
	return false
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
