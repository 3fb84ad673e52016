// Package data holds the static electoral reference dataset used to
// validate report locations. Based on the 2024 electoral divisions.
package data

import "sort"

// Constituencies maps each district to its parliamentary constituencies.
var Constituencies = map[string][]string{
	"Dhaka": {"Dhaka-1", "Dhaka-2", "Dhaka-3", "Dhaka-4", "Dhaka-5", "Dhaka-6", "Dhaka-7", "Dhaka-8", "Dhaka-9", "Dhaka-10", "Dhaka-11", "Dhaka-12", "Dhaka-13", "Dhaka-14", "Dhaka-15", "Dhaka-16", "Dhaka-17", "Dhaka-18", "Dhaka-19", "Dhaka-20"},
	"Chattogram": {"Chattogram-1", "Chattogram-2", "Chattogram-3", "Chattogram-4", "Chattogram-5", "Chattogram-6", "Chattogram-7", "Chattogram-8", "Chattogram-9", "Chattogram-10", "Chattogram-11", "Chattogram-12", "Chattogram-13", "Chattogram-14", "Chattogram-15", "Chattogram-16"},
	"Rajshahi": {"Rajshahi-1", "Rajshahi-2", "Rajshahi-3", "Rajshahi-4", "Rajshahi-5", "Rajshahi-6"},
	"Khulna": {"Khulna-1", "Khulna-2", "Khulna-3", "Khulna-4", "Khulna-5", "Khulna-6"},
	"Barishal": {"Barishal-1", "Barishal-2", "Barishal-3", "Barishal-4", "Barishal-5", "Barishal-6"},
	"Sylhet": {"Sylhet-1", "Sylhet-2", "Sylhet-3", "Sylhet-4", "Sylhet-5", "Sylhet-6"},
	"Rangpur": {"Rangpur-1", "Rangpur-2", "Rangpur-3", "Rangpur-4", "Rangpur-5", "Rangpur-6"},
	"Mymensingh": {"Mymensingh-1", "Mymensingh-2", "Mymensingh-3", "Mymensingh-4", "Mymensingh-5", "Mymensingh-6"},
	"Cumilla": {"Cumilla-1", "Cumilla-2", "Cumilla-3", "Cumilla-4", "Cumilla-5", "Cumilla-6", "Cumilla-7"},
	"Gazipur": {"Gazipur-1", "Gazipur-2", "Gazipur-3", "Gazipur-4", "Gazipur-5"},
	"Narayanganj": {"Narayanganj-1", "Narayanganj-2", "Narayanganj-3", "Narayanganj-4", "Narayanganj-5"},
	"Tangail": {"Tangail-1", "Tangail-2", "Tangail-3", "Tangail-4", "Tangail-5", "Tangail-6", "Tangail-7", "Tangail-8"},
	"Jamalpur": {"Jamalpur-1", "Jamalpur-2", "Jamalpur-3", "Jamalpur-4"},
	"Kishoreganj": {"Kishoreganj-1", "Kishoreganj-2", "Kishoreganj-3", "Kishoreganj-4", "Kishoreganj-5", "Kishoreganj-6"},
	"Netrokona": {"Netrokona-1", "Netrokona-2", "Netrokona-3", "Netrokona-4", "Netrokona-5"},
	"Sherpur": {"Sherpur-1", "Sherpur-2", "Sherpur-3"},
	"Faridpur": {"Faridpur-1", "Faridpur-2", "Faridpur-3", "Faridpur-4"},
	"Gopalganj": {"Gopalganj-1", "Gopalganj-2", "Gopalganj-3"},
	"Madaripur": {"Madaripur-1", "Madaripur-2", "Madaripur-3"},
	"Rajbari": {"Rajbari-1", "Rajbari-2"},
	"Shariatpur": {"Shariatpur-1", "Shariatpur-2", "Shariatpur-3"},
	"Jashore": {"Jashore-1", "Jashore-2", "Jashore-3", "Jashore-4", "Jashore-5", "Jashore-6"},
	"Jhenaidah": {"Jhenaidah-1", "Jhenaidah-2", "Jhenaidah-3", "Jhenaidah-4"},
	"Magura": {"Magura-1", "Magura-2"},
	"Narail": {"Narail-1", "Narail-2"},
	"Satkhira": {"Satkhira-1", "Satkhira-2", "Satkhira-3", "Satkhira-4"},
	"Bagerhat": {"Bagerhat-1", "Bagerhat-2", "Bagerhat-3", "Bagerhat-4"},
	"Chuadanga": {"Chuadanga-1", "Chuadanga-2"},
	"Kushtia": {"Kushtia-1", "Kushtia-2", "Kushtia-3", "Kushtia-4"},
	"Meherpur": {"Meherpur-1", "Meherpur-2"},
	"Bogura": {"Bogura-1", "Bogura-2", "Bogura-3", "Bogura-4", "Bogura-5", "Bogura-6", "Bogura-7"},
	"Joypurhat": {"Joypurhat-1", "Joypurhat-2"},
	"Naogaon": {"Naogaon-1", "Naogaon-2", "Naogaon-3", "Naogaon-4", "Naogaon-5", "Naogaon-6"},
	"Natore": {"Natore-1", "Natore-2", "Natore-3", "Natore-4"},
	"Chapainawabganj": {"Chapainawabganj-1", "Chapainawabganj-2", "Chapainawabganj-3"},
	"Pabna": {"Pabna-1", "Pabna-2", "Pabna-3", "Pabna-4", "Pabna-5"},
	"Sirajganj": {"Sirajganj-1", "Sirajganj-2", "Sirajganj-3", "Sirajganj-4", "Sirajganj-5", "Sirajganj-6"},
	"Dinajpur": {"Dinajpur-1", "Dinajpur-2", "Dinajpur-3", "Dinajpur-4", "Dinajpur-5", "Dinajpur-6"},
	"Gaibandha": {"Gaibandha-1", "Gaibandha-2", "Gaibandha-3", "Gaibandha-4", "Gaibandha-5"},
	"Kurigram": {"Kurigram-1", "Kurigram-2", "Kurigram-3", "Kurigram-4"},
	"Lalmonirhat": {"Lalmonirhat-1", "Lalmonirhat-2", "Lalmonirhat-3"},
	"Nilphamari": {"Nilphamari-1", "Nilphamari-2", "Nilphamari-3", "Nilphamari-4"},
	"Panchagarh": {"Panchagarh-1"},
	"Thakurgaon": {"Thakurgaon-1", "Thakurgaon-2", "Thakurgaon-3"},
	"Habiganj": {"Habiganj-1", "Habiganj-2", "Habiganj-3", "Habiganj-4"},
	"Moulvibazar": {"Moulvibazar-1", "Moulvibazar-2", "Moulvibazar-3", "Moulvibazar-4"},
	"Sunamganj": {"Sunamganj-1", "Sunamganj-2", "Sunamganj-3", "Sunamganj-4", "Sunamganj-5"},
	"Brahmanbaria": {"Brahmanbaria-1", "Brahmanbaria-2", "Brahmanbaria-3", "Brahmanbaria-4", "Brahmanbaria-5", "Brahmanbaria-6"},
	"Chandpur": {"Chandpur-1", "Chandpur-2", "Chandpur-3", "Chandpur-4", "Chandpur-5"},
	"Lakshmipur": {"Lakshmipur-1", "Lakshmipur-2", "Lakshmipur-3", "Lakshmipur-4"},
	"Noakhali": {"Noakhali-1", "Noakhali-2", "Noakhali-3", "Noakhali-4", "Noakhali-5", "Noakhali-6"},
	"Feni": {"Feni-1", "Feni-2", "Feni-3"},
	"Khagrachari": {"Khagrachari-1"},
	"Rangamati": {"Rangamati-1"},
	"Bandarban": {"Bandarban-1"},
	"Cox's Bazar": {"Cox's Bazar-1", "Cox's Bazar-2", "Cox's Bazar-3", "Cox's Bazar-4"},
	"Bhola": {"Bhola-1", "Bhola-2", "Bhola-3", "Bhola-4"},
	"Jhalokathi": {"Jhalokathi-1", "Jhalokathi-2"},
	"Patuakhali": {"Patuakhali-1", "Patuakhali-2", "Patuakhali-3", "Patuakhali-4"},
	"Pirojpur": {"Pirojpur-1", "Pirojpur-2", "Pirojpur-3"},
	"Barguna": {"Barguna-1", "Barguna-2"},
	"Manikganj": {"Manikganj-1", "Manikganj-2", "Manikganj-3"},
	"Munshiganj": {"Munshiganj-1", "Munshiganj-2", "Munshiganj-3"},
	"Narsingdi": {"Narsingdi-1", "Narsingdi-2", "Narsingdi-3", "Narsingdi-4", "Narsingdi-5"},
}

// Districts returns the district names in sorted order.
func Districts() []string {
	names := make([]string, 0, len(Constituencies))
	for name := range Constituencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DistrictConstituencies returns the constituencies for a district, or nil
// if the district is unknown.
func DistrictConstituencies(district string) []string {
	return Constituencies[district]
}

// IsDistrict reports whether the given name is a known district.
func IsDistrict(name string) bool {
	_, ok := Constituencies[name]
	return ok
}

// IsConstituency reports whether the constituency belongs to the district.
func IsConstituency(district, constituency string) bool {
	for _, c := range Constituencies[district] {
		if c == constituency {
			return true
		}
	}
	return false
}
