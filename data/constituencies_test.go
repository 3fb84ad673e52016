package data

import (
	"sort"
	"strings"
	"testing"
)

func TestDistrictsSorted(t *testing.T) {
	districts := Districts()
	if len(districts) == 0 {
		t.Fatal("reference set must not be empty")
	}
	if !sort.StringsAreSorted(districts) {
		t.Fatal("district list must be sorted")
	}
}

func TestConstituencyMembership(t *testing.T) {
	if !IsDistrict("Dhaka") {
		t.Fatal("Dhaka must be a known district")
	}
	if IsDistrict("Atlantis") {
		t.Fatal("unknown district accepted")
	}

	if !IsConstituency("Dhaka", "Dhaka-5") {
		t.Fatal("Dhaka-5 belongs to Dhaka")
	}
	if IsConstituency("Dhaka", "Chattogram-1") {
		t.Fatal("Chattogram-1 does not belong to Dhaka")
	}
	if IsConstituency("Atlantis", "Atlantis-1") {
		t.Fatal("unknown district has no constituencies")
	}
}

func TestEveryConstituencyNamesItsDistrict(t *testing.T) {
	for district, constituencies := range Constituencies {
		if len(constituencies) == 0 {
			t.Fatalf("district %s has no constituencies", district)
		}
		for _, constituency := range constituencies {
			if !strings.HasPrefix(constituency, district+"-") {
				t.Fatalf("constituency %s does not match district %s", constituency, district)
			}
		}
	}
}
