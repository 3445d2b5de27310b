package assignments

import (
	"testing"

	"github.com/rmoreau/loanboard/internal/models"
)

func rec(vin string, person int64, partner, make, startDay string, score float64) models.AssignmentRecord {
	return models.AssignmentRecord{
		VIN:         vin,
		PersonID:    person,
		PartnerName: partner,
		Make:        make,
		StartDay:    startDay,
		Score:       score,
	}
}

func TestByDay_FiltersByActualWeekday(t *testing.T) {
	monday := rec("1HGCM82633A004352", 101, "Rivera Media", "Honda", "2025-10-20", 12)   // Monday
	thursday := rec("5YJ3E1EA7KF317000", 102, "North Films", "Tesla", "2025-10-23", 30) // Thursday

	got := ByDay(models.DayMon, []models.AssignmentRecord{monday, thursday})
	if len(got) != 1 {
		t.Fatalf("ByDay(mon) returned %d records, want 1", len(got))
	}
	if got[0].VIN != monday.VIN {
		t.Errorf("ByDay(mon) returned %s, want %s", got[0].VIN, monday.VIN)
	}
}

func TestByDay_EmptyDayReturnsAll(t *testing.T) {
	recs := []models.AssignmentRecord{
		rec("vin-a", 1, "A", "Honda", "2025-10-20", 1),
		rec("vin-b", 2, "B", "Toyota", "2025-10-21", 2),
	}
	got := ByDay("", recs)
	if len(got) != len(recs) {
		t.Fatalf("ByDay(\"\") returned %d records, want %d", len(got), len(recs))
	}
}

func TestByDay_SkipsUnparseableDates(t *testing.T) {
	recs := []models.AssignmentRecord{
		rec("vin-a", 1, "A", "Honda", "not-a-date", 1),
		rec("vin-b", 2, "B", "Toyota", "2025-10-20", 2),
	}
	got := ByDay(models.DayMon, recs)
	if len(got) != 1 || got[0].VIN != "vin-b" {
		t.Fatalf("expected only the parseable Monday record, got %v", got)
	}
}

func TestByText_MatchesAcrossFields(t *testing.T) {
	toyota := rec("JTDKB20U293519317", 201, "Castillo Reviews", "Toyota", "2025-10-20", 10)
	honda := rec("1HGCM82633A004352", 202, "Rivera Media", "Honda", "2025-10-20", 20)
	recs := []models.AssignmentRecord{toyota, honda}

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"make substring", "toy", []string{toyota.VIN}},
		{"partner substring", "rivera", []string{honda.VIN}},
		{"vin substring", "jtdkb", []string{toyota.VIN}},
		{"person id", "202", []string{honda.VIN}},
		{"empty query keeps all", "", []string{toyota.VIN, honda.VIN}},
		{"no match", "subaru", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ByText(tc.query, recs)
			if len(got) != len(tc.want) {
				t.Fatalf("ByText(%q) returned %d records, want %d", tc.query, len(got), len(tc.want))
			}
			for i, vin := range tc.want {
				if got[i].VIN != vin {
					t.Errorf("ByText(%q)[%d] = %s, want %s", tc.query, i, got[i].VIN, vin)
				}
			}
		})
	}
}

func TestSorted_ChronologicalThenScoreDescending(t *testing.T) {
	low := rec("vin-low", 1, "A", "Honda", "2025-10-21", 10)
	high := rec("vin-high", 2, "B", "Toyota", "2025-10-21", 25)
	earlier := rec("vin-early", 3, "C", "Mazda", "2025-10-20", 1)

	got := Sorted([]models.AssignmentRecord{low, high, earlier})

	wantOrder := []string{"vin-early", "vin-high", "vin-low"}
	for i, vin := range wantOrder {
		if got[i].VIN != vin {
			t.Errorf("Sorted()[%d] = %s, want %s", i, got[i].VIN, vin)
		}
	}
}

func TestSorted_StableForFullTies(t *testing.T) {
	a := rec("vin-a", 1, "A", "Honda", "2025-10-20", 10)
	b := rec("vin-b", 2, "B", "Toyota", "2025-10-20", 10)

	got := Sorted([]models.AssignmentRecord{a, b})
	if got[0].VIN != "vin-a" || got[1].VIN != "vin-b" {
		t.Errorf("tie order not preserved: got [%s %s]", got[0].VIN, got[1].VIN)
	}
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	recs := []models.AssignmentRecord{
		rec("vin-b", 2, "B", "Toyota", "2025-10-21", 2),
		rec("vin-a", 1, "A", "Honda", "2025-10-20", 1),
	}
	_ = Sorted(recs)
	if recs[0].VIN != "vin-b" {
		t.Errorf("input slice reordered, first is now %s", recs[0].VIN)
	}
}

func TestQuery_AppliesDayAndTextThenSorts(t *testing.T) {
	recs := []models.AssignmentRecord{
		rec("vin-1", 1, "Rivera Media", "Honda", "2025-10-20", 5),   // Monday
		rec("vin-2", 2, "Rivera Media", "Toyota", "2025-10-20", 15), // Monday
		rec("vin-3", 3, "Rivera Media", "Toyota", "2025-10-23", 40), // Thursday
		rec("vin-4", 4, "North Films", "Toyota", "2025-10-20", 50),  // Monday
	}

	got := Query(models.DayMon, "rivera", recs)

	wantOrder := []string{"vin-2", "vin-1"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Query returned %d records, want %d", len(got), len(wantOrder))
	}
	for i, vin := range wantOrder {
		if got[i].VIN != vin {
			t.Errorf("Query()[%d] = %s, want %s", i, got[i].VIN, vin)
		}
	}
}
