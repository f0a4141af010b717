package yclients

import (
	"encoding/json"
	"testing"
)

func TestFiltersWireForm(t *testing.T) {
	body := SearchClientsBody{
		Filters: Filters{IDFilter{Value: []int{1, 2, 3}}},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"filters":[{"type":"id","state":{"value":[1,2,3]}}]}`
	if string(raw) != want {
		t.Fatalf("wire form mismatch:\n got: %s\nwant: %s", raw, want)
	}
}

func TestFiltersComposite(t *testing.T) {
	hasApp := true
	body := SearchClientsBody{
		Operation: "AND",
		Filters: Filters{
			QuickSearchFilter{Value: "Анна"},
			SoldAmountFilter{Range: RangeState{From: 100, To: 500}},
			ClientFilter{State: ClientFilterState{
				Gender:       []int{1},
				HasMobileApp: &hasApp,
			}},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Operation string `json:"operation"`
		Filters   []struct {
			Type  string          `json:"type"`
			State json.RawMessage `json:"state"`
		} `json:"filters"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Operation != "AND" {
		t.Fatalf("operation = %q", decoded.Operation)
	}
	if len(decoded.Filters) != 3 {
		t.Fatalf("filters count = %d", len(decoded.Filters))
	}
	for i, wantType := range []string{"quick_search", "sold_amount", "client"} {
		if decoded.Filters[i].Type != wantType {
			t.Fatalf("filter %d type = %q, want %q", i, decoded.Filters[i].Type, wantType)
		}
	}
	if string(decoded.Filters[1].State) != `{"from":100,"to":500}` {
		t.Fatalf("sold_amount state = %s", decoded.Filters[1].State)
	}
	if string(decoded.Filters[2].State) != `{"gender":[1],"has_mobile_app":true}` {
		t.Fatalf("client state = %s", decoded.Filters[2].State)
	}
}

func TestRecordFilterStateDropsZeroFields(t *testing.T) {
	raw, err := marshalFilter(RecordFilter{State: RecordFilterState{
		Staff:  []int{7},
		Status: []int{1, 2},
	}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"record","state":{"staff":[7],"status":[1,2]}}`
	if string(raw) != want {
		t.Fatalf("wire form mismatch:\n got: %s\nwant: %s", raw, want)
	}
}

func TestClientsSearchBuilder(t *testing.T) {
	body := NewClientsSearchBuilder().
		Page(2, 50).
		Fields("id", "name").
		OrderBy("name", "asc").
		Operation("OR").
		Filter(CategoryFilter{Value: []int{5}}).
		Filter(HasMobileAppFilter{Value: true}).
		Build()

	if body.Page != 2 || body.PageSize != 50 {
		t.Fatalf("paging = %d/%d", body.Page, body.PageSize)
	}
	if body.OrderBy != "name" || body.OrderByDirection != "asc" {
		t.Fatalf("ordering = %q/%q", body.OrderBy, body.OrderByDirection)
	}
	if body.Operation != "OR" {
		t.Fatalf("operation = %q", body.Operation)
	}
	if len(body.Filters) != 2 {
		t.Fatalf("filters count = %d", len(body.Filters))
	}
	if body.Filters[0].filterType() != "category" || body.Filters[1].filterType() != "has_mobile_app" {
		t.Fatalf("filter order wrong: %s, %s", body.Filters[0].filterType(), body.Filters[1].filterType())
	}
}
