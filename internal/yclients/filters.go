package yclients

import "encoding/json"

// ClientsFilter is the closed set of filters accepted by clients search.
// Each one serializes as {"type": <discriminant>, "state": {...}}.
type ClientsFilter interface {
	filterType() string
	state() any
}

type filterEnvelope struct {
	Type  string `json:"type"`
	State any    `json:"state"`
}

func marshalFilter(f ClientsFilter) ([]byte, error) {
	return json.Marshal(filterEnvelope{Type: f.filterType(), State: f.state()})
}

type RangeState struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

type DateRangeState struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type IDFilter struct{ Value []int }

func (f IDFilter) filterType() string { return "id" }
func (f IDFilter) state() any {
	return struct {
		Value []int `json:"value"`
	}{f.Value}
}

type SoldAmountFilter struct{ Range RangeState }

func (f SoldAmountFilter) filterType() string { return "sold_amount" }
func (f SoldAmountFilter) state() any         { return f.Range }

type QuickSearchFilter struct{ Value string }

func (f QuickSearchFilter) filterType() string { return "quick_search" }
func (f QuickSearchFilter) state() any {
	return struct {
		Value string `json:"value"`
	}{f.Value}
}

type ImportanceFilter struct{ Value []int }

func (f ImportanceFilter) filterType() string { return "importance" }
func (f ImportanceFilter) state() any {
	return struct {
		Value []int `json:"value"`
	}{f.Value}
}

type HasMobileAppFilter struct{ Value bool }

func (f HasMobileAppFilter) filterType() string { return "has_mobile_app" }
func (f HasMobileAppFilter) state() any {
	return struct {
		Value bool `json:"value"`
	}{f.Value}
}

type CategoryFilter struct{ Value []int }

func (f CategoryFilter) filterType() string { return "category" }
func (f CategoryFilter) state() any {
	return struct {
		Value []int `json:"value"`
	}{f.Value}
}

type HasPassteamCardFilter struct{ Value bool }

func (f HasPassteamCardFilter) filterType() string { return "has_passteam_card" }
func (f HasPassteamCardFilter) state() any {
	return struct {
		Value bool `json:"value"`
	}{f.Value}
}

type PassteamCardIDsFilter struct{ Value []string }

func (f PassteamCardIDsFilter) filterType() string { return "passteam_card_ids" }
func (f PassteamCardIDsFilter) state() any {
	return struct {
		Value []string `json:"value"`
	}{f.Value}
}

type BirthdayFilter struct{ Range DateRangeState }

func (f BirthdayFilter) filterType() string { return "birthday" }
func (f BirthdayFilter) state() any         { return f.Range }

type GenderFilter struct{ Value []int }

func (f GenderFilter) filterType() string { return "gender" }
func (f GenderFilter) state() any {
	return struct {
		Value []int `json:"value"`
	}{f.Value}
}

// RecordFilterState narrows clients by their visit records. Zero fields are
// dropped from the wire form.
type RecordFilterState struct {
	Staff           []int           `json:"staff,omitempty"`
	Service         []int           `json:"service,omitempty"`
	ServiceCategory []int           `json:"service_category,omitempty"`
	Status          []int           `json:"status,omitempty"`
	Created         *DateRangeState `json:"created,omitempty"`
	RecordsCount    *RangeState     `json:"records_count,omitempty"`
	SoldAmount      *RangeState     `json:"sold_amount,omitempty"`
}

type RecordFilter struct{ State RecordFilterState }

func (f RecordFilter) filterType() string { return "record" }
func (f RecordFilter) state() any         { return f.State }

// ClientFilterState narrows by client card attributes.
type ClientFilterState struct {
	ID           []int           `json:"id,omitempty"`
	Birthday     *DateRangeState `json:"birthday,omitempty"`
	Gender       []int           `json:"gender,omitempty"`
	Importance   []int           `json:"importance,omitempty"`
	Category     []int           `json:"category,omitempty"`
	HasMobileApp *bool           `json:"has_mobile_app,omitempty"`
}

type ClientFilter struct{ State ClientFilterState }

func (f ClientFilter) filterType() string { return "client" }
func (f ClientFilter) state() any         { return f.State }

// Filters is the marshalling wrapper used by search request bodies.
type Filters []ClientsFilter

func (fs Filters) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(fs))
	for _, f := range fs {
		raw, err := marshalFilter(f)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return json.Marshal(out)
}
