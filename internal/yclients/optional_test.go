package yclients

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOptionalUnsetDropsFromWireForm(t *testing.T) {
	body := UpdateClientBody{
		Name: Set("Анна"),
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(raw)
	if got != `{"name":"Анна"}` {
		t.Fatalf("unexpected wire form: %s", got)
	}
}

func TestOptionalNullSerializesAsNull(t *testing.T) {
	body := UpdateClientBody{
		Name:    Set("Анна"),
		Comment: Null[string](),
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"comment":null`) {
		t.Fatalf("explicit null missing: %s", raw)
	}
}

func TestOptionalUnmarshalDistinguishesNullFromValue(t *testing.T) {
	var body UpdateClientBody
	if err := json.Unmarshal([]byte(`{"name":"Анна","comment":null}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	name, ok := body.Name.Get()
	if !ok || name != "Анна" {
		t.Fatalf("name = %q, set = %v", name, ok)
	}
	if !body.Comment.IsNull() {
		t.Fatalf("comment should be explicit null")
	}
	if body.Phone.IsSet() {
		t.Fatalf("phone was never present, must stay unset")
	}
}

func TestOptionalRoundTrip(t *testing.T) {
	in := UpdateClientBody{
		Name:     Set("Анна"),
		Discount: Set(10.5),
		Comment:  Null[string](),
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out UpdateClientBody
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if name, _ := out.Name.Get(); name != "Анна" {
		t.Fatalf("name lost in round trip: %q", name)
	}
	if discount, _ := out.Discount.Get(); discount != 10.5 {
		t.Fatalf("discount lost in round trip: %v", discount)
	}
	if !out.Comment.IsNull() {
		t.Fatalf("null lost in round trip")
	}
	if out.Surname.IsSet() {
		t.Fatalf("unset field appeared after round trip")
	}
}
