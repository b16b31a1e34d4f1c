package request

import (
	"encoding/json"
	"testing"

	"autoservice/internal/domain/entities"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Amount
	}{
		{"number", `{"amount": 1250.50}`, "1250.50"},
		{"string", `{"amount": " 300 "}`, "300"},
		{"null", `{"amount": null}`, ""},
		{"malformed string kept", `{"amount": "12abc"}`, "12abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r FinancialRecordRequest
			if err := json.Unmarshal([]byte(tc.in), &r); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if r.Amount != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, r.Amount)
			}
		})
	}

	var r FinancialRecordRequest
	if err := json.Unmarshal([]byte(`{"amount": true}`), &r); err == nil {
		t.Fatalf("expected error for boolean amount")
	}
}

func TestRoleAndStatusNormalization(t *testing.T) {
	if got := (SendOTPRequest{Role: " Admin "}).ResolveRole(); got != entities.RoleAdmin {
		t.Fatalf("expected admin, got %q", got)
	}
	if got := (VerifyOTPRequest{Role: "owner"}).ResolveRole(); got != entities.Role("owner") {
		t.Fatalf("unknown roles must be kept for validation, got %q", got)
	}
	if got := (StatusUpdateRequest{Status: "PENDING"}).ResolveStatus(); got != entities.RequestStatusPending {
		t.Fatalf("expected pending, got %q", got)
	}
}

func TestAssignWorkersRequest_ResolveWorkerIDs(t *testing.T) {
	ids := AssignWorkersRequest{WorkerIDs: []string{" w1 ", "", "w2"}}.ResolveWorkerIDs()
	if len(ids) != 2 || ids[0] != "w1" {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if ids := (AssignWorkersRequest{}).ResolveWorkerIDs(); ids == nil || len(ids) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", ids)
	}
}

func TestQuickCreateRequest(t *testing.T) {
	var r QuickCreateRequest
	payload := `{"customer_name":"Иван","car_model":"Lada","issue":"стук","worker_ids":["w1"],
		"records":[{"type":"Income","amount":1000},{"type":"expense","amount":"200"}]}`
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.ToRequestForm().CustomerName != "Иван" {
		t.Fatalf("embedded form not decoded: %+v", r.ServiceRequestForm)
	}
	recs := r.ToRecordInputs()
	if len(recs) != 2 || recs[0].Type != entities.EntryIncome || recs[1].Amount != "200" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestDiagnosticRequest_ResolveStatuses(t *testing.T) {
	r := DiagnosticRequest{Items: []DiagnosticItemRequest{
		{Name: "Аккумулятор", Status: "Исправно"},
		{Name: " Аккумулятор ", Status: "Не исправно"},
	}}
	got := r.ResolveStatuses()
	if len(got) != 1 || got["Аккумулятор"] != entities.ItemFaulty {
		t.Fatalf("unexpected statuses: %v", got)
	}
}
