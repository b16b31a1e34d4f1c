// Package shares splits a request's net income between the company and the
// workers assigned to it.
//
// Two policies exist and they are not interchangeable:
//   - ComputeResidual: the company keeps what is not allocated to workers.
//     Used for previews while a request is open and for quick-entry snapshots.
//   - ComputePayout: the company books the full net income and worker shares
//     become separate expense/income lines. Used at final confirmation.
//
// Every share is floored to whole currency units; the company absorbs the
// remainder.
package shares

import (
	"errors"
	"fmt"

	"autoservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrTotalRateExceeded = errors.New("total worker rate exceeds 100")

var hundred = decimal.NewFromInt(100)

// Participant is an assigned worker as seen by the calculator.
type Participant struct {
	ID   string
	Name string
	Rate int
}

func ParticipantFromWorker(w entities.Worker) Participant {
	return Participant{ID: w.ID, Name: w.Name, Rate: w.Rate}
}

// Warning reports a record excluded from the totals.
type Warning struct {
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

type Result struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetIncome    decimal.Decimal
	Shares       entities.Shares
	Warnings     []Warning
}

type totals struct {
	income   decimal.Decimal
	expense  decimal.Decimal
	warnings []Warning
}

func (t totals) net() decimal.Decimal {
	return t.income.Sub(t.expense)
}

func sum(records []entities.FinancialRecord) totals {
	t := totals{income: decimal.Zero, expense: decimal.Zero}
	for _, r := range records {
		if !r.Amount.Valid {
			t.warnings = append(t.warnings, Warning{RecordID: r.ID, Reason: fmt.Sprintf("malformed amount %q", r.RawAmount)})
			continue
		}
		if r.Amount.Decimal.IsNegative() {
			t.warnings = append(t.warnings, Warning{RecordID: r.ID, Reason: "negative amount"})
			continue
		}
		switch r.Type {
		case entities.EntryIncome:
			t.income = t.income.Add(r.Amount.Decimal)
		case entities.EntryExpense:
			t.expense = t.expense.Add(r.Amount.Decimal)
		default:
			t.warnings = append(t.warnings, Warning{RecordID: r.ID, Reason: fmt.Sprintf("unknown record type %q", r.Type)})
		}
	}
	return t
}

func empty(t totals) Result {
	return Result{
		TotalIncome:  t.income,
		TotalExpense: t.expense,
		NetIncome:    t.net(),
		Shares:       entities.Shares{CompanyShare: decimal.Zero, WorkerShares: []entities.WorkerShare{}},
		Warnings:     t.warnings,
	}
}

func clampRate(rate int) int {
	if rate < entities.MinWorkerRate {
		return entities.MinWorkerRate
	}
	if rate > entities.MaxWorkerRate {
		return entities.MaxWorkerRate
	}
	return rate
}

// percentOf returns floor(net * rate / 100).
func percentOf(net decimal.Decimal, rate int) decimal.Decimal {
	return net.Mul(decimal.NewFromInt(int64(rate))).Div(hundred).Floor()
}

func workerShares(net decimal.Decimal, workers []Participant) []entities.WorkerShare {
	out := make([]entities.WorkerShare, 0, len(workers))
	for _, w := range workers {
		rate := clampRate(w.Rate)
		out = append(out, entities.WorkerShare{
			WorkerID: w.ID,
			Name:     w.Name,
			Rate:     rate,
			Share:    percentOf(net, rate),
		})
	}
	return out
}

// TotalRate sums the clamped rates of workers.
func TotalRate(workers []Participant) int {
	total := 0
	for _, w := range workers {
		total += clampRate(w.Rate)
	}
	return total
}

// ComputeResidual applies the residual-to-company policy:
// company = floor(net*(100-totalRate)/100), worker = floor(net*rate/100).
//
// A total rate above 100 is rejected with ErrTotalRateExceeded.
func ComputeResidual(records []entities.FinancialRecord, workers []Participant) (Result, error) {
	totalRate := TotalRate(workers)
	if totalRate > entities.MaxWorkerRate {
		return Result{}, ErrTotalRateExceeded
	}

	t := sum(records)
	net := t.net()
	if !net.IsPositive() || len(workers) == 0 {
		return empty(t), nil
	}

	res := empty(t)
	res.Shares = entities.Shares{
		CompanyShare: percentOf(net, entities.MaxWorkerRate-totalRate),
		WorkerShares: workerShares(net, workers),
	}
	return res, nil
}

// ComputePayout applies the full-company-plus-payout policy: company = net,
// worker = floor(net*rate/100), recorded separately as payouts.
func ComputePayout(records []entities.FinancialRecord, workers []Participant) Result {
	t := sum(records)
	net := t.net()
	if !net.IsPositive() || len(workers) == 0 {
		return empty(t)
	}

	res := empty(t)
	res.Shares = entities.Shares{
		CompanyShare: net,
		WorkerShares: workerShares(net, workers),
	}
	return res
}
