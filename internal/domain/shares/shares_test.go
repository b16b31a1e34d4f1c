package shares

import (
	"errors"
	"reflect"
	"testing"

	"autoservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func rec(id string, typ entities.EntryType, amount string) entities.FinancialRecord {
	r := entities.FinancialRecord{ID: id, RequestID: "req-1", Type: typ, RawAmount: amount}
	if d, err := decimal.NewFromString(amount); err == nil {
		r.Amount = decimal.NewNullDecimal(d)
	}
	return r
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func baseRecords() []entities.FinancialRecord {
	return []entities.FinancialRecord{
		rec("r1", entities.EntryIncome, "1000"),
		rec("r2", entities.EntryExpense, "200"),
	}
}

func assertShare(t *testing.T, got, want decimal.Decimal, what string) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("expected %s %s, got %s", what, want, got)
	}
}

func TestComputeResidual_Scenarios(t *testing.T) {
	t.Run("one worker at 30", func(t *testing.T) {
		res, err := ComputeResidual(baseRecords(), []Participant{{ID: "w1", Rate: 30}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		assertShare(t, res.NetIncome, dec(800), "net")
		assertShare(t, res.Shares.CompanyShare, dec(560), "company share")
		if len(res.Shares.WorkerShares) != 1 {
			t.Fatalf("expected 1 worker share, got %d", len(res.Shares.WorkerShares))
		}
		assertShare(t, res.Shares.WorkerShares[0].Share, dec(240), "worker share")
	})

	t.Run("two workers at 30 and 25", func(t *testing.T) {
		res, err := ComputeResidual(baseRecords(), []Participant{{ID: "w1", Rate: 30}, {ID: "w2", Rate: 25}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		assertShare(t, res.Shares.CompanyShare, dec(360), "company share")
		assertShare(t, res.Shares.WorkerShares[0].Share, dec(240), "w1 share")
		assertShare(t, res.Shares.WorkerShares[1].Share, dec(200), "w2 share")
		total := res.Shares.CompanyShare.Add(res.Shares.WorkersTotal())
		assertShare(t, total, dec(800), "sum")
	})

	t.Run("negative net", func(t *testing.T) {
		records := []entities.FinancialRecord{
			rec("r1", entities.EntryIncome, "100"),
			rec("r2", entities.EntryExpense, "150"),
		}
		res, err := ComputeResidual(records, []Participant{{ID: "w1", Rate: 30}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		assertShare(t, res.NetIncome, dec(-50), "net")
		assertShare(t, res.Shares.CompanyShare, decimal.Zero, "company share")
		if res.Shares.WorkerShares == nil || len(res.Shares.WorkerShares) != 0 {
			t.Fatalf("expected empty worker shares, got %#v", res.Shares.WorkerShares)
		}
	})

	t.Run("no workers", func(t *testing.T) {
		res, err := ComputeResidual(baseRecords(), nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		assertShare(t, res.Shares.CompanyShare, decimal.Zero, "company share")
		if len(res.Shares.WorkerShares) != 0 {
			t.Fatalf("expected no worker shares")
		}
	})

	t.Run("total rate above 100", func(t *testing.T) {
		_, err := ComputeResidual(baseRecords(), []Participant{{ID: "w1", Rate: 60}, {ID: "w2", Rate: 50}})
		if !errors.Is(err, ErrTotalRateExceeded) {
			t.Fatalf("expected ErrTotalRateExceeded, got %v", err)
		}
	})
}

func TestComputeResidual_RoundingBound(t *testing.T) {
	rates := [][]int{{33}, {33, 33}, {10, 15, 7}, {1, 1, 1, 1}, {50, 49}, {0}, {100}}
	nets := []string{"1", "7", "99", "101", "997", "1234.56"}

	for _, rs := range rates {
		workers := make([]Participant, 0, len(rs))
		for i, r := range rs {
			workers = append(workers, Participant{ID: string(rune('a' + i)), Rate: r})
		}
		for _, n := range nets {
			records := []entities.FinancialRecord{rec("r", entities.EntryIncome, n)}
			res, err := ComputeResidual(records, workers)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			allocated := res.Shares.CompanyShare.Add(res.Shares.WorkersTotal())
			if allocated.GreaterThan(res.NetIncome) {
				t.Fatalf("rates %v net %s: allocated %s exceeds net", rs, n, allocated)
			}
			diff := res.NetIncome.Sub(allocated)
			if diff.GreaterThan(dec(int64(len(workers) + 1))) {
				t.Fatalf("rates %v net %s: remainder %s too large", rs, n, diff)
			}
		}
	}
}

func TestComputePayout(t *testing.T) {
	t.Run("company books full net", func(t *testing.T) {
		res := ComputePayout(baseRecords(), []Participant{{ID: "w1", Rate: 30}, {ID: "w2", Rate: 25}})
		assertShare(t, res.Shares.CompanyShare, dec(800), "company share")
		assertShare(t, res.Shares.WorkerShares[0].Share, dec(240), "w1 share")
		assertShare(t, res.Shares.WorkerShares[1].Share, dec(200), "w2 share")
	})

	t.Run("independent of rates", func(t *testing.T) {
		for _, rate := range []int{0, 10, 50, 90, 100} {
			res := ComputePayout(baseRecords(), []Participant{{ID: "w1", Rate: rate}, {ID: "w2", Rate: 100}})
			assertShare(t, res.Shares.CompanyShare, res.NetIncome, "company share")
		}
	})

	t.Run("net at zero", func(t *testing.T) {
		records := []entities.FinancialRecord{
			rec("r1", entities.EntryIncome, "200"),
			rec("r2", entities.EntryExpense, "200"),
		}
		res := ComputePayout(records, []Participant{{ID: "w1", Rate: 30}})
		assertShare(t, res.Shares.CompanyShare, decimal.Zero, "company share")
		if len(res.Shares.WorkerShares) != 0 {
			t.Fatalf("expected no worker shares")
		}
	})
}

func TestWorkerShareMonotonicInRate(t *testing.T) {
	records := []entities.FinancialRecord{rec("r", entities.EntryIncome, "1337")}
	prevResidual := decimal.Zero
	prevPayout := decimal.Zero
	for rate := 0; rate <= 80; rate++ {
		workers := []Participant{{ID: "w1", Rate: rate}, {ID: "w2", Rate: 20}}
		res, err := ComputeResidual(records, workers)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Shares.WorkerShares[0].Share.LessThan(prevResidual) {
			t.Fatalf("residual share decreased at rate %d", rate)
		}
		prevResidual = res.Shares.WorkerShares[0].Share

		payout := ComputePayout(records, workers)
		if payout.Shares.WorkerShares[0].Share.LessThan(prevPayout) {
			t.Fatalf("payout share decreased at rate %d", rate)
		}
		prevPayout = payout.Shares.WorkerShares[0].Share
	}
}

func TestMalformedAmountsBecomeWarnings(t *testing.T) {
	records := append(baseRecords(),
		rec("bad", entities.EntryIncome, "12abc"),
		rec("neg", entities.EntryExpense, "-5"),
	)
	res, err := ComputeResidual(records, []Participant{{ID: "w1", Rate: 30}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	assertShare(t, res.NetIncome, dec(800), "net")
	if len(res.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(res.Warnings))
	}
	if res.Warnings[0].RecordID != "bad" || res.Warnings[1].RecordID != "neg" {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}

func TestComputeIsPure(t *testing.T) {
	records := append(baseRecords(), rec("bad", entities.EntryIncome, "x"))
	workers := []Participant{{ID: "w1", Rate: 30}, {ID: "w2", Rate: 25}}

	a, errA := ComputeResidual(records, workers)
	b, errB := ComputeResidual(records, workers)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errs: %v %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("residual results differ: %+v vs %+v", a, b)
	}
	if !reflect.DeepEqual(ComputePayout(records, workers), ComputePayout(records, workers)) {
		t.Fatalf("payout results differ")
	}
}
