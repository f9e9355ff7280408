package services

import (
	"context"
	"fmt"

	"dispatch-desk/internal/domain"
)

type AddDebtRequest struct {
	Client       string
	Organization string
	Amount       float64
	DocumentNo   string
	DueDate      string
	IssuedBy     string
}

// AddDebt appends a debt row and its "debt added" ledger entry. The
// ledger amount is the debt as issued.
func AddDebt(ctx context.Context, tabs *Tables, req AddDebtRequest) error {
	if req.Client == "" {
		return fmt.Errorf("add debt: client must not be empty")
	}
	if req.Amount < 0 {
		return fmt.Errorf("add debt: amount must be non-negative, got %v", req.Amount)
	}

	save := []domain.TableID{domain.TableDebts, domain.TableHistory}
	err := tabs.UpdateMany(ctx, save, func(all map[domain.TableID]*domain.Table) error {
		debt := domain.Debt{
			Client:       req.Client,
			Organization: req.Organization,
			Amount:       req.Amount,
			DocumentNo:   req.DocumentNo,
			DueDate:      req.DueDate,
			IssuedBy:     req.IssuedBy,
		}
		all[domain.TableDebts].AppendRow(debt.Row())

		appendHistoryRow(all, domain.HistoryEntry{
			Client:       req.Client,
			Organization: req.Organization,
			Operation:    domain.OpDebtAdded,
			Amount:       req.Amount,
			Date:         req.DueDate,
			PerformedBy:  req.IssuedBy,
			Notes:        req.DocumentNo,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("add debt: %w", err)
	}
	return nil
}

type ReduceDebtRequest struct {
	Client     string
	Amount     float64
	CloseFully bool
	Date       string
	ClosedBy   string
	Note       string
	ReceiptNo  string
}

// ReduceDebt lowers a client's debt by the requested amount. CloseFully
// overrides the amount with the entire current balance, silently
// discarding any partial value the caller supplied. The ledger entry
// carries the delta applied and is appended before any row removal; when
// the balance reaches exactly zero the debt row is removed ("full
// closure"). Returns whether the debt was closed.
func ReduceDebt(ctx context.Context, tabs *Tables, req ReduceDebtRequest) (closed bool, err error) {
	save := []domain.TableID{domain.TableHistory, domain.TableDebts}
	err = tabs.UpdateMany(ctx, save, func(all map[domain.TableID]*domain.Table) error {
		debts := all[domain.TableDebts]
		rows := debts.FindRows(domain.ColClient, req.Client)
		if len(rows) == 0 {
			return fmt.Errorf("debt for client %q: %w", req.Client, ErrNotFound)
		}

		// Duplicate client rows exist legitimately; the reduction
		// applies to the first one only.
		row := rows[0]
		balance := debts.Float(row, domain.ColDebtAmount)

		r := req.Amount
		if req.CloseFully {
			r = balance
		}
		if r < 0 || r > balance {
			return fmt.Errorf("reduce %v against balance %v: %w", r, balance, ErrReduceTooLarge)
		}

		org, _ := debts.Get(row, domain.ColOrganization)
		notes := req.ReceiptNo
		if notes == "" {
			notes = req.Note
		}
		appendHistoryRow(all, domain.HistoryEntry{
			Client:       req.Client,
			Organization: org,
			Operation:    domain.OpDebtRepayment,
			Amount:       r,
			Date:         req.Date,
			PerformedBy:  req.ClosedBy,
			Notes:        notes,
		})

		if balance-r == 0 {
			debts.Rows = append(debts.Rows[:row], debts.Rows[row+1:]...)
			closed = true
			return nil
		}
		debts.Set(row, domain.ColDebtAmount, domain.FormatNumber(balance-r))
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("reduce debt: %w", err)
	}
	return closed, nil
}
